// Package randval provides small randomized-value generators: a generator
// is configured once (range, distribution shape, direction, spread) and
// then sampled on demand, drawing uniform variates from an externally
// supplied [Source].
//
// Sampling never mutates the generator itself, only the source, so a
// generator value can be shared freely and copied by value. Passing the
// source explicitly instead of consulting global random state keeps
// sampling deterministic under test: a seeded *math/rand.Rand satisfies
// [Source], and the same seed reproduces the same sample sequence.
//
//	rng := rand.New(rand.NewSource(42))
//	burst := randval.F32{Min: 2, Max: 5}
//	speed := burst.Sample(rng)
//
// Configuration is validated at construction via the New* constructors or
// explicitly via Validate; malformed configuration (Min > Max, negative
// spread or radius) is rejected rather than clamped.
package randval
