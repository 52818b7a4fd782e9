package randval

import "errors"

// Source is the randomness capability consumed by every generator: a
// stream of uniform variates in [0, 1). *math/rand.Rand satisfies it.
type Source interface {
	Float32() float32
}

// Value is the sampling capability shared by all generators.
type Value[T any] interface {
	// Sample draws one value, advancing only the source.
	Sample(src Source) T
}

// ErrInvalidConfig indicates malformed generator configuration, such as
// Min > Max or a negative spread.
var ErrInvalidConfig = errors.New("invalid generator configuration")
