package randval

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mbrea-c/go-utilitarian/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConstantVec3 verifies the constant generator reproduces its vector
// for any source.
func TestConstantVec3(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))
	v := mgl32.Vec3{3, 0, 4}
	g := ConstantVec3(v)

	for i := 0; i < 50; i++ {
		testutil.AssertVec3InDelta(t, v, g.Sample(rng), testutil.DefaultTolerance)
	}
}

// TestVec3_ZeroSpreadFollowsDirection verifies that without spread every
// sample lies along the normalized direction.
func TestVec3_ZeroSpreadFollowsDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))
	g := Vec3{
		Magnitude: F32{Min: 1, Max: 4},
		Direction: mgl32.Vec3{0, 0, 10},
	}

	for i := 0; i < 200; i++ {
		v := g.Sample(rng)
		assert.InDelta(t, 0.0, float64(v.X()), testutil.DefaultTolerance)
		assert.InDelta(t, 0.0, float64(v.Y()), testutil.DefaultTolerance)
		testutil.AssertInRange(t, v.Z(), 1, 4)
	}
}

// TestVec3_SpreadBoundsCone verifies that samples never leave the
// configured cone around the direction, for axis-aligned and skewed
// directions.
func TestVec3_SpreadBoundsCone(t *testing.T) {
	const spread = 0.4

	directions := []mgl32.Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{-1, 0, 0},
		{0.3, -0.8, 0.52},
	}

	for _, dir := range directions {
		rng := rand.New(rand.NewSource(testSeed))
		g := Vec3{
			Magnitude: ConstantF32(1),
			Direction: dir,
			Spread:    spread,
		}
		require.NoError(t, g.Validate())

		unit := dir.Normalize()
		for i := 0; i < 500; i++ {
			v := g.Sample(rng)
			cos := v.Normalize().Dot(unit)
			angle := math32.Acos(mgl32.Clamp(cos, -1, 1))
			assert.LessOrEqual(t, angle, float32(spread)+testutil.LooseTolerance,
				"sample strayed %v rad from direction %v", angle, dir)
		}
	}
}

// TestVec3_SeededReproducibility verifies deterministic cone sampling.
func TestVec3_SeededReproducibility(t *testing.T) {
	g := Vec3{Magnitude: F32{Min: 0, Max: 2}, Direction: mgl32.Vec3{0, 1, 0}, Spread: 1}

	a := rand.New(rand.NewSource(testSeed))
	b := rand.New(rand.NewSource(testSeed))
	for i := 0; i < 100; i++ {
		assert.Equal(t, g.Sample(a), g.Sample(b), "sample %d diverged", i)
	}
}

// TestVec3_ConstructionErrors verifies cone validation.
func TestVec3_ConstructionErrors(t *testing.T) {
	_, err := NewVec3(F32{Min: 2, Max: 1}, mgl32.Vec3{1, 0, 0}, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewVec3(ConstantF32(1), mgl32.Vec3{1, 0, 0}, -0.1)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewVec3(ConstantF32(1), mgl32.Vec3{}, 0.5)
	require.ErrorIs(t, err, ErrInvalidConfig, "spread cone needs a direction")
}

// TestVec3Box_Containment verifies per-axis uniform sampling stays in
// the box.
func TestVec3Box_Containment(t *testing.T) {
	g, err := NewVec3Box(mgl32.Vec3{-1, 0, 2}, mgl32.Vec3{1, 0, 5})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(testSeed))

	for i := 0; i < 1000; i++ {
		v := g.Sample(rng)
		testutil.AssertInRange(t, v.X(), -1, 1)
		assert.Equal(t, float32(0), v.Y(), "degenerate axis is exact")
		testutil.AssertInRange(t, v.Z(), 2, 5)
	}
}

// TestVec3Box_ConstructionErrors verifies per-axis validation.
func TestVec3Box_ConstructionErrors(t *testing.T) {
	_, err := NewVec3Box(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{-1, 1, 1})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// TestVec3Sphere_Containment verifies that every sample lies within the
// ball.
func TestVec3Sphere_Containment(t *testing.T) {
	const radius = 2.5

	g, err := NewVec3Sphere(radius)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(testSeed))

	for i := 0; i < 1000; i++ {
		v := g.Sample(rng)
		assert.LessOrEqual(t, v.Len(), float32(radius)+testutil.DefaultTolerance)
	}
}

// TestVec3Sphere_ZeroRadius verifies the degenerate ball.
func TestVec3Sphere_ZeroRadius(t *testing.T) {
	g, err := NewVec3Sphere(0)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(testSeed))

	testutil.AssertVec3InDelta(t, mgl32.Vec3{}, g.Sample(rng), testutil.DefaultTolerance)
}

// TestVec3Sphere_ConstructionErrors verifies radius validation.
func TestVec3Sphere_ConstructionErrors(t *testing.T) {
	_, err := NewVec3Sphere(-1)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewVec3Sphere(math32.Inf(1))
	require.ErrorIs(t, err, ErrInvalidConfig)
}
