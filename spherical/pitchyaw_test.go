package spherical

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mbrea-c/go-utilitarian/internal/testutil"
	"github.com/stretchr/testify/assert"
)

const (
	testSeed       = 42
	testIterations = 1000
)

// TestWrapAngle verifies the canonical interval and its closed end.
func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"zero", 0, 0},
		{"pi_stays_pi", math32.Pi, math32.Pi},
		{"neg_pi_wraps_to_pi", -math32.Pi, math32.Pi},
		{"past_pi", math32.Pi + 0.5, -math32.Pi + 0.5},
		{"past_neg_pi", -math32.Pi - 0.5, math32.Pi - 0.5},
		{"full_turn", 2 * math32.Pi, 0},
		{"many_turns", 7 * math32.Pi, math32.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAngle(tt.in)
			testutil.AssertWrapped(t, got)
			testutil.AssertAngleInDelta(t, tt.want, got, testutil.AngleTolerance)
		})
	}
}

// TestPitchYaw_AddKeepsInvariant verifies that arbitrary Add sequences
// leave both angles in (-π, π].
func TestPitchYaw_AddKeepsInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))
	var s PitchYaw

	for i := 0; i < testIterations; i++ {
		s.Add(rng.Float32()*20-10, rng.Float32()*20-10)
		testutil.AssertWrapped(t, s.Pitch)
		testutil.AssertWrapped(t, s.Yaw)
	}
}

// TestPitchYaw_WrapIsIdempotent verifies repeated wrapping is stable.
func TestPitchYaw_WrapIsIdempotent(t *testing.T) {
	s := PitchYaw{Pitch: 8.21694, Yaw: 12.032}

	once := s.Wrap()
	assert.Equal(t, once, once.Wrap())
	assert.Equal(t, once, once.Wrap().Wrap())
}

// TestPitchYaw_SubNearSeam verifies that the wrap-aware delta crosses the
// ±π seam the short way and that applying it lands on the other side.
func TestPitchYaw_SubNearSeam(t *testing.T) {
	a := NewPitchYaw(0, math32.Pi-0.1)
	b := NewPitchYaw(0, -math32.Pi+0.1)

	d := b.Sub(a)
	assert.InDelta(t, 0.2, float64(d.Len()), testutil.AngleTolerance,
		"delta across the seam is 0.2, not ~2π")

	applied := NewPitchYaw(a.Pitch+d.X(), a.Yaw+d.Y())
	assert.Less(t, applied.Dist(b), float32(testutil.AngleTolerance))
}

// TestPitchYaw_StepTowardNearSeam verifies stepping through the seam in
// both directions and overshoot snapping.
func TestPitchYaw_StepTowardNearSeam(t *testing.T) {
	a := NewPitchYaw(0, math32.Pi-0.1)
	b := NewPitchYaw(0, -math32.Pi+0.1)

	stepped := a.StepToward(b, 0.05)
	testutil.AssertAngleInDelta(t, math32.Pi-0.05, stepped.Yaw, testutil.AngleTolerance)

	steppedBack := b.StepToward(a, 0.05)
	testutil.AssertAngleInDelta(t, -math32.Pi+0.05, steppedBack.Yaw, testutil.AngleTolerance)

	snapped := a.StepToward(b, 0.5)
	assert.Less(t, snapped.Dist(b), float32(testutil.AngleTolerance),
		"a step larger than the distance snaps onto the target")
}

// TestPitchYaw_Vec3RoundTrip verifies direction/angle conversions are
// mutually inverse.
func TestPitchYaw_Vec3RoundTrip(t *testing.T) {
	dir := mgl32.Vec3{223.3452, 5.22, 835.519}
	s := PitchYawFromVec3(dir)
	back := s.Vec3()

	testutil.AssertVec3InDelta(t, dir.Normalize(), back, testutil.AngleTolerance)

	s2 := PitchYawFromVec3(back)
	assert.Less(t, s.Dist(s2), float32(testutil.AngleTolerance))
}

// TestPitchYaw_ZeroFacesNegZ verifies the camera convention anchors.
func TestPitchYaw_ZeroFacesNegZ(t *testing.T) {
	testutil.AssertVec3InDelta(t, mgl32.Vec3{0, 0, -1}, PitchYaw{}.Vec3(), testutil.AngleTolerance)
	testutil.AssertVec3InDelta(t, mgl32.Vec3{0, 0, 1}, NewPitchYaw(0, math32.Pi).Vec3(), testutil.AngleTolerance)
	testutil.AssertVec3InDelta(t, mgl32.Vec3{0, 1, 0}, NewPitchYaw(math32.Pi/2, 0).Vec3(), testutil.AngleTolerance)
}

// TestPitchYaw_QuatMatchesVec3 verifies that rotating -Z by the quat
// reproduces the direction vector.
func TestPitchYaw_QuatMatchesVec3(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))

	for i := 0; i < 50; i++ {
		s := NewPitchYaw(rng.Float32()*2-1, rng.Float32()*6-3)
		rotated := s.Quat().Rotate(mgl32.Vec3{0, 0, -1})
		testutil.AssertVec3InDelta(t, s.Vec3(), rotated, testutil.LooseTolerance)
	}
}

// TestPitchYaw_Flip verifies the mirror is its own inverse.
func TestPitchYaw_Flip(t *testing.T) {
	s := NewPitchYaw(0.3, -1.2)
	flipped := s.Flip()

	assert.InDelta(t, -0.3, float64(flipped.Pitch), testutil.AngleTolerance)
	assert.InDelta(t, 1.2, float64(flipped.Yaw), testutil.AngleTolerance)
	assert.Less(t, s.Dist(flipped.Flip()), float32(testutil.AngleTolerance))
}

// TestPitchYaw_ZeroVecFallsBack verifies the degenerate input guard.
func TestPitchYaw_ZeroVecFallsBack(t *testing.T) {
	assert.Equal(t, PitchYaw{}, PitchYawFromVec3(mgl32.Vec3{}))
}

// TestPitchYaw_SetWraps verifies Set maintains the invariant.
func TestPitchYaw_SetWraps(t *testing.T) {
	var s PitchYaw
	s.Set(10, -10)
	testutil.AssertWrapped(t, s.Pitch)
	testutil.AssertWrapped(t, s.Yaw)
}
