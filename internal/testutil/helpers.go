// Package testutil provides reusable test helper functions for the
// curve, stepper, direction and generator tests.
package testutil

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// Default tolerances for float32 assertions.
const (
	DefaultTolerance = 1e-5
	AngleTolerance   = 1e-4
	LooseTolerance   = 1e-3
)

// AssertFinite verifies that v is neither NaN nor Inf.
func AssertFinite(t *testing.T, v float32, msgAndArgs ...any) bool {
	t.Helper()
	if math32.IsNaN(v) {
		return assert.Fail(t, "value is NaN", msgAndArgs...)
	}
	if math32.IsInf(v, 0) {
		return assert.Fail(t, "value is Inf", msgAndArgs...)
	}
	return true
}

// AssertInRange verifies that minVal <= v <= maxVal.
func AssertInRange(t *testing.T, v, minVal, maxVal float32, msgAndArgs ...any) bool {
	t.Helper()
	if math32.IsNaN(v) || v < minVal || v > maxVal {
		return assert.Fail(t, "value out of range",
			"v=%v is outside [%v, %v]", v, minVal, maxVal)
	}
	return true
}

// AssertWrapped verifies that an angle lies in the canonical (-π, π]
// interval.
func AssertWrapped(t *testing.T, angle float32, msgAndArgs ...any) bool {
	t.Helper()
	if math32.IsNaN(angle) || angle <= -math32.Pi || angle > math32.Pi {
		return assert.Fail(t, "angle not wrapped",
			"angle=%v is outside (-π, π]", angle)
	}
	return true
}

// AssertAngleInDelta verifies that two angles match within tolerance,
// measuring the wrap-aware distance so -π and π compare equal.
func AssertAngleInDelta(t *testing.T, expected, actual, tolerance float32, msgAndArgs ...any) bool {
	t.Helper()
	d := math32.Mod(actual-expected+math32.Pi, 2*math32.Pi)
	if d < 0 {
		d += 2 * math32.Pi
	}
	dist := math32.Abs(d - math32.Pi)
	return assert.LessOrEqual(t, dist, tolerance,
		"angles differ by %v: expected %v, got %v", dist, expected, actual)
}

// AssertVec3InDelta verifies that two vectors match component-wise within
// tolerance.
func AssertVec3InDelta(t *testing.T, expected, actual mgl32.Vec3, tolerance float32, msgAndArgs ...any) bool {
	t.Helper()
	ok := true
	for i := 0; i < 3; i++ {
		ok = assert.InDelta(t, expected[i], actual[i], float64(tolerance),
			"component %d: expected %v, got %v", i, expected, actual) && ok
	}
	return ok
}
