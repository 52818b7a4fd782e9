package steppers

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mbrea-c/go-utilitarian/point"
	"github.com/mbrea-c/go-utilitarian/spherical"
)

// Linear moves its current value toward the target at a fixed maximum
// speed in value units per second. The per-tick step length is capped at
// the remaining distance, so the target is reached exactly and never
// overshot.
type Linear[P point.Metric[P]] struct {
	current, target P
	speed           float32
}

// NewLinear returns a linear stepper at rest on the initial value.
// speed must be positive and finite.
func NewLinear[P point.Metric[P]](initial P, speed float32) (*Linear[P], error) {
	if !finitePositive(speed) {
		return nil, fmt.Errorf("%w: speed must be positive and finite, got %v", ErrInvalidConfig, speed)
	}
	return &Linear[P]{current: initial, target: initial, speed: speed}, nil
}

// Tick advances the current value by at most speed*dt toward the target.
func (s *Linear[P]) Tick(dt float32) {
	if !validTickDelta(dt) {
		return
	}
	delta := s.target.Sub(s.current)
	dist := delta.Len()
	maxStep := s.speed * dt
	if dist <= maxStep {
		s.current = s.target
		return
	}
	s.current = s.current.Add(delta.Mul(maxStep / dist))
}

// Get returns the current value.
func (s *Linear[P]) Get() P { return s.current }

// SetTarget reassigns the target.
func (s *Linear[P]) SetTarget(target P) { s.target = target }

// SetCurrent snaps the current value, bypassing the speed limit.
func (s *Linear[P]) SetCurrent(value P) { s.current = value }

// LinearQuat moves a rotation toward a target rotation by spherical
// interpolation, limited to speed radians per second.
type LinearQuat struct {
	current, target mgl32.Quat
	speed           float32
}

// NewLinearQuat returns a quaternion stepper at rest on the initial
// rotation. speed is the maximum angular speed in radians per second and
// must be positive and finite.
func NewLinearQuat(initial mgl32.Quat, speed float32) (*LinearQuat, error) {
	if !finitePositive(speed) {
		return nil, fmt.Errorf("%w: speed must be positive and finite, got %v", ErrInvalidConfig, speed)
	}
	return &LinearQuat{current: initial, target: initial, speed: speed}, nil
}

// Tick slerps the current rotation toward the target by at most speed*dt
// radians.
func (s *LinearQuat) Tick(dt float32) {
	if !validTickDelta(dt) {
		return
	}
	angle := quatAngle(s.current, s.target)
	maxDelta := s.speed * dt
	if angle <= maxDelta {
		s.current = s.target
		return
	}
	s.current = mgl32.QuatSlerp(s.current, s.target, maxDelta/angle)
}

// Get returns the current rotation.
func (s *LinearQuat) Get() mgl32.Quat { return s.current }

// SetTarget reassigns the target rotation.
func (s *LinearQuat) SetTarget(target mgl32.Quat) { s.target = target }

// SetCurrent snaps the current rotation.
func (s *LinearQuat) SetCurrent(value mgl32.Quat) { s.current = value }

// quatAngle returns the rotation angle between two orientations in
// radians, treating q and -q as the same orientation.
func quatAngle(a, b mgl32.Quat) float32 {
	d := math32.Abs(a.Normalize().Dot(b.Normalize()))
	if d > 1 {
		d = 1
	}
	return 2 * math32.Acos(d)
}

// LinearPitchYaw moves a wrapping pitch/yaw direction toward a target,
// stepping each angle independently by at most speed*dt radians per tick
// and taking the short way around the yaw seam.
type LinearPitchYaw struct {
	current, target spherical.PitchYaw
	speed           float32
}

// NewLinearPitchYaw returns a pitch/yaw stepper at rest on the initial
// direction. speed must be positive and finite.
func NewLinearPitchYaw(initial spherical.PitchYaw, speed float32) (*LinearPitchYaw, error) {
	if !finitePositive(speed) {
		return nil, fmt.Errorf("%w: speed must be positive and finite, got %v", ErrInvalidConfig, speed)
	}
	initial = initial.Wrap()
	return &LinearPitchYaw{current: initial, target: initial, speed: speed}, nil
}

// Tick advances the current direction toward the target.
func (s *LinearPitchYaw) Tick(dt float32) {
	if !validTickDelta(dt) {
		return
	}
	s.current = s.current.StepToward(s.target, s.speed*dt)
}

// Get returns the current direction.
func (s *LinearPitchYaw) Get() spherical.PitchYaw { return s.current }

// SetTarget reassigns the target direction, wrapped.
func (s *LinearPitchYaw) SetTarget(target spherical.PitchYaw) { s.target = target.Wrap() }

// SetCurrent snaps the current direction, wrapped.
func (s *LinearPitchYaw) SetCurrent(value spherical.PitchYaw) { s.current = value.Wrap() }

// LinearPitchYawClamped moves a clamped pitch/yaw direction toward a
// target, stepping each angle independently within its configured range.
type LinearPitchYawClamped struct {
	current, target spherical.PitchYawClamped
	speed           float32
}

// NewLinearPitchYawClamped returns a clamped pitch/yaw stepper at rest on
// the initial direction. speed must be positive and finite.
func NewLinearPitchYawClamped(initial spherical.PitchYawClamped, speed float32) (*LinearPitchYawClamped, error) {
	if !finitePositive(speed) {
		return nil, fmt.Errorf("%w: speed must be positive and finite, got %v", ErrInvalidConfig, speed)
	}
	return &LinearPitchYawClamped{current: initial, target: initial, speed: speed}, nil
}

// Tick advances the current direction toward the target.
func (s *LinearPitchYawClamped) Tick(dt float32) {
	if !validTickDelta(dt) {
		return
	}
	s.current = s.current.StepToward(s.target, s.speed*dt)
}

// Get returns the current direction.
func (s *LinearPitchYawClamped) Get() spherical.PitchYawClamped { return s.current }

// SetTarget reassigns the target direction.
func (s *LinearPitchYawClamped) SetTarget(target spherical.PitchYawClamped) { s.target = target }

// SetCurrent snaps the current direction. The direction's own ranges
// still apply; snapping cannot escape the clamp.
func (s *LinearPitchYawClamped) SetCurrent(value spherical.PitchYawClamped) { s.current = value }
