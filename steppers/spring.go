package steppers

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mbrea-c/go-utilitarian/point"
	"github.com/mbrea-c/go-utilitarian/spherical"
)

// Spring moves its current value toward the target as a damped harmonic
// oscillator with unit mass, integrated with semi-implicit Euler:
//
//	v += (stiffness*(target-current) - damping*v) * dt
//	current += v * dt
//
// With damping below [CriticalDamping] the value overshoots and rings
// before settling, which is the intended physical behavior. The value
// approaches the target asymptotically rather than snapping onto it.
type Spring[P point.Point[P]] struct {
	current, target P
	velocity        P
	stiffness       float32
	damping         float32
}

// NewSpring returns a spring stepper at rest on the initial value.
// stiffness must be positive and finite; damping must be non-negative and
// finite (zero damping oscillates forever).
func NewSpring[P point.Point[P]](initial P, stiffness, damping float32) (*Spring[P], error) {
	var zero P
	return NewSpringWithVelocity(initial, zero, stiffness, damping)
}

// NewSpringWithVelocity is NewSpring with a non-zero initial velocity,
// for handing an already-moving value over to spring dynamics.
func NewSpringWithVelocity[P point.Point[P]](initial, velocity P, stiffness, damping float32) (*Spring[P], error) {
	if !finitePositive(stiffness) {
		return nil, fmt.Errorf("%w: stiffness must be positive and finite, got %v", ErrInvalidConfig, stiffness)
	}
	if !finiteNonNegative(damping) {
		return nil, fmt.Errorf("%w: damping must be non-negative and finite, got %v", ErrInvalidConfig, damping)
	}
	return &Spring[P]{
		current:   initial,
		target:    initial,
		velocity:  velocity,
		stiffness: stiffness,
		damping:   damping,
	}, nil
}

// Tick integrates the oscillator over dt seconds.
func (s *Spring[P]) Tick(dt float32) {
	if !validTickDelta(dt) {
		return
	}
	accel := s.target.Sub(s.current).Mul(s.stiffness).Sub(s.velocity.Mul(s.damping))
	s.velocity = s.velocity.Add(accel.Mul(dt / springMass))
	s.current = s.current.Add(s.velocity.Mul(dt))
}

// Get returns the current value.
func (s *Spring[P]) Get() P { return s.current }

// Velocity returns the current velocity.
func (s *Spring[P]) Velocity() P { return s.velocity }

// SetTarget reassigns the target.
func (s *Spring[P]) SetTarget(target P) { s.target = target }

// SetCurrent snaps the current value and zeroes the velocity, so a
// snapped value stays put until the target moves again.
func (s *Spring[P]) SetCurrent(value P) {
	var zero P
	s.current = value
	s.velocity = zero
}

// SetVelocity replaces the current velocity.
func (s *Spring[P]) SetVelocity(velocity P) { s.velocity = velocity }

// SpringPitchYawClamped is spring dynamics over a clamped pitch/yaw
// direction. The angular velocity is a (pitch, yaw) pair; the direction's
// ranges saturate the result each tick, so the spring can press against a
// range bound without escaping it.
type SpringPitchYawClamped struct {
	current, target spherical.PitchYawClamped
	velocity        mgl32.Vec2
	stiffness       float32
	damping         float32
}

// NewSpringPitchYawClamped returns a clamped pitch/yaw spring at rest on
// the initial direction. Parameter rules match [NewSpring].
func NewSpringPitchYawClamped(initial spherical.PitchYawClamped, stiffness, damping float32) (*SpringPitchYawClamped, error) {
	if !finitePositive(stiffness) {
		return nil, fmt.Errorf("%w: stiffness must be positive and finite, got %v", ErrInvalidConfig, stiffness)
	}
	if !finiteNonNegative(damping) {
		return nil, fmt.Errorf("%w: damping must be non-negative and finite, got %v", ErrInvalidConfig, damping)
	}
	return &SpringPitchYawClamped{
		current:   initial,
		target:    initial,
		stiffness: stiffness,
		damping:   damping,
	}, nil
}

// Tick integrates the angular oscillator over dt seconds.
func (s *SpringPitchYawClamped) Tick(dt float32) {
	if !validTickDelta(dt) {
		return
	}
	accel := s.target.Sub(s.current).Mul(s.stiffness).Sub(s.velocity.Mul(s.damping))
	s.velocity = s.velocity.Add(accel.Mul(dt / springMass))
	s.current = s.current.Advance(s.velocity, dt)
}

// Get returns the current direction.
func (s *SpringPitchYawClamped) Get() spherical.PitchYawClamped { return s.current }

// Velocity returns the current angular velocity as (pitch, yaw).
func (s *SpringPitchYawClamped) Velocity() mgl32.Vec2 { return s.velocity }

// SetTarget reassigns the target direction.
func (s *SpringPitchYawClamped) SetTarget(target spherical.PitchYawClamped) { s.target = target }

// SetCurrent snaps the current direction and zeroes the angular velocity.
func (s *SpringPitchYawClamped) SetCurrent(value spherical.PitchYawClamped) {
	s.current = value
	s.velocity = mgl32.Vec2{}
}
