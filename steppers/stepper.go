// Package steppers provides stateful per-frame interpolators. A stepper
// holds a current value and a target value and advances the current value
// toward the target once per Tick, using variant-specific dynamics:
//
//   - Linear variants move at a configured maximum speed and never
//     overshoot the target within a tick.
//   - Spring variants integrate a damped harmonic oscillator and may
//     overshoot when underdamped, which is the intended physical behavior.
//
// The target may be retargeted at any time, including mid-flight; the
// dynamics absorb the change without discontinuity beyond what the
// formula naturally produces. SetCurrent is the hard reset that snaps the
// value in place, bypassing the dynamics.
//
// Tick takes the frame delta in seconds. A zero, negative or NaN delta is
// a no-op: the value never moves backward and NaN never propagates into
// state. Tunable parameters are validated at construction and rejected
// when invalid; they are never silently clamped.
//
// Steppers are not synchronized. Each instance is meant to be owned by a
// single entity in a single update pass, the usual one-component-per-
// entity arrangement.
package steppers

import (
	"errors"

	"github.com/chewxy/math32"
)

// Stepper is the common contract over all interpolator variants.
type Stepper[T any] interface {
	// Tick advances the current value toward the target by dt seconds.
	Tick(dt float32)

	// Get returns the current value.
	Get() T

	// SetTarget reassigns the target. Safe to call mid-flight.
	SetTarget(target T)

	// SetCurrent snaps the current value, bypassing the dynamics.
	SetCurrent(value T)
}

// ErrInvalidConfig indicates invalid stepper parameters such as a
// non-positive speed or stiffness.
var ErrInvalidConfig = errors.New("invalid stepper configuration")

// springMass is the implied oscillator mass; stiffness and damping are
// specified relative to it.
const springMass = 1.0

// CriticalDamping returns the damping coefficient at which a spring with
// the given stiffness settles fastest without oscillating, for the unit
// oscillator mass used by the spring steppers.
func CriticalDamping(stiffness float32) float32 {
	return 2 * math32.Sqrt(stiffness*springMass)
}

// validTickDelta reports whether dt should advance a stepper. NaN fails
// the comparison along with zero and negative deltas; +Inf is rejected
// explicitly.
func validTickDelta(dt float32) bool {
	return dt > 0 && !math32.IsInf(dt, 0)
}

// finitePositive reports whether v is a valid magnitude parameter.
func finitePositive(v float32) bool {
	return v > 0 && !math32.IsInf(v, 0)
}

// finiteNonNegative reports whether v is a valid damping parameter.
func finiteNonNegative(v float32) bool {
	return v >= 0 && !math32.IsInf(v, 0)
}
