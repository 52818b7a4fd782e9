package spherical

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidRange indicates an angle range with Min > Max or a non-finite
// bound.
var ErrInvalidRange = errors.New("invalid angle range")

// defaultRangeMargin keeps the default ranges strictly inside the pole and
// seam singularities.
const defaultRangeMargin = 0.001

// Range is an inclusive [Min, Max] interval of angles in radians.
type Range struct {
	Min, Max float32
}

// SymmetricRange returns the range [-halfWidth, halfWidth].
func SymmetricRange(halfWidth float32) Range {
	return Range{Min: -halfWidth, Max: halfWidth}
}

// DefaultPitchRange is the pitch range used by [DefaultClamped]: just shy
// of straight up/down so the direction never degenerates at the poles.
func DefaultPitchRange() Range {
	return SymmetricRange(math32.Pi/2 - defaultRangeMargin)
}

// DefaultYawRange is the yaw range used by [DefaultClamped]: just shy of
// the ±π seam.
func DefaultYawRange() Range {
	return SymmetricRange(math32.Pi - defaultRangeMargin)
}

// Validate reports whether the range is well formed.
func (r Range) Validate() error {
	if math32.IsNaN(r.Min) || math32.IsNaN(r.Max) ||
		math32.IsInf(r.Min, 0) || math32.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: bounds must be finite, got [%v, %v]", ErrInvalidRange, r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %v greater than max %v", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Clamp saturates v into the range.
func (r Range) Clamp(v float32) float32 {
	return mgl32.Clamp(v, r.Min, r.Max)
}

// PitchYawClamped is a direction without a roll component whose angles are
// saturated independently into per-axis ranges after every mutation.
// Unlike [PitchYaw] it never wraps across the ±π seam, so an interpolator
// driving it cannot take the "wrong way around" path out of a bounded aim
// cone.
type PitchYawClamped struct {
	pitch, yaw           float32
	pitchRange, yawRange Range
}

// NewPitchYawClamped returns a clamped direction with explicit per-axis
// ranges. The initial angles are saturated into the ranges; a range with
// Min > Max or non-finite bounds is a construction error.
func NewPitchYawClamped(pitch, yaw float32, pitchRange, yawRange Range) (PitchYawClamped, error) {
	if err := pitchRange.Validate(); err != nil {
		return PitchYawClamped{}, fmt.Errorf("pitch range: %w", err)
	}
	if err := yawRange.Validate(); err != nil {
		return PitchYawClamped{}, fmt.Errorf("yaw range: %w", err)
	}
	s := PitchYawClamped{pitchRange: pitchRange, yawRange: yawRange}
	s.pitch = pitchRange.Clamp(pitch)
	s.yaw = yawRange.Clamp(yaw)
	return s, nil
}

// DefaultClamped returns a clamped direction with the default near-full
// ranges ([DefaultPitchRange], [DefaultYawRange]).
func DefaultClamped(pitch, yaw float32) PitchYawClamped {
	s, _ := NewPitchYawClamped(pitch, yaw, DefaultPitchRange(), DefaultYawRange())
	return s
}

// ClampedFromVec3 returns the clamped direction pointing along dir, using
// the default ranges. A zero-length dir yields the zero direction.
func ClampedFromVec3(dir mgl32.Vec3) PitchYawClamped {
	l := dir.Len()
	if l == 0 {
		return DefaultClamped(0, 0)
	}
	yaw := math32.Atan2(-dir.X(), -dir.Z())
	pitch := math32.Asin(dir.Y() / l)
	return DefaultClamped(pitch, yaw)
}

// Pitch returns the current pitch angle.
func (s PitchYawClamped) Pitch() float32 { return s.pitch }

// Yaw returns the current yaw angle.
func (s PitchYawClamped) Yaw() float32 { return s.yaw }

// PitchRange returns the allowed pitch interval.
func (s PitchYawClamped) PitchRange() Range { return s.pitchRange }

// YawRange returns the allowed yaw interval.
func (s PitchYawClamped) YawRange() Range { return s.yawRange }

// Set replaces both angles, saturating them into the configured ranges.
func (s *PitchYawClamped) Set(pitch, yaw float32) {
	s.pitch = s.pitchRange.Clamp(pitch)
	s.yaw = s.yawRange.Clamp(yaw)
}

// Add offsets both angles by the given deltas, saturating the result.
// Saturation is idempotent: once an axis rests on a bound, further deltas
// past the bound leave it there.
func (s *PitchYawClamped) Add(deltaPitch, deltaYaw float32) {
	s.Set(s.pitch+deltaPitch, s.yaw+deltaYaw)
}

// SetPitchRange replaces the pitch interval and re-clamps the current
// pitch into it.
func (s *PitchYawClamped) SetPitchRange(r Range) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("pitch range: %w", err)
	}
	s.pitchRange = r
	s.pitch = r.Clamp(s.pitch)
	return nil
}

// SetYawRange replaces the yaw interval and re-clamps the current yaw
// into it.
func (s *PitchYawClamped) SetYawRange(r Range) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("yaw range: %w", err)
	}
	s.yawRange = r
	s.yaw = r.Clamp(s.yaw)
	return nil
}

// Sub returns the angular delta from o to s as (pitch, yaw) in Vec2 X/Y
// order. Plain subtraction: clamped directions never wrap, so there is no
// seam to account for.
func (s PitchYawClamped) Sub(o PitchYawClamped) mgl32.Vec2 {
	return mgl32.Vec2{s.pitch - o.pitch, s.yaw - o.yaw}
}

// Len returns the Euclidean norm of the angle pair.
func (s PitchYawClamped) Len() float32 {
	return math32.Sqrt(s.pitch*s.pitch + s.yaw*s.yaw)
}

// Dist returns the angular distance between two clamped directions.
func (s PitchYawClamped) Dist(o PitchYawClamped) float32 {
	return s.Sub(o).Len()
}

// Advance returns s moved by the angular velocity vel (pitch, yaw in Vec2
// X/Y order, radians per second) over dt seconds, saturated into the
// configured ranges.
func (s PitchYawClamped) Advance(vel mgl32.Vec2, dt float32) PitchYawClamped {
	out := s
	out.Set(s.pitch+vel.X()*dt, s.yaw+vel.Y()*dt)
	return out
}

// StepToward moves each component of s independently toward target by at
// most maxDelta radians, snapping a component exactly onto the target once
// it is within range. The receiver's ranges are kept.
func (s PitchYawClamped) StepToward(target PitchYawClamped, maxDelta float32) PitchYawClamped {
	d := target.Sub(s)
	out := s

	var pitch, yaw float32
	if math32.Abs(d.X()) < maxDelta {
		pitch = target.pitch
	} else {
		pitch = s.pitch + signed(maxDelta, d.X())
	}

	if math32.Abs(d.Y()) < maxDelta {
		yaw = target.yaw
	} else {
		yaw = s.yaw + signed(maxDelta, d.Y())
	}

	out.Set(pitch, yaw)
	return out
}

// Vec3 returns the unit direction vector for the angle pair.
func (s PitchYawClamped) Vec3() mgl32.Vec3 {
	return PitchYaw{Pitch: s.pitch, Yaw: s.yaw}.Vec3()
}

// Quat returns the rotation taking the -Z axis to this direction.
func (s PitchYawClamped) Quat() mgl32.Quat {
	return PitchYaw{Pitch: s.pitch, Yaw: s.yaw}.Quat()
}

// PitchYaw returns the wrapped equivalent of this direction, dropping the
// ranges.
func (s PitchYawClamped) PitchYaw() PitchYaw {
	return NewPitchYaw(s.pitch, s.yaw)
}
