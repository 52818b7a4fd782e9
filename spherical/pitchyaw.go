package spherical

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WrapAngle maps x into the canonical (-π, π] interval by modular
// arithmetic. Wrapping is idempotent: WrapAngle(WrapAngle(x)) == WrapAngle(x).
func WrapAngle(x float32) float32 {
	w := math32.Mod(x+math32.Pi, 2*math32.Pi)
	if w <= 0 {
		w += 2 * math32.Pi
	}
	return w - math32.Pi
}

// PitchYaw is a direction without a roll component. Every constructor and
// mutator keeps both angles wrapped into (-π, π]. The fields are exported
// for cheap reads and serialization; code that writes them directly must
// re-establish the invariant with [PitchYaw.Wrap].
type PitchYaw struct {
	// Pitch is the elevation angle in radians, positive toward +Y.
	Pitch float32
	// Yaw is the heading angle in radians about +Y.
	Yaw float32
}

// NewPitchYaw returns a wrapped direction from the given angles.
func NewPitchYaw(pitch, yaw float32) PitchYaw {
	return PitchYaw{Pitch: pitch, Yaw: yaw}.Wrap()
}

// PitchYawFromVec3 returns the direction pointing along dir.
// A zero-length dir yields the zero direction (-Z).
func PitchYawFromVec3(dir mgl32.Vec3) PitchYaw {
	l := dir.Len()
	if l == 0 {
		return PitchYaw{}
	}
	yaw := math32.Atan2(-dir.X(), -dir.Z())
	pitch := math32.Asin(dir.Y() / l)
	return NewPitchYaw(pitch, yaw)
}

// Set replaces both angles, wrapping the result.
func (s *PitchYaw) Set(pitch, yaw float32) {
	*s = NewPitchYaw(pitch, yaw)
}

// Add offsets both angles by the given deltas, wrapping the result.
func (s *PitchYaw) Add(deltaPitch, deltaYaw float32) {
	*s = NewPitchYaw(s.Pitch+deltaPitch, s.Yaw+deltaYaw)
}

// Wrap returns the direction with both angles mapped into (-π, π].
func (s PitchYaw) Wrap() PitchYaw {
	return PitchYaw{Pitch: WrapAngle(s.Pitch), Yaw: WrapAngle(s.Yaw)}
}

// Sub returns the angular delta from o to s as (pitch, yaw) in Vec2 X/Y
// order. Both components are wrap-aware: the delta never crosses the ±π
// seam the long way, so naive subtraction of raw angles near the seam does
// not produce a spurious near-2π jump.
func (s PitchYaw) Sub(o PitchYaw) mgl32.Vec2 {
	return mgl32.Vec2{
		WrapAngle(s.Pitch - o.Pitch),
		WrapAngle(s.Yaw - o.Yaw),
	}
}

// Len returns the Euclidean norm of the angle pair.
func (s PitchYaw) Len() float32 {
	return math32.Sqrt(s.Pitch*s.Pitch + s.Yaw*s.Yaw)
}

// Dist returns the wrap-aware angular distance between two directions.
func (s PitchYaw) Dist(o PitchYaw) float32 {
	return s.Sub(o).Len()
}

// Flip returns the direction mirrored through the pitch/yaw origin.
func (s PitchYaw) Flip() PitchYaw {
	return NewPitchYaw(-s.Pitch, -s.Yaw)
}

// StepToward moves each component of s independently toward target by at
// most maxDelta radians, taking the short way around the yaw seam, and
// snapping a component exactly onto the target once it is within range.
func (s PitchYaw) StepToward(target PitchYaw, maxDelta float32) PitchYaw {
	d := target.Sub(s)
	var out PitchYaw

	if math32.Abs(d.X()) < maxDelta {
		out.Pitch = target.Pitch
	} else {
		out.Pitch = s.Pitch + signed(maxDelta, d.X())
	}

	if math32.Abs(d.Y()) < maxDelta {
		out.Yaw = target.Yaw
	} else {
		out.Yaw = s.Yaw + signed(maxDelta, d.Y())
	}

	return out.Wrap()
}

// Vec3 returns the unit direction vector for the angle pair.
func (s PitchYaw) Vec3() mgl32.Vec3 {
	xz := math32.Cos(s.Pitch)
	return mgl32.Vec3{
		-math32.Sin(s.Yaw) * xz,
		math32.Sin(s.Pitch),
		-math32.Cos(s.Yaw) * xz,
	}
}

// Quat returns the rotation taking the -Z axis to this direction:
// yaw about +Y composed with pitch about the local X axis, so
// s.Quat().Rotate(-Z) == s.Vec3().
func (s PitchYaw) Quat() mgl32.Quat {
	return mgl32.QuatRotate(s.Yaw, mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(s.Pitch, mgl32.Vec3{1, 0, 0}))
}

// signed returns magnitude with the sign of direction; zero direction
// yields zero so a settled axis produces no movement.
func signed(magnitude, direction float32) float32 {
	switch {
	case direction > 0:
		return magnitude
	case direction < 0:
		return -magnitude
	default:
		return 0
	}
}
