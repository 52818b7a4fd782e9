package point

import "github.com/go-gl/mathgl/mgl32"

// NormalizeOrZero returns v normalized to unit length, or the zero vector
// when v has no direction. mgl32's Normalize produces NaN components for
// zero-length input, which would poison every downstream formula.
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
