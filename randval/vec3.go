package randval

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mbrea-c/go-utilitarian/point"
)

// Vec3 generates random vectors in a cone about Direction: the direction
// is tilted by up to Spread radians with a random roll, then scaled by a
// magnitude drawn from the Magnitude generator. Spread 0 degenerates to
// the fixed (normalized) direction, useful for emitters that only
// randomize strength.
type Vec3 struct {
	Magnitude F32
	Direction mgl32.Vec3
	Spread    float32
}

// NewVec3 returns a validated cone generator.
func NewVec3(magnitude F32, direction mgl32.Vec3, spread float32) (Vec3, error) {
	g := Vec3{Magnitude: magnitude, Direction: direction, Spread: spread}
	if err := g.Validate(); err != nil {
		return Vec3{}, err
	}
	return g, nil
}

// ConstantVec3 returns a generator that always samples exactly v.
func ConstantVec3(v mgl32.Vec3) Vec3 {
	return Vec3{
		Magnitude: ConstantF32(v.Len()),
		Direction: point.NormalizeOrZero(v),
	}
}

// Validate checks the generator configuration.
func (g Vec3) Validate() error {
	if err := g.Magnitude.Validate(); err != nil {
		return fmt.Errorf("magnitude: %w", err)
	}
	if math32.IsNaN(g.Spread) || g.Spread < 0 {
		return fmt.Errorf("%w: spread must be non-negative, got %v", ErrInvalidConfig, g.Spread)
	}
	if g.Spread > 0 && g.Direction.Len() == 0 {
		return fmt.Errorf("%w: spread cone needs a non-zero direction", ErrInvalidConfig)
	}
	return nil
}

// Sample draws one vector. The tilt and roll each consume one variate
// when Spread is positive, then the magnitude consumes one more.
func (g Vec3) Sample(src Source) mgl32.Vec3 {
	var dir mgl32.Vec3
	if g.Spread > 0 {
		roll := src.Float32() * 2 * math32.Pi
		tilt := src.Float32() * g.Spread

		local := mgl32.QuatRotate(roll, mgl32.Vec3{1, 0, 0}).
			Rotate(mgl32.Vec3{math32.Cos(tilt), 0, math32.Sin(tilt)})
		dir = mgl32.QuatBetweenVectors(mgl32.Vec3{1, 0, 0}, g.Direction).Rotate(local)
	} else {
		dir = point.NormalizeOrZero(g.Direction)
	}
	return dir.Mul(g.Magnitude.Sample(src))
}

// Vec3Box generates random vectors uniformly within an axis-aligned box,
// sampling each axis independently.
type Vec3Box struct {
	Min, Max mgl32.Vec3
}

// NewVec3Box returns a validated box generator.
func NewVec3Box(min, max mgl32.Vec3) (Vec3Box, error) {
	g := Vec3Box{Min: min, Max: max}
	if err := g.Validate(); err != nil {
		return Vec3Box{}, err
	}
	return g, nil
}

// Validate checks that every axis has Min ≤ Max with finite bounds.
func (g Vec3Box) Validate() error {
	for i := 0; i < 3; i++ {
		axis := F32{Min: g.Min[i], Max: g.Max[i]}
		if err := axis.Validate(); err != nil {
			return fmt.Errorf("axis %d: %w", i, err)
		}
	}
	return nil
}

// Sample draws one vector, consuming three variates (x, y, z order).
func (g Vec3Box) Sample(src Source) mgl32.Vec3 {
	var out mgl32.Vec3
	for i := 0; i < 3; i++ {
		out[i] = g.Min[i] + src.Float32()*(g.Max[i]-g.Min[i])
	}
	return out
}

// Vec3Sphere generates random vectors uniformly within a ball of the
// configured radius centered on the origin.
type Vec3Sphere struct {
	Radius float32
}

// NewVec3Sphere returns a validated ball generator.
func NewVec3Sphere(radius float32) (Vec3Sphere, error) {
	g := Vec3Sphere{Radius: radius}
	if err := g.Validate(); err != nil {
		return Vec3Sphere{}, err
	}
	return g, nil
}

// Validate checks that the radius is non-negative and finite.
func (g Vec3Sphere) Validate() error {
	if math32.IsNaN(g.Radius) || math32.IsInf(g.Radius, 0) || g.Radius < 0 {
		return fmt.Errorf("%w: radius must be non-negative and finite, got %v", ErrInvalidConfig, g.Radius)
	}
	return nil
}

// Sample draws one vector, consuming three variates: heading, the cosine
// of the polar angle (uniform on the sphere surface), and the radial
// fraction (cube root corrects for volume growing with r³).
func (g Vec3Sphere) Sample(src Source) mgl32.Vec3 {
	heading := src.Float32() * 2 * math32.Pi
	cosPolar := src.Float32()*2 - 1
	r := g.Radius * math32.Cbrt(src.Float32())

	sinPolar := math32.Sqrt(1 - cosPolar*cosPolar)
	return mgl32.Vec3{
		sinPolar * math32.Cos(heading),
		sinPolar * math32.Sin(heading),
		cosPolar,
	}.Mul(r)
}
