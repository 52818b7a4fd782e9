package point

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RGBA is a linear-space color point with unclamped float32 components.
// It satisfies [Point] and [Metric] so colors can be interpolated by the
// same curves and steppers as scalars and vectors. Components are allowed
// to leave [0, 1] during interpolation arithmetic; clamping, if wanted, is
// the caller's concern at display time.
type RGBA struct {
	R, G, B, A float32
}

// NewRGBA returns a color point with the given components.
func NewRGBA(r, g, b, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Add returns the component-wise sum of c and o.
func (c RGBA) Add(o RGBA) RGBA {
	return RGBA{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Sub returns the component-wise difference of c and o.
func (c RGBA) Sub(o RGBA) RGBA {
	return RGBA{c.R - o.R, c.G - o.G, c.B - o.B, c.A - o.A}
}

// Mul returns c with every component scaled by s, alpha included.
func (c RGBA) Mul(s float32) RGBA {
	return RGBA{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Len returns the Euclidean norm over all four components.
func (c RGBA) Len() float32 {
	return math32.Sqrt(c.R*c.R + c.G*c.G + c.B*c.B + c.A*c.A)
}

// Lerp returns the linear blend of c and o at t.
func (c RGBA) Lerp(o RGBA, t float32) RGBA {
	return c.Add(o.Sub(c).Mul(t))
}

// Vec4 returns the color as an mgl32 vector in RGBA order.
func (c RGBA) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// RGBAFromVec4 converts an mgl32 vector in RGBA order to a color point.
func RGBAFromVec4(v mgl32.Vec4) RGBA {
	return RGBA{v.X(), v.Y(), v.Z(), v.W()}
}
