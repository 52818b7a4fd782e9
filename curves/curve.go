package curves

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mbrea-c/go-utilitarian/point"
)

// Curve maps a normalized parameter to a value of type P.
type Curve[P point.Point[P]] interface {
	// Eval returns the curve value at parameter t. Values of t outside
	// [0, 1] are clamped, so Eval is total and pure.
	Eval(t float32) P
}

// ErrInvalidCurve indicates malformed curve control data, such as too few
// points or a non-increasing parameter sequence.
var ErrInvalidCurve = errors.New("invalid curve definition")

// clamp01 saturates the curve parameter into [0, 1]. NaN maps to 0 so a
// bad parameter degrades to the curve start instead of propagating.
func clamp01(t float32) float32 {
	if !(t > 0) {
		return 0
	}
	return mgl32.Clamp(t, 0, 1)
}
