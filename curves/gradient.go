package curves

import "github.com/mbrea-c/go-utilitarian/point"

// Gradient is a color curve: particle tints, sky colors, UI fades.
type Gradient = Curve[point.RGBA]

// GradientStop pairs a parameter with a color.
type GradientStop struct {
	T     float32
	Color point.RGBA
}

// NewGradient builds a continuous linear gradient through the given
// stops. Stop parameters must start at 0 and strictly increase; at least
// two stops are required.
func NewGradient(stops []GradientStop) (Gradient, error) {
	keyframes := make([]Keyframe[point.RGBA], len(stops))
	for i, s := range stops {
		keyframes[i] = Keyframe[point.RGBA]{T: s.T, Value: s.Color}
	}
	return NewContinuous(keyframes)
}

// ConstantGradient returns a gradient that is the same color everywhere.
func ConstantGradient(c point.RGBA) Gradient {
	return NewConstant(c)
}
