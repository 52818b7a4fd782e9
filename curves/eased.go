package curves

import (
	"fmt"

	"github.com/mbrea-c/go-utilitarian/point"
	"github.com/tanema/gween/ease"
)

// Eased is a curve from Start to End whose parameter is shaped by an
// easing function from github.com/tanema/gween/ease, e.g. ease.InOutCubic
// or ease.OutElastic. Easing functions that overshoot (Back, Elastic)
// produce values beyond the Start/End pair mid-curve; that is the easing
// family's defined behavior, not extrapolation.
type Eased[P point.Point[P]] struct {
	start, end P
	fn         ease.TweenFunc
}

// NewEased returns an eased curve between two values. A nil easing
// function is a construction error.
func NewEased[P point.Point[P]](start, end P, fn ease.TweenFunc) (Eased[P], error) {
	if fn == nil {
		return Eased[P]{}, fmt.Errorf("%w: easing function is nil", ErrInvalidCurve)
	}
	return Eased[P]{start: start, end: end, fn: fn}, nil
}

// Eval returns the eased value at t, clamping t into [0, 1].
func (c Eased[P]) Eval(t float32) P {
	f := c.fn(clamp01(t), 0, 1, 1)
	return c.start.Add(c.end.Sub(c.start).Mul(f))
}
