package curves

import "github.com/mbrea-c/go-utilitarian/point"

// Constant is a curve that returns the same value for every parameter.
type Constant[P point.Point[P]] struct {
	val P
}

// NewConstant returns a curve that evaluates to val everywhere.
func NewConstant[P point.Point[P]](val P) Constant[P] {
	return Constant[P]{val: val}
}

// Eval returns the constant value; t is ignored.
func (c Constant[P]) Eval(float32) P {
	return c.val
}
