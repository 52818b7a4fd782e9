package point

import "github.com/chewxy/math32"

// Scalar is a float32 that satisfies [Point] and [Metric]. Plain float32
// cannot carry methods, so scalar-valued curves and steppers use this
// named type; conversion to and from float32 is free.
type Scalar float32

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar { return s + o }

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar { return s - o }

// Mul returns s scaled by c.
func (s Scalar) Mul(c float32) Scalar { return s * Scalar(c) }

// Len returns the absolute value of s.
func (s Scalar) Len() float32 { return math32.Abs(float32(s)) }
