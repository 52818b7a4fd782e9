// Package curves provides pure parametric curves mapping a normalized
// parameter t to an interpolated value.
//
// A curve is immutable after construction and evaluation has no side
// effects, so a single curve can be shared and evaluated from anywhere.
// Every curve kind in this package uses the same out-of-range policy:
// t is clamped into [0, 1] before evaluation, making Eval total over the
// real line. A parameter falling exactly on a segment boundary belongs to
// the later segment (closed-open intervals), so evaluation is a
// single-valued function.
//
// Curves are generic over [point.Point], covering scalars
// ([point.Scalar]), mgl32 vectors and colors ([point.RGBA]); [Gradient]
// names the color case.
//
// # Quick start
//
//	c, err := curves.NewUniform([]point.Scalar{2, 8})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v := c.Eval(0.5) // 5
//
// Eased variants reuse the easing families from github.com/tanema/gween:
//
//	fade := curves.NewEased(point.Scalar(0), point.Scalar(1), ease.InOutCubic)
package curves
