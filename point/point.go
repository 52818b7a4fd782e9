// Package point defines the shared value-type primitives that curves,
// steppers and randomized values are generic over.
//
// The library interpolates scalars, vectors and colors with the same
// formulas, so the generic constraints here describe the minimal algebra
// those formulas need: closure under addition, subtraction and scalar
// multiplication. The mgl32 vector types satisfy [Point] and [Metric]
// natively; [Scalar] and [RGBA] cover the remaining value kinds.
package point

// Point constrains the value types a curve or stepper can operate on.
// mgl32.Vec2, mgl32.Vec3 and mgl32.Vec4 satisfy it without adapters.
type Point[P any] interface {
	Add(P) P
	Sub(P) P
	Mul(float32) P
}

// Metric extends Point with a norm, required by speed-limited steppers to
// measure the remaining distance to their target.
type Metric[P any] interface {
	Point[P]
	Len() float32
}
