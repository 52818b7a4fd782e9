package curves

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mbrea-c/go-utilitarian/point"
)

// CircularOnSphere builds a linearized circular path over the unit sphere
// around the given normal, such as the sun's arc across the sky.
//
// offsetAlongNormal in [0, 1] shrinks the circle toward the normal's pole
// (0 is a great circle, 1 degenerates to the pole itself). offsetT
// rotates the path's starting phase. The path is sampled at nPoints
// (minimum 2) evenly spaced parameters and returned as a continuous
// piecewise-linear curve; more points give a rounder path.
//
// normal must be non-zero; a normal pointing straight down (-Y) has no
// unique rotation from +Y and is a degenerate input.
func CircularOnSphere(normal mgl32.Vec3, offsetAlongNormal, offsetT float32, nPoints int) (*Linear[mgl32.Vec3], error) {
	if nPoints < 2 {
		return nil, fmt.Errorf("%w: at least 2 points required, got %d", ErrInvalidCurve, nPoints)
	}
	if normal.Len() == 0 {
		return nil, fmt.Errorf("%w: normal must be non-zero", ErrInvalidCurve)
	}

	circleRadius := math32.Cos(offsetAlongNormal * math32.Pi / 2)

	// Phase the path so t=0 starts at the normal's horizontal heading.
	horiz := point.NormalizeOrZero(mgl32.Vec3{normal.X(), 0, normal.Z()})
	var startT float32
	if horiz.X() != 0 || horiz.Z() != 0 {
		startT = math32.Atan2(horiz.Z(), horiz.X()) / (2 * math32.Pi)
	}

	translation := normal.Mul(offsetAlongNormal)
	rotation := mgl32.QuatBetweenVectors(mgl32.Vec3{0, 1, 0}, normal)

	points := make([]mgl32.Vec3, nPoints)
	for i := range points {
		ti := float32(i) / float32(nPoints-1)
		t := startT + offsetT + ti
		for t > 1 {
			t--
		}
		p := circlePoint(t).Mul(circleRadius)
		points[i] = rotation.Rotate(p).Add(translation)
	}

	return NewUniform(points)
}

func circlePoint(t float32) mgl32.Vec3 {
	a := t * 2 * math32.Pi
	return mgl32.Vec3{math32.Cos(a), 0, math32.Sin(a)}
}
