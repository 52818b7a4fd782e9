package curves

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"
	"github.com/mbrea-c/go-utilitarian/point"
)

// Segment describes one linear span of a piecewise curve: the curve moves
// from Start to End over the parameter interval beginning at T.
type Segment[P point.Point[P]] struct {
	T          float32
	Start, End P
}

// Keyframe pairs a parameter with a control value for continuous curves.
type Keyframe[P point.Point[P]] struct {
	T     float32
	Value P
}

// Linear is a piecewise-linear curve. Segments need not be continuous:
// one segment's end may differ from the next segment's start, producing a
// step at the boundary. A parameter exactly on a boundary evaluates the
// later segment.
type Linear[P point.Point[P]] struct {
	keys []float32
	segs []span[P]
}

type span[P point.Point[P]] struct {
	start, end P
}

func (s span[P]) at(frac float32) P {
	return s.start.Add(s.end.Sub(s.start).Mul(frac))
}

// NewLinear builds a piecewise-linear curve from explicit segments.
// Segment parameters must start at 0, strictly increase, and lie in
// [0, 1); the final segment implicitly ends at parameter 1. At least one
// segment is required.
func NewLinear[P point.Point[P]](segments []Segment[P]) (*Linear[P], error) {
	if len(segments) < 1 {
		return nil, fmt.Errorf("%w: at least 1 segment required", ErrInvalidCurve)
	}

	c := &Linear[P]{
		keys: make([]float32, len(segments)),
		segs: make([]span[P], len(segments)),
	}
	for i, seg := range segments {
		if math32.IsNaN(seg.T) || seg.T < 0 || seg.T >= 1 {
			return nil, fmt.Errorf("%w: segment %d starts at t=%v, want [0, 1)", ErrInvalidCurve, i, seg.T)
		}
		if i == 0 && seg.T != 0 {
			return nil, fmt.Errorf("%w: first segment must start at t=0, got %v", ErrInvalidCurve, seg.T)
		}
		if i > 0 && seg.T <= segments[i-1].T {
			return nil, fmt.Errorf("%w: segment %d starts at t=%v, not after %v", ErrInvalidCurve, i, seg.T, segments[i-1].T)
		}
		c.keys[i] = seg.T
		c.segs[i] = span[P]{start: seg.Start, end: seg.End}
	}
	return c, nil
}

// NewContinuous builds a continuous piecewise-linear curve through keyed
// control points. Keyframe parameters must start at 0 and strictly
// increase; the last keyframe is reached exactly at parameter 1 and its T
// is not otherwise used. At least two keyframes are required.
func NewContinuous[P point.Point[P]](keyframes []Keyframe[P]) (*Linear[P], error) {
	if len(keyframes) < 2 {
		return nil, fmt.Errorf("%w: at least 2 keyframes required", ErrInvalidCurve)
	}

	segments := make([]Segment[P], len(keyframes)-1)
	for i := range segments {
		segments[i] = Segment[P]{
			T:     keyframes[i].T,
			Start: keyframes[i].Value,
			End:   keyframes[i+1].Value,
		}
	}
	return NewLinear(segments)
}

// NewUniform builds a continuous piecewise-linear curve through points
// spaced evenly over [0, 1]. At least two points are required.
func NewUniform[P point.Point[P]](points []P) (*Linear[P], error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: at least 2 points required", ErrInvalidCurve)
	}

	segments := make([]Segment[P], len(points)-1)
	for i := range segments {
		segments[i] = Segment[P]{
			T:     float32(i) / float32(len(points)-1),
			Start: points[i],
			End:   points[i+1],
		}
	}
	return NewLinear(segments)
}

// Eval returns the curve value at t, clamping t into [0, 1]. The segment
// containing t is found by binary search; a t exactly on a segment start
// evaluates that segment.
func (c *Linear[P]) Eval(t float32) P {
	t = clamp01(t)

	// Endpoints are returned exactly rather than through interpolation
	// arithmetic, so boundary values survive float rounding.
	if t <= 0 {
		return c.segs[0].start
	}
	if t >= 1 {
		return c.segs[len(c.segs)-1].end
	}

	idx := sort.Search(len(c.keys), func(i int) bool { return c.keys[i] > t }) - 1
	return c.segs[idx].at((t - c.keys[idx]) / c.segLength(idx))
}

func (c *Linear[P]) segLength(i int) float32 {
	if i == len(c.keys)-1 {
		return 1 - c.keys[i]
	}
	return c.keys[i+1] - c.keys[i]
}
