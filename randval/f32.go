package randval

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution selects the shape of a scalar generator.
type Distribution int

const (
	// Uniform samples every value in [Min, Max] with equal density.
	Uniform Distribution = iota

	// Normal samples a bell shape centered on the range midpoint, with
	// the range spanning six standard deviations; samples are clamped
	// into [Min, Max], so the far tails fold onto the bounds.
	Normal
)

// F32 generates random scalars in [Min, Max] with the configured
// distribution shape. The zero value generates a constant 0.
type F32 struct {
	Min, Max float32
	Dist     Distribution
}

// NewF32 returns a validated uniform scalar generator over [min, max].
func NewF32(min, max float32) (F32, error) {
	g := F32{Min: min, Max: max}
	if err := g.Validate(); err != nil {
		return F32{}, err
	}
	return g, nil
}

// NewNormalF32 returns a validated normal-shaped scalar generator over
// [min, max].
func NewNormalF32(min, max float32) (F32, error) {
	g := F32{Min: min, Max: max, Dist: Normal}
	if err := g.Validate(); err != nil {
		return F32{}, err
	}
	return g, nil
}

// ConstantF32 returns a generator that always samples exactly v.
func ConstantF32(v float32) F32 {
	return F32{Min: v, Max: v}
}

// Validate checks the generator configuration.
func (g F32) Validate() error {
	if math32.IsNaN(g.Min) || math32.IsNaN(g.Max) ||
		math32.IsInf(g.Min, 0) || math32.IsInf(g.Max, 0) {
		return fmt.Errorf("%w: bounds must be finite, got [%v, %v]", ErrInvalidConfig, g.Min, g.Max)
	}
	if g.Min > g.Max {
		return fmt.Errorf("%w: min %v greater than max %v", ErrInvalidConfig, g.Min, g.Max)
	}
	if g.Dist != Uniform && g.Dist != Normal {
		return fmt.Errorf("%w: unknown distribution %d", ErrInvalidConfig, g.Dist)
	}
	return nil
}

// Sample draws one scalar from the configured range. A degenerate range
// (Min == Max) returns Min exactly regardless of the source.
func (g F32) Sample(src Source) float32 {
	u := src.Float32()
	if g.Max <= g.Min {
		return g.Min
	}

	if g.Dist == Normal {
		mu := float64(g.Min+g.Max) / 2
		sigma := float64(g.Max-g.Min) / 6
		v := distuv.Normal{Mu: mu, Sigma: sigma}.Quantile(float64(u))
		// Quantile(0) is -Inf; the clamp folds it onto Min.
		return mgl32.Clamp(float32(v), g.Min, g.Max)
	}

	return g.Min + u*(g.Max-g.Min)
}
