package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradientLinear(t *testing.T) {
	xs := []float64{0, 0.1, 0.35, 0.5, 1.2}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3*x + 1
	}
	for i, g := range Gradient(xs, ys) {
		assert.InDelta(t, 3.0, g, 1e-12, "point %d", i)
	}
}

func TestGradientQuadraticNonUniform(t *testing.T) {
	// The three-point stencils are exact for quadratics, including the
	// one-sided edge stencils, even on irregular spacing.
	xs := []float64{0, 0.07, 0.2, 0.55, 0.6, 1.0}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x*x - x + 5
	}
	grad := Gradient(xs, ys)
	for i, x := range xs {
		assert.InDelta(t, 4*x-1, grad[i], 1e-10, "point %d", i)
	}
}

func TestGradientPanics(t *testing.T) {
	assert.Panics(t, func() { Gradient([]float64{0, 1}, []float64{0, 1}) }, "too few points")
	assert.Panics(t, func() { Gradient([]float64{0, 1, 2}, []float64{0, 1}) }, "length mismatch")
	assert.Panics(t, func() { Gradient([]float64{0, 0, 1}, []float64{0, 1, 2}) }, "repeated abscissa")
}
