package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvertByLookupMonotone(t *testing.T) {
	square := func(x float64) float64 { return x * x }

	x := InvertByLookup(square, 0, 2, 2001, 1.0)
	assert.InDelta(t, 1.0, x, 1e-6, "sqrt(1)")

	x = InvertByLookup(square, 0, 2, 2001, 2.0)
	assert.InDelta(t, math.Sqrt2, x, 1e-6, "sqrt(2)")
}

func TestInvertByLookupClampsTarget(t *testing.T) {
	square := func(x float64) float64 { return x * x }

	// Targets outside the observed range saturate at the interval ends.
	assert.Equal(t, 2.0, InvertByLookup(square, 0, 2, 1001, 10.0), "above range")
	assert.Equal(t, 0.0, InvertByLookup(square, 0, 2, 1001, -1.0), "below range")
}

func TestInvertByLookupNonMonotone(t *testing.T) {
	// sin is non-monotone over [0, 2π]; any preimage is acceptable as
	// long as it actually maps to the target.
	x := InvertByLookup(math.Sin, 0, 2*math.Pi, 4001, 0.5)
	assert.InDelta(t, 0.5, math.Sin(x), 1e-5)
}

func TestInvertByLookupPlateau(t *testing.T) {
	// A flat stretch fills the table with duplicate values; targets off
	// the plateau must still invert cleanly.
	f := func(x float64) float64 {
		if x < 0.5 {
			return 0
		}
		return x - 0.5
	}
	x := InvertByLookup(f, 0, 1, 1001, 0.2)
	assert.InDelta(t, 0.7, x, 1e-9)

	// A target on the plateau returns one of its preimages.
	x = InvertByLookup(f, 0, 1, 1001, 0)
	assert.InDelta(t, 0.0, f(x), 1e-12)
}

func TestInvertByLookupDecreasing(t *testing.T) {
	f := func(x float64) float64 { return 3 - 2*x }
	x := InvertByLookup(f, 0, 1, 1001, 2.0)
	assert.InDelta(t, 0.5, x, 1e-9)
}
