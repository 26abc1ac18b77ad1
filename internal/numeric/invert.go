// Package numeric provides small numerical routines shared by the hull
// computations: function inversion by dense lookup and derivatives on
// non-uniformly spaced samples.
package numeric

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// InvertByLookup solves f(x) = target for x over [lo, hi] without
// requiring f to be monotone or analytically invertible.
//
// The interval is sampled at n evenly spaced points, the (x, f(x)) pairs
// are sorted by value, and the target is linearly interpolated back to
// an abscissa on the sorted table. The target is clamped to the observed
// value range first, so the returned x always lies inside [lo, hi].
//
// For non-monotone f the result is one valid preimage, chosen
// deterministically by the sort order. Duplicate values in the table
// (plateaus of f) are harmless: interpolation only ever runs on a
// bracket that strictly contains the target, so its width is nonzero.
func InvertByLookup(f func(float64) float64, lo, hi float64, n int, target float64) float64 {
	if n < 2 {
		n = 2
	}
	xs := floats.Span(make([]float64, n), lo, hi)
	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = f(x)
	}

	sort.Sort(&valueTable{xs: xs, ys: ys})

	if target <= ys[0] {
		return xs[0]
	}
	if target >= ys[n-1] {
		return xs[n-1]
	}

	// SearchFloat64s leaves ys[i-1] < target <= ys[i], so the bracket
	// is never zero-width.
	i := sort.SearchFloat64s(ys, target)
	y0, y1 := ys[i-1], ys[i]
	t := (target - y0) / (y1 - y0)
	return xs[i-1] + t*(xs[i]-xs[i-1])
}

// valueTable sorts paired samples by value, keeping abscissae attached.
type valueTable struct {
	xs, ys []float64
}

func (t *valueTable) Len() int           { return len(t.ys) }
func (t *valueTable) Less(i, j int) bool { return t.ys[i] < t.ys[j] }
func (t *valueTable) Swap(i, j int) {
	t.xs[i], t.xs[j] = t.xs[j], t.xs[i]
	t.ys[i], t.ys[j] = t.ys[j], t.ys[i]
}
