package numeric

// Gradient computes dy/dx for a sequence of samples that need not be
// uniformly spaced. Interior points use the second-order three-point
// stencil; the two edge points use one-sided second-order stencils.
//
// Gradient panics if the slices differ in length or hold fewer than
// three points, or if any spacing is zero.
func Gradient(xs, ys []float64) []float64 {
	n := len(xs)
	if len(ys) != n {
		panic("numeric: gradient input lengths differ")
	}
	if n < 3 {
		panic("numeric: gradient needs at least 3 points")
	}

	out := make([]float64, n)

	for i := 1; i < n-1; i++ {
		hs := xs[i] - xs[i-1]
		hd := xs[i+1] - xs[i]
		if hs == 0 || hd == 0 {
			panic("numeric: gradient requires distinct abscissae")
		}
		out[i] = (hs*hs*ys[i+1] + (hd*hd-hs*hs)*ys[i] - hd*hd*ys[i-1]) /
			(hs * hd * (hd + hs))
	}

	// One-sided stencils at the ends.
	h1, h2 := xs[1]-xs[0], xs[2]-xs[1]
	out[0] = -(2*h1+h2)/(h1*(h1+h2))*ys[0] +
		(h1+h2)/(h1*h2)*ys[1] -
		h1/(h2*(h1+h2))*ys[2]

	h1, h2 = xs[n-2]-xs[n-3], xs[n-1]-xs[n-2]
	out[n-1] = h2/(h1*(h1+h2))*ys[n-3] -
		(h1+h2)/(h1*h2)*ys[n-2] +
		(2*h2+h1)/(h2*(h1+h2))*ys[n-1]

	return out
}
