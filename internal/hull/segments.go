package hull

import "math"

// Segment radius equations for the full (untruncated) Myring body.
// The head is parametrised by the signed distance s from the head/mid
// junction (s ∈ [−a, 0] over the full head), the tail by the distance dx
// from the mid/tail junction (dx ∈ [0, c]).

// headRadius evaluates r(s) = (D/2)·(1 − (s/a)²)^(1/n).
func headRadius(s, diameter, exponent, headLength float64) float64 {
	t := 1 - (s/headLength)*(s/headLength)
	if t < 0 {
		t = 0
	}
	return 0.5 * diameter * math.Pow(t, 1/exponent)
}

// tailRadius evaluates the cubic
//
//	r(dx) = D/2 − (1.5·D/c² − tanθ/c)·dx² + (D/c³ − tanθ/c²)·dx³
//
// where θ is the tail half-angle in radians. The cubic can dip below
// zero past the design tip; callers clip as needed.
func tailRadius(dx, diameter, thetaRad, tailLength float64) float64 {
	c := tailLength
	tanT := math.Tan(thetaRad)
	quad := 1.5*diameter/(c*c) - tanT/c
	cub := diameter/(c*c*c) - tanT/(c*c)
	return 0.5*diameter - quad*dx*dx + cub*dx*dx*dx
}
