package hull

import (
	"math"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/numeric"
)

// offsetMargin keeps a resolved offset strictly inside its segment so
// the effective length never collapses to exactly zero.
const offsetMargin = 1e-9

// tailLookupSamples is the density of the lookup table used to invert
// the tail cubic. Calls happen at interactive rates, so a couple of
// thousand evaluations is cheap.
const tailLookupSamples = 2000

// solveHeadOffset inverts the head equation for the nose cut that
// yields the target front radius. The head curve is monotone and
// analytically invertible:
//
//	offset = a·(1 − √(1 − y)),  y = (2·target/D)^n
//
// Both the normalized target and y are clamped to [0, 1] rather than
// rejected, so targets outside the attainable radius range saturate at
// the nearest achievable cut. Clamping before the exponentiation also
// keeps negative targets out of math.Pow, which would return NaN for
// fractional exponents.
func solveHeadOffset(target, diameter, exponent, headLength float64) float64 {
	base := clamp(2*target/diameter, 0, 1)
	y := math.Pow(base, exponent)
	offset := headLength * (1 - math.Sqrt(1-y))
	return clamp(offset, 0, headLength-offsetMargin)
}

// solveTailOffset inverts the tail cubic for the stern cut that yields
// the target stern radius. The cubic is not trivially invertible and
// can be non-monotone near the tip, so the inversion goes through a
// dense sorted lookup table instead of a root finder: deterministic,
// branch-free, and safe against the non-monotone region.
func solveTailOffset(target, diameter, thetaRad, tailLength float64) float64 {
	radiusAtOffset := func(offset float64) float64 {
		r := tailRadius(tailLength-offset, diameter, thetaRad, tailLength)
		if r < 0 {
			r = 0
		}
		return r
	}
	offset := numeric.InvertByLookup(radiusAtOffset, 0, tailLength-offsetMargin,
		tailLookupSamples, target)
	return clamp(offset, 0, tailLength-offsetMargin)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
