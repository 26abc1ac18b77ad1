package hull

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/fluid"
	"github.com/Hafeezqazi/myring-explorer-AUV/internal/numeric"
)

// Result bundles the sampled profile and every derived quantity for one
// hull configuration. A Result is produced fresh on every Compute call
// and is never mutated afterwards.
type Result struct {
	// Offsets actually used (m). When a radius target was set these are
	// the derived values; callers syncing an offset control should read
	// them back from here.
	HeadOffset float64
	TailOffset float64

	// Effective segment lengths after truncation and their sum (m).
	HeadEffective float64
	MidLength     float64
	TailEffective float64
	TotalLength   float64

	// Sampled profile: X is strictly increasing over [0, TotalLength],
	// R is the non-negative hull radius and Areas the cross-section
	// area πr² at each station.
	X     []float64
	R     []float64
	Areas []float64

	// Scalars
	FrontRadius        float64 // radius at the nose cut (m)
	SternRadius        float64 // radius at the stern cut (m)
	Volume             float64 // displaced volume (m³)
	BuoyancyCenterX    float64 // x of the center of buoyancy (m)
	LengthOverDiameter float64
	WettedArea         float64 // wetted surface area (m²)

	// Drag estimate, present only when a positive speed was supplied.
	ReynoldsNumber      *float64
	FrictionCoefficient *float64
	FrictionDrag        *float64 // N

	// Revolution surface for 3D consumers.
	Surface *Surface
}

// Compute runs the full pipeline: validation, offset resolution,
// discretisation, integral metrics and surface generation. It is a pure
// function of p and safe for concurrent use.
func Compute(p Parameters) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	d := p.Diameter
	theta := p.TailAngleDeg * math.Pi / 180

	headOffset := p.HeadOffset
	if p.FrontRadiusTarget != nil {
		headOffset = solveHeadOffset(*p.FrontRadiusTarget, d, p.HeadExponent, p.HeadLength)
	}
	tailOffset := p.TailOffset
	if p.SternRadiusTarget != nil {
		tailOffset = solveTailOffset(*p.SternRadiusTarget, d, theta, p.TailLength)
	}

	headEff := p.HeadLength - headOffset
	tailEff := p.TailLength - tailOffset
	total := headEff + p.MidLength + tailEff

	if headEff <= 0 || tailEff <= 0 {
		return nil, fmt.Errorf("%w: offsets truncate the head or tail entirely (a_eff=%g, c_eff=%g)",
			ErrDegenerateGeometry, headEff, tailEff)
	}

	xs, rs, err := sampleProfile(p, headEff, tailEff, total, theta)
	if err != nil {
		return nil, err
	}

	res := &Result{
		HeadOffset:    headOffset,
		TailOffset:    tailOffset,
		HeadEffective: headEff,
		MidLength:     p.MidLength,
		TailEffective: tailEff,
		TotalLength:   total,
		X:             xs,
		R:             rs,
		FrontRadius:   rs[0],
		SternRadius:   rs[len(rs)-1],
	}

	if err := res.deriveMetrics(p); err != nil {
		return nil, err
	}
	res.Surface = revolve(xs, rs)
	return res, nil
}

// sampleProfile discretises the three segments and concatenates them
// into one strictly increasing station sequence.
func sampleProfile(p Parameters, headEff, tailEff, total, theta float64) (xs, rs []float64, err error) {
	na := segmentCount(headEff, p.SamplesPerMeter)
	nb := segmentCount(p.MidLength, p.SamplesPerMeter)
	nc := segmentCount(tailEff, p.SamplesPerMeter)

	// Head and mid drop their last station: it coincides with the next
	// segment's first. The tail keeps its last station, the stern tip.
	xHead := floats.Span(make([]float64, na+1), 0, headEff)[:na]
	xMid := floats.Span(make([]float64, nb+1), headEff, headEff+p.MidLength)[:nb]
	xTail := floats.Span(make([]float64, nc), headEff+p.MidLength, total)

	xs = make([]float64, 0, na+nb+nc)
	rs = make([]float64, 0, na+nb+nc)

	for _, x := range xHead {
		xs = append(xs, x)
		rs = append(rs, headRadius(x-headEff, p.Diameter, p.HeadExponent, p.HeadLength))
	}
	for _, x := range xMid {
		xs = append(xs, x)
		rs = append(rs, 0.5*p.Diameter)
	}
	for _, x := range xTail {
		xs = append(xs, x)
		rs = append(rs, tailRadius(x-(headEff+p.MidLength), p.Diameter, theta, p.TailLength))
	}

	// Guard against residual float-equal junction stations and negative
	// cubic excursions.
	xs, rs = dedupeClip(xs, rs)
	if len(xs) < 3 {
		return nil, nil, fmt.Errorf("%w: only %d stations survived; increase the sampling density",
			ErrInsufficientSamples, len(xs))
	}
	return xs, rs, nil
}

// segmentCount is the station count for a segment of the given
// effective length, never fewer than 3.
func segmentCount(length float64, samplesPerMeter int) int {
	n := int(math.Round(length * float64(samplesPerMeter)))
	if n < 3 {
		n = 3
	}
	return n
}

// dedupeClip removes repeated stations (keeping the first occurrence;
// the input is already sorted) and clips radii to ≥0 in place.
func dedupeClip(xs, rs []float64) ([]float64, []float64) {
	out := 0
	for i := range xs {
		if i > 0 && xs[i] == xs[out-1] {
			continue
		}
		xs[out] = xs[i]
		r := rs[i]
		if r < 0 {
			r = 0
		}
		rs[out] = r
		out++
	}
	return xs[:out], rs[:out]
}

// deriveMetrics fills in the metrics derived from the sampled profile.
func (res *Result) deriveMetrics(p Parameters) error {
	n := len(res.X)

	res.Areas = make([]float64, n)
	moment := make([]float64, n)
	for i, r := range res.R {
		res.Areas[i] = math.Pi * r * r
		moment[i] = res.X[i] * res.Areas[i]
	}

	res.Volume = integrate.Trapezoidal(res.X, res.Areas)
	if res.Volume <= 0 {
		return fmt.Errorf("%w: integrated volume %g m³", ErrNonPositiveVolume, res.Volume)
	}
	res.BuoyancyCenterX = integrate.Trapezoidal(res.X, moment) / res.Volume
	res.LengthOverDiameter = res.TotalLength / p.Diameter

	// Wetted area by the surface-of-revolution formula
	// S = 2π ∫ r·√(1 + (dr/dx)²) dx.
	drdx := numeric.Gradient(res.X, res.R)
	integrand := make([]float64, n)
	for i := range integrand {
		integrand[i] = res.R[i] * math.Sqrt(1+drdx[i]*drdx[i])
	}
	res.WettedArea = 2 * math.Pi * integrate.Trapezoidal(res.X, integrand)

	// The drag estimate is an optional annex: absence means "not
	// applicable", never zero.
	if p.Speed != nil && *p.Speed > 0 && p.Viscosity > 0 {
		re := fluid.Reynolds(*p.Speed, res.TotalLength, p.Viscosity)
		if re > 0 {
			cf := fluid.ITTC57(re)
			df := fluid.FrictionDrag(p.Density, *p.Speed, res.WettedArea, cf)
			res.ReynoldsNumber = &re
			res.FrictionCoefficient = &cf
			res.FrictionDrag = &df
		}
	}
	return nil
}
