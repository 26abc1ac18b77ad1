// Package hull computes truncated Myring bodies of revolution and their
// hydrostatic and frictional-drag metrics.
//
// The profile is the classic three-segment underwater-vehicle hull: an
// elliptic-power head, a cylindrical midbody and a cubic tail, with
// optional truncation of the nose and the stern. All quantities are SI
// (meters, kilograms, seconds).
package hull

import (
	"fmt"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/fluid"
)

// Parameters describes one hull configuration. Lengths are the full,
// untruncated segment lengths; HeadOffset and TailOffset cut material
// off the nose and the stern respectively.
type Parameters struct {
	// Geometry (m)
	Diameter     float64 // D - maximum hull diameter
	HeadExponent float64 // n - Myring head exponent
	HeadLength   float64 // a - full head length
	MidLength    float64 // b - cylindrical midbody length
	TailLength   float64 // c - full tail length
	TailAngleDeg float64 // θ - tail half-angle at the tip (degrees)

	// Truncation (m)
	HeadOffset float64 // nose cut, measured from the nose tip
	TailOffset float64 // stern cut, measured from the stern tip

	// Optional radius targets (m). When set, the corresponding offset
	// above is ignored and derived from the target instead.
	FrontRadiusTarget *float64
	SternRadiusTarget *float64

	// Discretisation
	SamplesPerMeter int // axial sampling density

	// Fluid
	Density   float64  // ρ (kg/m³)
	Viscosity float64  // ν, kinematic (m²/s)
	Speed     *float64 // U (m/s); enables the drag estimate when >0
}

// DefaultParameters returns the reference configuration: a 0.254 m
// diameter survey-class hull in seawater at 2 m/s.
func DefaultParameters() Parameters {
	speed := 2.0
	return Parameters{
		Diameter:        0.254,
		HeadExponent:    2.0,
		HeadLength:      0.155,
		MidLength:       1.987,
		TailLength:      0.7715,
		TailAngleDeg:    11.7,
		HeadOffset:      0.055,
		TailOffset:      0.2235,
		SamplesPerMeter: 1000,
		Density:         fluid.SeawaterDensity,
		Viscosity:       fluid.SeawaterViscosity,
		Speed:           &speed,
	}
}

// Validate checks the structural preconditions on p. Range limits beyond
// these belong to the caller, not here.
func (p Parameters) Validate() error {
	if p.Diameter <= 0 {
		return fmt.Errorf("%w: diameter must be positive, got %g", ErrInvalidParameter, p.Diameter)
	}
	if p.HeadLength <= 0 || p.TailLength <= 0 {
		return fmt.Errorf("%w: head and tail lengths must be positive, got a=%g c=%g",
			ErrInvalidParameter, p.HeadLength, p.TailLength)
	}
	if p.HeadExponent <= 0 {
		return fmt.Errorf("%w: head exponent must be positive, got %g", ErrInvalidParameter, p.HeadExponent)
	}
	if p.SamplesPerMeter < 3 {
		return fmt.Errorf("%w: samples per meter must be at least 3, got %d",
			ErrInvalidParameter, p.SamplesPerMeter)
	}
	return nil
}
