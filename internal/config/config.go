// Package config reads hull parameter files in gcfg/INI form.
package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/hull"
)

// ExampleFile documents every recognised key with the default hull as
// values. Print it, edit it, feed it back with --config.
const ExampleFile = `[Hull]

############
# Geometry #
############

# Maximum hull diameter (m).
Diameter = 0.254

# Myring head exponent n. 2 gives the elliptic head.
HeadExponent = 2.0

# Full (untruncated) segment lengths (m).
HeadLength = 0.155
MidLength = 1.987
TailLength = 0.7715

# Tail half-angle at the design tip (degrees).
TailAngle = 11.7

##############
# Truncation #
##############

# Nose and stern cuts (m). Ignored when the matching radius target
# below is set.
HeadOffset = 0.055
TailOffset = 0.2235

# Radius targets in MILLIMETERS. A value <= 0 means "not set": the
# explicit offsets above stay authoritative.
# FrontRadius = 80.0
# SternRadius = 40.0

##################
# Discretisation #
##################

# Axial stations per meter of hull.
SamplesPerMeter = 1000

#########
# Fluid #
#########

# Density (kg/m³) and kinematic viscosity (m²/s). Defaults are seawater.
Density = 1030
Viscosity = 1.19e-6

# Cruise speed (m/s) for the ITTC friction estimate. A value <= 0
# disables the estimate.
Speed = 2.0
`

// file mirrors the on-disk layout. Values are pointers so absent keys
// can fall back to the caller's defaults.
type file struct {
	Hull struct {
		Diameter        *float64
		HeadExponent    *float64
		HeadLength      *float64
		MidLength       *float64
		TailLength      *float64
		TailAngle       *float64
		HeadOffset      *float64
		TailOffset      *float64
		FrontRadius     *float64
		SternRadius     *float64
		SamplesPerMeter *int
		Density         *float64
		Viscosity       *float64
		Speed           *float64
	}
}

// Load reads path and overlays it onto base, returning the merged
// parameters. Keys absent from the file keep the base values.
func Load(path string, base hull.Parameters) (hull.Parameters, error) {
	var f file
	if err := gcfg.ReadFileInto(&f, path); err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	return merge(f, base), nil
}

// LoadString parses config text instead of a file. Used by tests and
// callers that embed their configuration.
func LoadString(text string, base hull.Parameters) (hull.Parameters, error) {
	var f file
	if err := gcfg.ReadStringInto(&f, text); err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	return merge(f, base), nil
}

func merge(f file, p hull.Parameters) hull.Parameters {
	h := f.Hull
	setF(&p.Diameter, h.Diameter)
	setF(&p.HeadExponent, h.HeadExponent)
	setF(&p.HeadLength, h.HeadLength)
	setF(&p.MidLength, h.MidLength)
	setF(&p.TailLength, h.TailLength)
	setF(&p.TailAngleDeg, h.TailAngle)
	setF(&p.HeadOffset, h.HeadOffset)
	setF(&p.TailOffset, h.TailOffset)
	setF(&p.Density, h.Density)
	setF(&p.Viscosity, h.Viscosity)
	if h.SamplesPerMeter != nil {
		p.SamplesPerMeter = *h.SamplesPerMeter
	}

	// Radius targets arrive in millimeters, the presentation unit.
	if h.FrontRadius != nil && *h.FrontRadius > 0 {
		v := *h.FrontRadius / 1000
		p.FrontRadiusTarget = &v
	}
	if h.SternRadius != nil && *h.SternRadius > 0 {
		v := *h.SternRadius / 1000
		p.SternRadiusTarget = &v
	}

	if h.Speed != nil {
		if *h.Speed > 0 {
			v := *h.Speed
			p.Speed = &v
		} else {
			p.Speed = nil
		}
	}
	return p
}

func setF(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
