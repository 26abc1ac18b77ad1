package fluid

import "math"

// Reference water properties at typical operating temperatures.

const (
	// Seawater, ~15 °C
	SeawaterDensity   = 1030.0  // kg/m³
	SeawaterViscosity = 1.19e-6 // kinematic, m²/s

	// Fresh water, ~20 °C
	FreshwaterDensity   = 998.0   // kg/m³
	FreshwaterViscosity = 1.00e-6 // kinematic, m²/s
)

// Reynolds returns the length-based Reynolds number U·L/ν.
func Reynolds(speed, length, viscosity float64) float64 {
	return speed * length / viscosity
}

// ITTC57 returns the flat-plate friction coefficient from the ITTC 1957
// model-ship correlation line, Cf = 0.075/(log10 Re − 2)².
// Valid for Re > 100 (below that the denominator vanishes or flips sign).
func ITTC57(reynolds float64) float64 {
	den := math.Log10(reynolds) - 2.0
	return 0.075 / (den * den)
}

// FrictionDrag returns the frictional resistance 0.5·ρ·U²·S·Cf for a
// wetted surface area S.
func FrictionDrag(density, speed, wettedArea, cf float64) float64 {
	return 0.5 * density * speed * speed * wettedArea * cf
}
