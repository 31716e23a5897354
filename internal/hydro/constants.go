// Package hydro estimates hydropower generation potential and project
// economics from site parameters using the standard P = ρ·g·Q·H·η formula.
package hydro

const (
	// WaterDensity is the density of water in kg/m³.
	WaterDensity = 1000.0

	// Gravity is the gravitational acceleration in m/s².
	Gravity = 9.81

	// HoursPerYear is the standard hours per year for energy calculations.
	HoursPerYear = 8760.0
)
