// Package turbine provides turbine type definitions and head-dependent
// nominal efficiency factors for hydropower screening estimates.
package turbine

import "fmt"

// Type identifies a hydropower turbine family.
type Type string

const (
	Kaplan    Type = "kaplan"
	Francis   Type = "francis"
	Pelton    Type = "pelton"
	CrossFlow Type = "cross_flow"
	Propeller Type = "propeller"
)

// DefaultEfficiencyFactor is used when a turbine type is not recognized.
// EfficiencyFactor deliberately does not error on unknown types; callers
// that need strict validation should go through ParseType first.
const DefaultEfficiencyFactor = 0.85

// EfficiencyFactor returns the nominal efficiency factor for a turbine
// type at the given net head in meters. Values are typical mid-range
// efficiencies for each family within its usual head band.
//
// Head bands:
//   - kaplan: low head (< 40 m) is its design regime
//   - francis: 10-350 m covers standard francis applications
//   - pelton: impulse turbines need high head (> 150 m) to perform
//   - cross_flow: flat 0.80 across all heads
//   - propeller: fixed-blade units degrade above ~15 m
//
// An unrecognized type silently falls back to DefaultEfficiencyFactor.
func EfficiencyFactor(t Type, headM float64) float64 {
	switch t {
	case Kaplan:
		if headM < 40 {
			return 0.90
		}
		return 0.85
	case Francis:
		if headM >= 10 && headM <= 350 {
			return 0.92
		}
		return 0.88
	case Pelton:
		if headM > 150 {
			return 0.88
		}
		return 0.82
	case CrossFlow:
		return 0.80
	case Propeller:
		if headM < 15 {
			return 0.85
		}
		return 0.80
	default:
		return DefaultEfficiencyFactor
	}
}

// Types lists every recognized turbine type.
func Types() []Type {
	return []Type{Kaplan, Francis, Pelton, CrossFlow, Propeller}
}

// ParseType validates a turbine type string. Unlike EfficiencyFactor,
// which tolerates unknown types, ParseType rejects them so that input
// edges (CLI, HTTP) can surface typos to the caller.
func ParseType(s string) (Type, error) {
	t := Type(s)
	switch t {
	case Kaplan, Francis, Pelton, CrossFlow, Propeller:
		return t, nil
	}
	return "", fmt.Errorf("unknown turbine type %q (valid: kaplan, francis, pelton, cross_flow, propeller)", s)
}
