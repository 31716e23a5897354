// Package report renders estimate results into the fixed-format summary
// report and classifies project viability.
package report

import "github.com/aquawatt/hydrocalc/internal/hydro"

// Classification grades the economic viability of a project.
type Classification string

const (
	HighlyViable Classification = "HIGHLY VIABLE"
	Viable       Classification = "VIABLE"
	Marginal     Classification = "MARGINAL"
	Challenging  Classification = "CHALLENGING"
)

// viability thresholds in $/MWh (LCOE) and years (payback). The tiers
// are checked in order and the first match wins; this ordering is part
// of the report contract.
const (
	highlyViableLcoe    = 80.0
	highlyViablePayback = 15.0
	viableLcoe          = 120.0
	viablePayback       = 20.0
	marginalLcoe        = 150.0
	marginalPayback     = 25.0
)

// Classify grades a result. Infinite payback or LCOE fails every
// threshold comparison and lands in CHALLENGING unless the MARGINAL
// criteria are met, which they cannot be with infinite values.
func Classify(res hydro.Result) Classification {
	lcoe := res.EconomicMetrics.Lcoe
	payback := res.EconomicMetrics.SimplePaybackYears
	npv := res.EconomicMetrics.Npv

	switch {
	case lcoe < highlyViableLcoe && payback < highlyViablePayback && npv > 0:
		return HighlyViable
	case lcoe < viableLcoe && payback < viablePayback && npv > 0:
		return Viable
	case lcoe < marginalLcoe && payback < marginalPayback:
		return Marginal
	default:
		return Challenging
	}
}

// Advice returns the one-line recommendation attached to each grade in
// the summary report.
func (c Classification) Advice() string {
	switch c {
	case HighlyViable:
		return "Excellent economic potential"
	case Viable:
		return "Good economic potential"
	case Marginal:
		return "Consider optimization"
	default:
		return "Detailed study recommended"
	}
}
