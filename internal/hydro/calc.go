package hydro

import (
	"math"

	"github.com/aquawatt/hydrocalc/internal/turbine"
)

// Estimate computes the hydropower potential and project economics for
// the given site parameters.
//
// The calculation pipeline:
//  1. Adjusted efficiency = input efficiency × turbine efficiency factor
//  2. Theoretical power (kW) = (ρ × g × Q × H) / 1000
//  3. Actual power = theoretical power × adjusted efficiency
//  4. Annual energy (MWh) = actual power × capacity factor × 8760 / 1000
//  5. CAPEX, annual O&M, annual revenue
//  6. LCOE = (CAPEX + PV of O&M) / PV of energy
//  7. Simple payback = CAPEX / net annual cash flow (+Inf if not positive)
//  8. NPV = -CAPEX + Σ discounted constant net cash flows
//
// Cash flow is constant across years: no escalation or degradation is
// modeled. Estimate is pure and deterministic; the only non-finite
// outputs are the documented +Inf sentinels for payback and LCOE.
func Estimate(p SiteParams) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	factor := turbine.EfficiencyFactor(p.TurbineType, p.HeadM)
	adjustedEfficiency := p.Efficiency * factor

	theoreticalPowerKw := (WaterDensity * Gravity * p.FlowM3s * p.HeadM) / 1000.0
	actualPowerKw := theoreticalPowerKw * adjustedEfficiency

	annualEnergyMwh := (actualPowerKw * p.CapacityFactor * HoursPerYear) / 1000.0

	totalCapex := actualPowerKw * p.CapexPerKw
	annualOm := totalCapex * p.OmFraction
	annualRevenue := annualEnergyMwh * p.ElectricityPrice

	annuity := AnnuityFactor(p.DiscountRate, p.ProjectLifetime)
	pvOm := annualOm * annuity
	pvEnergy := annualEnergyMwh * annuity

	lcoe := math.Inf(1)
	if pvEnergy > 0 {
		lcoe = (totalCapex + pvOm) / pvEnergy
	}

	netAnnualCashFlow := annualRevenue - annualOm
	simplePayback := math.Inf(1)
	if netAnnualCashFlow > 0 {
		simplePayback = totalCapex / netAnnualCashFlow
	}

	npv := -totalCapex
	for year := 1; year <= p.ProjectLifetime; year++ {
		npv += netAnnualCashFlow / math.Pow(1+p.DiscountRate, float64(year))
	}

	return Result{
		BasicParameters: BasicParameters{
			HeadM:          p.HeadM,
			FlowM3s:        p.FlowM3s,
			TurbineType:    p.TurbineType,
			Efficiency:     p.Efficiency * 100,
			CapacityFactor: p.CapacityFactor * 100,
		},
		PowerGeneration: PowerGeneration{
			TheoreticalPowerKw:    theoreticalPowerKw,
			ActualPowerKw:         actualPowerKw,
			AnnualEnergyMwh:       annualEnergyMwh,
			CapacityFactorPercent: p.CapacityFactor * 100,
		},
		EconomicMetrics: EconomicMetrics{
			TotalCapex:         totalCapex,
			AnnualRevenue:      annualRevenue,
			AnnualOm:           annualOm,
			Lcoe:               lcoe,
			SimplePaybackYears: simplePayback,
			Npv:                npv,
			ElectricityPrice:   p.ElectricityPrice,
		},
		TechnicalSpecs: TechnicalSpecs{
			WaterDensity:    WaterDensity,
			Gravity:         Gravity,
			ProjectLifetime: p.ProjectLifetime,
			DiscountRate:    p.DiscountRate * 100,
		},
	}, nil
}

// AnnuityFactor returns the present value of a unit annual payment over
// n years at discount rate r: (1 - (1+r)^-n) / r.
//
// The closed form divides by zero at r == 0, so that case is an explicit
// branch returning the limit value n rather than relying on
// floating-point behavior.
func AnnuityFactor(r float64, n int) float64 {
	if r == 0 {
		return float64(n)
	}
	return (1 - math.Pow(1+r, -float64(n))) / r
}
