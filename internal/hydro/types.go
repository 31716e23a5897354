package hydro

import "github.com/aquawatt/hydrocalc/internal/turbine"

// SiteParams contains the physical and financial inputs for a single
// hydropower potential estimate.
type SiteParams struct {
	// HeadM is the net head in meters (> 0).
	HeadM float64 `json:"head_m" yaml:"head_m"`

	// FlowM3s is the design flow rate in m³/s (> 0).
	FlowM3s float64 `json:"flow_m3s" yaml:"flow_m3s"`

	// TurbineType selects the turbine family for efficiency adjustment.
	TurbineType turbine.Type `json:"turbine_type" yaml:"turbine_type"`

	// Efficiency is the combined turbine/generator/transformer efficiency
	// as a fraction in (0, 1].
	Efficiency float64 `json:"efficiency" yaml:"efficiency"`

	// ElectricityPrice is the average selling price in $/MWh (>= 0).
	ElectricityPrice float64 `json:"electricity_price" yaml:"electricity_price"`

	// ProjectLifetime is the operational lifetime in years (> 0).
	ProjectLifetime int `json:"project_lifetime" yaml:"project_lifetime"`

	// DiscountRate is the discount rate as a fraction in [0, 1).
	DiscountRate float64 `json:"discount_rate" yaml:"discount_rate"`

	// CapacityFactor is the ratio of average to nameplate output as a
	// fraction in (0, 1].
	CapacityFactor float64 `json:"capacity_factor" yaml:"capacity_factor"`

	// CapexPerKw is the capital expenditure per installed kW in $/kW (> 0).
	CapexPerKw float64 `json:"capex_per_kw" yaml:"capex_per_kw"`

	// OmFraction is the annual O&M cost as a fraction of CAPEX (>= 0).
	OmFraction float64 `json:"om_fraction" yaml:"om_fraction"`
}

// BasicParameters echoes the site inputs for reporting. Efficiency and
// capacity factor are carried as percentages here, matching export rows.
type BasicParameters struct {
	HeadM          float64      `json:"head_m"`
	FlowM3s        float64      `json:"flow_m3s"`
	TurbineType    turbine.Type `json:"turbine_type"`
	Efficiency     float64      `json:"efficiency"`
	CapacityFactor float64      `json:"capacity_factor"`
}

// PowerGeneration contains the power and annual energy estimates.
type PowerGeneration struct {
	TheoreticalPowerKw    float64 `json:"theoretical_power_kw"`
	ActualPowerKw         float64 `json:"actual_power_kw"`
	AnnualEnergyMwh       float64 `json:"annual_energy_mwh"`
	CapacityFactorPercent float64 `json:"capacity_factor_percent"`
}

// EconomicMetrics contains the project economics.
//
// SimplePaybackYears is +Inf when the net annual cash flow is not
// positive; Lcoe is +Inf when discounted lifetime energy is zero. Both
// are documented sentinels, not errors.
type EconomicMetrics struct {
	TotalCapex         float64 `json:"total_capex"`
	AnnualRevenue      float64 `json:"annual_revenue"`
	AnnualOm           float64 `json:"annual_om"`
	Lcoe               float64 `json:"lcoe"`
	SimplePaybackYears float64 `json:"simple_payback_years"`
	Npv                float64 `json:"npv"`
	ElectricityPrice   float64 `json:"electricity_price"`
}

// TechnicalSpecs records the physical constants and financial assumptions
// the estimate was produced under.
type TechnicalSpecs struct {
	WaterDensity    float64 `json:"water_density"`
	Gravity         float64 `json:"gravity"`
	ProjectLifetime int     `json:"project_lifetime"`
	DiscountRate    float64 `json:"discount_rate"`
}

// Result is the complete output of one estimate. It is a value object:
// produced once per input set and never mutated afterwards.
type Result struct {
	BasicParameters BasicParameters `json:"basic_parameters"`
	PowerGeneration PowerGeneration `json:"power_generation"`
	EconomicMetrics EconomicMetrics `json:"economic_metrics"`
	TechnicalSpecs  TechnicalSpecs  `json:"technical_specs"`
}

// UnitCostPerKw returns the installed cost per kW of actual capacity.
func (r Result) UnitCostPerKw() float64 {
	if r.PowerGeneration.ActualPowerKw == 0 {
		return 0
	}
	return r.EconomicMetrics.TotalCapex / r.PowerGeneration.ActualPowerKw
}
