package hydro

// seasonalFactors is a fixed monthly shape for screening-level generation
// profiles: higher in spring snowmelt, lower in late summer. The factors
// sum to 11.1 rather than 12, so the profile totals slightly under the
// annual estimate; it is illustrative, not a hydrology model.
var seasonalFactors = [12]float64{
	0.8, 0.9, 1.2, 1.3, 1.1, 0.9,
	0.7, 0.6, 0.8, 0.9, 1.0, 0.9,
}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlyEnergy is one month of the simulated generation profile.
type MonthlyEnergy struct {
	Month     string  `json:"month"`
	EnergyMwh float64 `json:"energy_mwh"`
}

// MonthlyProfile distributes the annual energy estimate over twelve
// months using the fixed seasonal factors. Each month receives
// annual × factor / 12.
func MonthlyProfile(res Result) []MonthlyEnergy {
	annual := res.PowerGeneration.AnnualEnergyMwh
	profile := make([]MonthlyEnergy, 12)
	for i := range seasonalFactors {
		profile[i] = MonthlyEnergy{
			Month:     monthNames[i],
			EnergyMwh: annual * seasonalFactors[i] / 12,
		}
	}
	return profile
}

// CashFlowSeries returns the cumulative project cash flow by year.
// Index 0 is the initial investment (-CAPEX); each subsequent index adds
// the constant net annual cash flow. The slice has lifetime+1 entries.
func CashFlowSeries(res Result) []float64 {
	lifetime := res.TechnicalSpecs.ProjectLifetime
	net := res.EconomicMetrics.AnnualRevenue - res.EconomicMetrics.AnnualOm

	series := make([]float64, lifetime+1)
	series[0] = -res.EconomicMetrics.TotalCapex
	for year := 1; year <= lifetime; year++ {
		series[year] = series[year-1] + net
	}
	return series
}
