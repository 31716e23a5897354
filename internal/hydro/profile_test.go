package hydro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyProfile(t *testing.T) {
	res, err := Estimate(referenceSite())
	require.NoError(t, err)

	profile := MonthlyProfile(res)
	require.Len(t, profile, 12)

	assert.Equal(t, "Jan", profile[0].Month)
	assert.Equal(t, "Dec", profile[11].Month)

	// April carries the snowmelt peak, August the low-flow trough.
	peak, trough := profile[3], profile[7]
	assert.Equal(t, "Apr", peak.Month)
	assert.Equal(t, "Aug", trough.Month)
	for _, m := range profile {
		assert.LessOrEqual(t, m.EnergyMwh, peak.EnergyMwh, "month %s", m.Month)
		assert.GreaterOrEqual(t, m.EnergyMwh, trough.EnergyMwh, "month %s", m.Month)
	}

	// The fixed factors sum to 11.1 of 12, so the profile totals 92.5%
	// of the annual estimate.
	var total float64
	for _, m := range profile {
		total += m.EnergyMwh
	}
	assert.InDelta(t, res.PowerGeneration.AnnualEnergyMwh*11.1/12, total,
		res.PowerGeneration.AnnualEnergyMwh*1e-9)
}

func TestCashFlowSeries(t *testing.T) {
	res, err := Estimate(referenceSite())
	require.NoError(t, err)

	series := CashFlowSeries(res)
	require.Len(t, series, res.TechnicalSpecs.ProjectLifetime+1)

	assert.InDelta(t, -res.EconomicMetrics.TotalCapex, series[0], 1e-6)

	net := res.EconomicMetrics.AnnualRevenue - res.EconomicMetrics.AnnualOm
	for year := 1; year < len(series); year++ {
		assert.InDelta(t, net, series[year]-series[year-1], math.Abs(net)*1e-12,
			"year %d increment", year)
	}

	// A site with ~11-year payback crosses zero inside the lifetime.
	assert.Less(t, series[0], 0.0)
	assert.Greater(t, series[len(series)-1], 0.0)

	// The crossing year brackets the undiscounted payback estimate.
	crossing := 0
	for year, v := range series {
		if v >= 0 {
			crossing = year
			break
		}
	}
	assert.InDelta(t, res.EconomicMetrics.SimplePaybackYears, float64(crossing), 1.0)
}

func TestUnitCostPerKw(t *testing.T) {
	res, err := Estimate(referenceSite())
	require.NoError(t, err)

	// CAPEX is actual power × capex_per_kw, so unit cost round-trips the input.
	assert.InDelta(t, 3000.0, res.UnitCostPerKw(), 1e-9)

	assert.Zero(t, Result{}.UnitCostPerKw())
}
