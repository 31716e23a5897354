package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aquawatt/hydrocalc/internal/hydro"
)

func resultWith(lcoe, payback, npv float64) hydro.Result {
	return hydro.Result{
		EconomicMetrics: hydro.EconomicMetrics{
			Lcoe:               lcoe,
			SimplePaybackYears: payback,
			Npv:                npv,
		},
	}
}

// TestClassify pins the threshold table and its first-match-wins
// ordering.
func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		lcoe    float64
		payback float64
		npv     float64
		want    Classification
	}{
		{"strong project", 60, 10, 5e6, HighlyViable},
		{"just under all highly viable limits", 79.99, 14.99, 1, HighlyViable},
		{"lcoe at highly viable boundary drops a tier", 80, 10, 5e6, Viable},
		{"payback at highly viable boundary drops a tier", 60, 15, 5e6, Viable},
		{"good project", 100, 18, 1e6, Viable},
		{"negative npv but cheap energy is marginal", 100, 18, -1, Marginal},
		{"zero npv fails viable tiers", 70, 10, 0, Marginal},
		{"marginal band", 140, 24, -5e5, Marginal},
		{"lcoe past marginal", 150, 10, 1e6, Challenging},
		{"payback past marginal", 100, 25, -1, Challenging},
		{"expensive and slow", 300, 40, -1e7, Challenging},
		{"infinite payback", 90, math.Inf(1), -1e6, Challenging},
		{"infinite lcoe", math.Inf(1), math.Inf(1), -1e6, Challenging},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(resultWith(tt.lcoe, tt.payback, tt.npv))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassification_Advice(t *testing.T) {
	for _, c := range []Classification{HighlyViable, Viable, Marginal, Challenging} {
		assert.NotEmpty(t, c.Advice())
	}
}
