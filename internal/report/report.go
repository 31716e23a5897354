package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aquawatt/hydrocalc/internal/hydro"
)

const divider = "=====================================\n"

// Render produces the fixed-format summary report for a result. The
// layout is a stable contract relied on by downstream tooling; change it
// deliberately and update the tests.
func Render(res hydro.Result, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("HYDROPOWER GENERATION ANALYSIS REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	b.WriteString(divider)
	b.WriteString("SITE PARAMETERS\n")
	b.WriteString(divider)
	fmt.Fprintf(&b, "Net Head:               %.1f m\n", res.BasicParameters.HeadM)
	fmt.Fprintf(&b, "Design Flow Rate:       %.1f m³/s\n", res.BasicParameters.FlowM3s)
	fmt.Fprintf(&b, "Turbine Type:           %s\n", titleCase(string(res.BasicParameters.TurbineType)))
	fmt.Fprintf(&b, "Overall Efficiency:     %.1f%%\n\n", res.BasicParameters.Efficiency)

	b.WriteString(divider)
	b.WriteString("POWER GENERATION ANALYSIS\n")
	b.WriteString(divider)
	fmt.Fprintf(&b, "Theoretical Power:      %s kW\n", group1(res.PowerGeneration.TheoreticalPowerKw))
	fmt.Fprintf(&b, "Actual Power Output:    %s kW\n", group1(res.PowerGeneration.ActualPowerKw))
	fmt.Fprintf(&b, "Annual Energy:          %s MWh/year\n", group1(res.PowerGeneration.AnnualEnergyMwh))
	fmt.Fprintf(&b, "Capacity Factor:        %.1f%%\n\n", res.PowerGeneration.CapacityFactorPercent)

	b.WriteString(divider)
	b.WriteString("ECONOMIC ANALYSIS\n")
	b.WriteString(divider)
	fmt.Fprintf(&b, "Total CAPEX:            $%s\n", group0(res.EconomicMetrics.TotalCapex))
	fmt.Fprintf(&b, "Unit Cost:              $%s/kW\n", group0(res.UnitCostPerKw()))
	fmt.Fprintf(&b, "Annual Revenue:         $%s/year\n", group0(res.EconomicMetrics.AnnualRevenue))
	fmt.Fprintf(&b, "Annual O&M Costs:       $%s/year\n", group0(res.EconomicMetrics.AnnualOm))
	fmt.Fprintf(&b, "LCOE:                   $%.2f/MWh\n", res.EconomicMetrics.Lcoe)
	fmt.Fprintf(&b, "Simple Payback:         %s\n", formatPayback(res.EconomicMetrics.SimplePaybackYears))
	fmt.Fprintf(&b, "Net Present Value:      $%s\n\n", group0(res.EconomicMetrics.Npv))

	b.WriteString(divider)
	b.WriteString("PROJECT VIABILITY\n")
	b.WriteString(divider)
	grade := Classify(res)
	fmt.Fprintf(&b, "Status: %s - %s\n\n", grade, grade.Advice())

	b.WriteString(divider)
	b.WriteString("DISCLAIMER\n")
	b.WriteString(divider)
	b.WriteString("This analysis provides preliminary estimates based on simplified calculations.\n")
	b.WriteString("Detailed engineering studies, environmental assessments, and site-specific\n")
	b.WriteString("analyses are required for actual project development.\n")

	return b.String()
}

func formatPayback(years float64) string {
	if math.IsInf(years, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.1f years", years)
}

// group0 and group1 format a value with thousands separators at zero and
// one decimal place respectively.
func group0(v float64) string { return groupThousands(v, 0) }
func group1(v float64) string { return groupThousands(v, 1) }

// groupThousands renders v with comma-separated thousands groups and the
// given number of decimals. Negative values keep their sign ahead of the
// first group.
func groupThousands(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + strings.Join(groups, ",") + fracPart
}

// titleCase uppercases the first letter of each underscore-separated
// word: "cross_flow" -> "Cross Flow".
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
