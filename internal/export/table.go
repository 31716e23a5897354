// Package export flattens estimate results into the tabular, CSV, and
// JSON formats consumed by reporting tools.
package export

import (
	"fmt"
	"strconv"

	"github.com/aquawatt/hydrocalc/internal/hydro"
	"github.com/aquawatt/hydrocalc/internal/turbine"
)

// Row is one line of the flat parameter/value/unit export table.
// Section header rows carry an empty Value and Unit; separator rows are
// fully empty.
type Row struct {
	Parameter string
	Value     string
	Unit      string
}

// Section header parameters. FromTable uses them to scope duplicate
// parameter names (Capacity Factor appears in two sections of the
// original layout's ancestry; headers keep the scan unambiguous).
const (
	sectionPower    = "Power Generation"
	sectionEconomic = "Economic Metrics"
	sectionSpecs    = "Technical Specs"
)

// numeric formats a float so that parsing it back yields the identical
// bits. Infinity renders as "+Inf", which strconv.ParseFloat accepts.
func numeric(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// BuildTable flattens a result into the export table. Values are exact
// (shortest round-trip float formatting), not display-formatted; callers
// that want pretty numbers format at the edge.
func BuildTable(res hydro.Result) []Row {
	return []Row{
		{"Head", numeric(res.BasicParameters.HeadM), "m"},
		{"Flow Rate", numeric(res.BasicParameters.FlowM3s), "m³/s"},
		{"Turbine Type", string(res.BasicParameters.TurbineType), "-"},
		{"Overall Efficiency", numeric(res.BasicParameters.Efficiency), "%"},
		{},
		{Parameter: sectionPower},
		{"Theoretical Power", numeric(res.PowerGeneration.TheoreticalPowerKw), "kW"},
		{"Actual Power", numeric(res.PowerGeneration.ActualPowerKw), "kW"},
		{"Annual Energy", numeric(res.PowerGeneration.AnnualEnergyMwh), "MWh/year"},
		{"Capacity Factor", numeric(res.PowerGeneration.CapacityFactorPercent), "%"},
		{},
		{Parameter: sectionEconomic},
		{"Total CAPEX", numeric(res.EconomicMetrics.TotalCapex), "$"},
		{"Annual Revenue", numeric(res.EconomicMetrics.AnnualRevenue), "$/year"},
		{"Annual O&M", numeric(res.EconomicMetrics.AnnualOm), "$/year"},
		{"LCOE", numeric(res.EconomicMetrics.Lcoe), "$/MWh"},
		{"Simple Payback", numeric(res.EconomicMetrics.SimplePaybackYears), "years"},
		{"NPV", numeric(res.EconomicMetrics.Npv), "$"},
		{"Electricity Price", numeric(res.EconomicMetrics.ElectricityPrice), "$/MWh"},
		{},
		{Parameter: sectionSpecs},
		{"Water Density", numeric(res.TechnicalSpecs.WaterDensity), "kg/m³"},
		{"Gravity", numeric(res.TechnicalSpecs.Gravity), "m/s²"},
		{"Project Lifetime", strconv.Itoa(res.TechnicalSpecs.ProjectLifetime), "years"},
		{"Discount Rate", numeric(res.TechnicalSpecs.DiscountRate), "%"},
	}
}

// FromTable reconstructs a Result from a table produced by BuildTable.
// Every numeric field is restored exactly. Rows are matched by section
// and parameter name; unknown rows are ignored, missing required rows
// are an error.
func FromTable(rows []Row) (hydro.Result, error) {
	var res hydro.Result
	seen := make(map[string]bool, len(rows))
	section := ""

	for _, row := range rows {
		if row.Parameter == "" {
			continue
		}
		switch row.Parameter {
		case sectionPower, sectionEconomic, sectionSpecs:
			section = row.Parameter
			continue
		}

		key := section + "/" + row.Parameter
		seen[key] = true

		if row.Parameter == "Turbine Type" {
			res.BasicParameters.TurbineType = turbine.Type(row.Value)
			continue
		}

		v, err := strconv.ParseFloat(row.Value, 64)
		if err != nil {
			return hydro.Result{}, fmt.Errorf("row %q: parsing value %q: %w", row.Parameter, row.Value, err)
		}

		switch key {
		case "/Head":
			res.BasicParameters.HeadM = v
		case "/Flow Rate":
			res.BasicParameters.FlowM3s = v
		case "/Overall Efficiency":
			res.BasicParameters.Efficiency = v
		case sectionPower + "/Theoretical Power":
			res.PowerGeneration.TheoreticalPowerKw = v
		case sectionPower + "/Actual Power":
			res.PowerGeneration.ActualPowerKw = v
		case sectionPower + "/Annual Energy":
			res.PowerGeneration.AnnualEnergyMwh = v
		case sectionPower + "/Capacity Factor":
			// The source result carries the capacity factor in both the
			// echoed parameters and the generation block; the table
			// stores it once.
			res.PowerGeneration.CapacityFactorPercent = v
			res.BasicParameters.CapacityFactor = v
		case sectionEconomic + "/Total CAPEX":
			res.EconomicMetrics.TotalCapex = v
		case sectionEconomic + "/Annual Revenue":
			res.EconomicMetrics.AnnualRevenue = v
		case sectionEconomic + "/Annual O&M":
			res.EconomicMetrics.AnnualOm = v
		case sectionEconomic + "/LCOE":
			res.EconomicMetrics.Lcoe = v
		case sectionEconomic + "/Simple Payback":
			res.EconomicMetrics.SimplePaybackYears = v
		case sectionEconomic + "/NPV":
			res.EconomicMetrics.Npv = v
		case sectionEconomic + "/Electricity Price":
			res.EconomicMetrics.ElectricityPrice = v
		case sectionSpecs + "/Water Density":
			res.TechnicalSpecs.WaterDensity = v
		case sectionSpecs + "/Gravity":
			res.TechnicalSpecs.Gravity = v
		case sectionSpecs + "/Project Lifetime":
			res.TechnicalSpecs.ProjectLifetime = int(v)
		case sectionSpecs + "/Discount Rate":
			res.TechnicalSpecs.DiscountRate = v
		default:
			delete(seen, key) // unknown row, not counted as satisfied
		}
	}

	required := []string{
		"/Head", "/Flow Rate", "/Overall Efficiency", "/Turbine Type",
		sectionPower + "/Theoretical Power", sectionPower + "/Actual Power",
		sectionPower + "/Annual Energy", sectionPower + "/Capacity Factor",
		sectionEconomic + "/Total CAPEX", sectionEconomic + "/Annual Revenue",
		sectionEconomic + "/Annual O&M", sectionEconomic + "/LCOE",
		sectionEconomic + "/Simple Payback", sectionEconomic + "/NPV",
		sectionEconomic + "/Electricity Price",
		sectionSpecs + "/Water Density", sectionSpecs + "/Gravity",
		sectionSpecs + "/Project Lifetime", sectionSpecs + "/Discount Rate",
	}
	for _, key := range required {
		if !seen[key] {
			return hydro.Result{}, fmt.Errorf("table missing required row %q", key)
		}
	}

	return res, nil
}
