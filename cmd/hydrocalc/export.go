package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aquawatt/hydrocalc/internal/export"
	"github.com/aquawatt/hydrocalc/internal/report"
	"github.com/aquawatt/hydrocalc/internal/scenario"
)

// writeExports writes the per-scenario exports plus the comparison
// summary and returns the paths written.
func writeExports(list *scenario.List, outDir, format string, now time.Time) ([]string, error) {
	var written []string

	for _, entry := range list.Entries() {
		base := filepath.Join(outDir, slug(entry.Scenario.Name))

		if format == "csv" || format == "all" {
			path := base + ".csv"
			if err := writeTableCSV(path, entry); err != nil {
				return written, err
			}
			written = append(written, path)
		}

		if format == "json" || format == "all" {
			path := base + ".json"
			data, err := export.MarshalResult(entry.Result)
			if err != nil {
				return written, fmt.Errorf("encoding %q: %w", entry.Scenario.Name, err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return written, err
			}
			written = append(written, path)
		}

		if format == "report" || format == "all" {
			path := base + ".txt"
			text := report.Render(entry.Result, now)
			if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
				return written, err
			}
			written = append(written, path)
		}
	}

	if list.Len() > 1 && (format == "csv" || format == "all") {
		path := filepath.Join(outDir, "comparison.csv")
		if err := writeComparisonCSV(path, list); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

func writeTableCSV(path string, entry scenario.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteCSV(f, export.BuildTable(entry.Result)); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return f.Close()
}

// writeComparisonCSV writes one summary line per scenario so that
// alternatives can be compared side by side.
func writeComparisonCSV(path string, list *scenario.List) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"Scenario", "Site Type", "Actual Power (kW)", "Annual Energy (MWh)",
		"LCOE ($/MWh)", "Payback (years)", "NPV ($)", "Viability",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, entry := range list.Entries() {
		res := entry.Result
		record := []string{
			entry.Scenario.Name,
			entry.Scenario.SiteType,
			fmt.Sprintf("%.1f", res.PowerGeneration.ActualPowerKw),
			fmt.Sprintf("%.1f", res.PowerGeneration.AnnualEnergyMwh),
			fmt.Sprintf("%.2f", res.EconomicMetrics.Lcoe),
			formatYears(res.EconomicMetrics.SimplePaybackYears),
			fmt.Sprintf("%.0f", res.EconomicMetrics.Npv),
			string(report.Classify(res)),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func formatYears(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.1f", v)
}

// slug turns a scenario name into a safe file name.
func slug(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, name)
	return strings.Trim(mapped, "_")
}
