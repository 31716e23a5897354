// Command hydrocalc estimates hydropower potential for the scenarios in
// a YAML file and writes CSV, JSON, and text-report exports.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/aquawatt/hydrocalc/internal/scenario"
)

func main() {
	var (
		scenarioPath = flag.String("scenarios", "", "Path to the YAML scenario file (required)")
		outDir       = flag.String("out", ".", "Directory to write exports into")
		format       = flag.String("format", "all", "Export format: csv, json, report, or all")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *scenarioPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := validFormat(*format); err != nil {
		logger.Fatal().Err(err).Msg("invalid -format")
	}

	scenarios, err := scenario.LoadFile(*scenarioPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *scenarioPath).Msg("loading scenarios")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal().Err(err).Str("dir", *outDir).Msg("creating output directory")
	}

	list := scenario.NewList()
	for _, s := range scenarios {
		res, err := list.Add(s)
		if err != nil {
			logger.Fatal().Err(err).Str("scenario", s.Name).Msg("estimating")
		}
		logger.Info().
			Str("scenario", s.Name).
			Float64("actual_power_kw", res.PowerGeneration.ActualPowerKw).
			Float64("annual_energy_mwh", res.PowerGeneration.AnnualEnergyMwh).
			Float64("lcoe", res.EconomicMetrics.Lcoe).
			Msg("estimate complete")
	}

	now := time.Now().UTC()
	written, err := writeExports(list, *outDir, *format, now)
	if err != nil {
		logger.Fatal().Err(err).Msg("writing exports")
	}
	for _, path := range written {
		logger.Info().Str("file", path).Msg("wrote export")
	}
}

func validFormat(format string) error {
	switch format {
	case "csv", "json", "report", "all":
		return nil
	}
	return fmt.Errorf("unknown format %q (want csv, json, report, or all)", format)
}
