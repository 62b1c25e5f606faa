package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/pathware/careflow/pkg/aggregate"
	"github.com/pathware/careflow/pkg/resolve"
	"github.com/pathware/careflow/pkg/scenario"
	"github.com/pathware/careflow/pkg/sweep"
	"github.com/pathware/careflow/pkg/validation"
)

func cliLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// loadAndValidate loads the scenario and resolves every selected disease,
// collecting validation findings without running the simulation. The path
// may be a scenario file or a project directory holding scenario.yaml.
func loadAndValidate(path string) (*scenario.Scenario, *validation.Report, error) {
	var sc *scenario.Scenario
	var err error
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		sc, err = scenario.LoadProject(path)
	} else {
		sc, err = scenario.Load(path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading scenario: %w", err)
	}

	report := validation.NewReport()
	for _, id := range sc.Diseases {
		_, r := resolve.Resolve(sc, id)
		report.Merge(r)
	}
	return sc, report, nil
}

func runValidate(path string) error {
	_, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runSimulate(path, baselinePath string, asJSON bool) error {
	sc, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors")
	}

	logger := cliLogger()

	var baseline *aggregate.Result
	if baselinePath != "" {
		baseSc, baseReport, err := loadAndValidate(baselinePath)
		if err != nil {
			return err
		}
		if !baseReport.Valid {
			printValidationReport(baseReport)
			return fmt.Errorf("baseline scenario has validation errors")
		}
		baseline, err = aggregate.Simulate(baseSc, logger)
		if err != nil {
			return fmt.Errorf("baseline run: %w", err)
		}
	}

	results, err := aggregate.Simulate(sc, logger)
	if err != nil {
		return err
	}
	if baseline != nil {
		if err := results.CompareToBaseline(baseline); err != nil {
			return err
		}
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(aggregate.NewExport(sc, results, baseline))
	}

	printAggregateResult(results)

	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runCost(path string) error {
	sc, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors")
	}

	results, err := aggregate.Simulate(sc, cliLogger())
	if err != nil {
		return err
	}

	printCostBreakdown(sc, results)
	return nil
}

func runSweep(path, field string, min, max float64, steps int) error {
	sc, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors")
	}

	table, err := sweep.Run1D(sc, sweep.Axis{Field: field, Min: min, Max: max, Steps: steps}, cliLogger())
	if err != nil {
		return err
	}

	printSweepTable(table)
	return nil
}

func runDiseases() error {
	sc := scenario.Default()
	fmt.Printf("%-24s %-28s %10s %8s %8s\n", "ID", "Name", "Incidence", "DW", "Onset")
	for _, id := range scenario.DiseaseIDs() {
		d, err := sc.LookupDisease(id)
		if err != nil {
			continue
		}
		fmt.Printf("%-24s %-28s %10.3f %8.2f %8.1f\n",
			d.ID, d.Name, d.IncidenceRate, d.DisabilityWeight, d.MeanAgeOfOnset)
	}
	return nil
}
