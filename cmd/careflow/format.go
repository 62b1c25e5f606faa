package main

import (
	"fmt"
	"sort"

	"github.com/pathware/careflow/pkg/aggregate"
	"github.com/pathware/careflow/pkg/outcome"
	"github.com/pathware/careflow/pkg/resolve"
	"github.com/pathware/careflow/pkg/scenario"
	"github.com/pathware/careflow/pkg/sweep"
	"github.com/pathware/careflow/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				fmt.Printf("    -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Field != "" {
				fmt.Printf("    -> %s = %v\n", w.Field, w.ActualValue)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printAggregateResult(r *aggregate.Result) {
	fmt.Println("Simulation Results")
	fmt.Println("==================")
	fmt.Println()

	fmt.Printf("%-24s %12s %12s %14s %10s\n", "Disease", "Deaths", "DALYs", "Cost", "AvgWeeks")
	for _, d := range r.Diseases {
		if d.Error != "" {
			fmt.Printf("%-24s FAILED: %s\n", d.DiseaseID, d.Error)
			continue
		}
		fmt.Printf("%-24s %12.1f %12.1f %14s %10.1f\n",
			d.DiseaseID,
			d.Result.CumulativeDeaths,
			d.Outcome.DALYs,
			formatMoney(d.Outcome.TotalCost),
			d.Outcome.AvgWeeksToResolution)
	}

	fmt.Println()
	fmt.Println("Aggregate")
	fmt.Println("---------")
	fmt.Printf("  Cumulative deaths:  %.1f\n", r.CumulativeDeaths)
	fmt.Printf("  DALYs:              %.1f\n", r.DALYs)
	fmt.Printf("  Total cost:         $%s\n", formatMoney(r.TotalCost))
	if r.Partial {
		fmt.Println("  NOTE: aggregate is partial; one or more disease runs failed")
	}
	if r.ICER != nil {
		switch r.ICER.Kind {
		case outcome.ICERDominant:
			fmt.Println("  ICER:               DOMINANT (cheaper and more effective than baseline)")
		case outcome.ICERDominated:
			fmt.Println("  ICER:               DOMINATED (costlier and less effective than baseline)")
		default:
			fmt.Printf("  ICER:               $%s per DALY averted\n", formatMoney(r.ICER.Value))
		}
	}
}

func printCostBreakdown(sc *scenario.Scenario, r *aggregate.Result) {
	fmt.Println("Cost Breakdown")
	fmt.Println("==============")

	for _, d := range r.Diseases {
		if d.Error != "" {
			fmt.Printf("\n%s: FAILED: %s\n", d.DiseaseID, d.Error)
			continue
		}
		p, report := resolve.Resolve(sc, d.DiseaseID)
		if !report.Valid {
			continue
		}

		fmt.Printf("\n%s\n", d.DiseaseID)
		for l := 0; l < scenario.NumLevels; l++ {
			cost := d.Result.PatientDays[l] * p.Levels[l].PerDiem
			fmt.Printf("  L%d: %12.0f patient-days x $%6.2f = $%s\n",
				l, d.Result.PatientDays[l], p.Levels[l].PerDiem, formatMoney(cost))
		}
		if p.AIActive {
			program := p.AIFixedCost + p.AIVariableCost*d.Result.Episodes
			fmt.Printf("  AI program: $%s fixed + $%.2f x %.0f episodes = $%s\n",
				formatMoney(p.AIFixedCost), p.AIVariableCost, d.Result.Episodes, formatMoney(program))
		}
		fmt.Printf("  Total: $%s\n", formatMoney(d.Outcome.TotalCost))
	}

	fmt.Printf("\nAggregate total: $%s\n", formatMoney(r.TotalCost))
}

func printSweepTable(t *sweep.Table) {
	fields := make([]string, 0, len(t.Axes))
	for _, a := range t.Axes {
		fields = append(fields, a.Field)
	}
	sort.Strings(fields)

	for _, f := range fields {
		fmt.Printf("%-24s ", f)
	}
	fmt.Printf("%12s %12s %14s\n", "Deaths", "DALYs", "Cost")

	for _, c := range t.Cells {
		for _, f := range fields {
			fmt.Printf("%-24.4f ", c.Values[f])
		}
		if c.Error != "" {
			fmt.Printf("FAILED: %s\n", c.Error)
			continue
		}
		fmt.Printf("%12.1f %12.1f %14s\n", c.CumulativeDeaths, c.DALYs, formatMoney(c.TotalCost))
	}
}

func formatMoney(v float64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	switch {
	case v >= 1_000_000_000:
		return fmt.Sprintf("%s%.2fB", neg, v/1_000_000_000)
	case v >= 1_000_000:
		return fmt.Sprintf("%s%.2fM", neg, v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%s%.0fK", neg, v/1_000)
	default:
		return fmt.Sprintf("%s%.0f", neg, v)
	}
}
