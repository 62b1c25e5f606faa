// Package aggregate runs the simulator once per selected disease and
// sums terminal outcomes. Diseases do not interact: each run gets its
// own clinical parameters while sharing the scenario's congestion and
// health-system inputs, and one disease's failure never aborts the
// others.
package aggregate

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pathware/careflow/pkg/engine"
	"github.com/pathware/careflow/pkg/outcome"
	"github.com/pathware/careflow/pkg/resolve"
	"github.com/pathware/careflow/pkg/scenario"
	"github.com/pathware/careflow/pkg/validation"
)

// DiseaseRun is the per-disease slice of an aggregate run. Exactly one
// of Result or Error is meaningful; Validation carries the resolver's
// findings either way.
type DiseaseRun struct {
	DiseaseID  string             `json:"disease_id"`
	Result     *engine.Result     `json:"result,omitempty"`
	Outcome    *outcome.Summary   `json:"outcome,omitempty"`
	Validation *validation.Report `json:"validation,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// Result sums terminal outcomes across diseases. The weekly series stay
// per-disease: compartment semantics differ between diseases, so summing
// them week by week would be meaningless.
type Result struct {
	RunID string `json:"run_id"`

	CumulativeDeaths float64 `json:"cumulative_deaths"`
	DALYs            float64 `json:"dalys"`
	TotalCost        float64 `json:"total_cost"`

	Diseases []DiseaseRun `json:"diseases"`

	// Partial is set when at least one disease run failed while others
	// succeeded.
	Partial bool `json:"partial"`

	ICER *outcome.ICER `json:"icer,omitempty"`
}

// Simulate runs every disease in the scenario independently and sums
// deaths, DALYs, and cost. It is pure: repeated calls with an identical
// scenario yield identical numbers (the RunID alone differs).
func Simulate(sc *scenario.Scenario, logger zerolog.Logger) (*Result, error) {
	if len(sc.Diseases) == 0 {
		return nil, errors.New("scenario selects no diseases")
	}

	agg := &Result{
		RunID:    uuid.NewString(),
		Diseases: make([]DiseaseRun, 0, len(sc.Diseases)),
	}

	succeeded := 0
	for _, id := range sc.Diseases {
		run := simulateOne(sc, id, logger)
		if run.Error == "" {
			succeeded++
			agg.CumulativeDeaths += run.Result.CumulativeDeaths
			agg.DALYs += run.Outcome.DALYs
			agg.TotalCost += run.Outcome.TotalCost
		}
		agg.Diseases = append(agg.Diseases, run)
	}

	agg.Partial = succeeded > 0 && succeeded < len(sc.Diseases)
	return agg, nil
}

func simulateOne(sc *scenario.Scenario, diseaseID string, logger zerolog.Logger) DiseaseRun {
	run := DiseaseRun{DiseaseID: diseaseID}

	params, report := resolve.Resolve(sc, diseaseID)
	run.Validation = report
	if !report.Valid {
		run.Error = "invalid parameters: " + report.Summary
		return run
	}

	result, err := engine.NewSimulator(params).WithLogger(logger).Run()
	if err != nil {
		run.Error = err.Error()
		return run
	}

	summary := outcome.Compute(result, params)
	run.Result = result
	run.Outcome = &summary
	return run
}

// CompareToBaseline fills the aggregate ICER against a previously
// computed baseline. A nil baseline yields ErrMissingBaseline and the
// ICER field stays omitted.
func (r *Result) CompareToBaseline(baseline *Result) error {
	if baseline == nil {
		return outcome.ErrMissingBaseline
	}
	icer := outcome.ComputeICER(r.TotalCost, r.DALYs, baseline.TotalCost, baseline.DALYs)
	r.ICER = &icer
	return nil
}
