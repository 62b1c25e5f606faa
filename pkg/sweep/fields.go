package sweep

import (
	"sort"

	"github.com/pathware/careflow/pkg/scenario"
)

// sweepableFields is the closed set of scenario fields a sweep may
// perturb, mapped to their setters.
var sweepableFields = map[string]func(*scenario.Scenario, float64){
	"population":              func(sc *scenario.Scenario, v float64) { sc.Population = v },
	"congestion":              func(sc *scenario.Scenario, v float64) { sc.System.Congestion = v },
	"competition_sensitivity": func(sc *scenario.Scenario, v float64) { sc.System.CompetitionSensitivity = v },
	"formal_care_seeking":     func(sc *scenario.Scenario, v float64) { sc.Behavior.FormalCareSeeking = v },
	"untreated_ratio":         func(sc *scenario.Scenario, v float64) { sc.Behavior.UntreatedRatio = v },
	"queue_prevention_rate":   func(sc *scenario.Scenario, v float64) { sc.Queue.PreventionRate = v },
	"queue_clearance_rate":    func(sc *scenario.Scenario, v float64) { sc.Queue.ClearanceRate = v },
	"ai_fixed_cost":           func(sc *scenario.Scenario, v float64) { sc.Economics.AIFixedCost = v },
	"ai_variable_cost":        func(sc *scenario.Scenario, v float64) { sc.Economics.AIVariableCost = v },
	"discount_rate":           func(sc *scenario.Scenario, v float64) { sc.Economics.DiscountRate = v },
	"life_expectancy":         func(sc *scenario.Scenario, v float64) { sc.Economics.LifeExpectancy = v },
}

// Sweepable reports whether the named field can be swept.
func Sweepable(field string) bool {
	_, ok := sweepableFields[field]
	return ok
}

// SweepableFields returns the permitted field names in sorted order.
func SweepableFields() []string {
	names := make([]string, 0, len(sweepableFields))
	for name := range sweepableFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func setField(sc *scenario.Scenario, field string, v float64) {
	if set, ok := sweepableFields[field]; ok {
		set(sc, v)
	}
}
