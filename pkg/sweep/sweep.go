// Package sweep perturbs one or two scenario fields over a grid and
// re-invokes the simulator per cell. It relies only on the simulator's
// purity: no state leaks between cells.
package sweep

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pathware/careflow/pkg/aggregate"
	"github.com/pathware/careflow/pkg/scenario"
)

// Axis describes one swept parameter.
type Axis struct {
	Field string  `yaml:"field" json:"field"`
	Min   float64 `yaml:"min" json:"min"`
	Max   float64 `yaml:"max" json:"max"`
	Steps int     `yaml:"steps" json:"steps"`
}

// Values expands the axis into its grid points, inclusive of both ends.
func (a Axis) Values() []float64 {
	if a.Steps <= 1 {
		return []float64{a.Min}
	}
	vals := make([]float64, a.Steps)
	width := (a.Max - a.Min) / float64(a.Steps-1)
	for i := range vals {
		vals[i] = a.Min + float64(i)*width
	}
	return vals
}

// Cell is one grid point's outcome.
type Cell struct {
	Values           map[string]float64 `json:"values"`
	CumulativeDeaths float64            `json:"cumulative_deaths"`
	DALYs            float64            `json:"dalys"`
	TotalCost        float64            `json:"total_cost"`
	Error            string             `json:"error,omitempty"`
}

// Table is the assembled sweep output. Cells are in row-major order:
// the second axis (when present) varies fastest.
type Table struct {
	Axes  []Axis `json:"axes"`
	Cells []Cell `json:"cells"`
}

// Run1D sweeps a single field.
func Run1D(sc *scenario.Scenario, axis Axis, logger zerolog.Logger) (*Table, error) {
	return run(sc, []Axis{axis}, logger)
}

// Run2D sweeps two fields over the cross product of their grids.
func Run2D(sc *scenario.Scenario, a, b Axis, logger zerolog.Logger) (*Table, error) {
	return run(sc, []Axis{a, b}, logger)
}

func run(sc *scenario.Scenario, axes []Axis, logger zerolog.Logger) (*Table, error) {
	for _, a := range axes {
		if !Sweepable(a.Field) {
			return nil, fmt.Errorf("field %q is not sweepable", a.Field)
		}
	}

	table := &Table{Axes: axes}

	var walk func(depth int, values map[string]float64)
	walk = func(depth int, values map[string]float64) {
		if depth == len(axes) {
			table.Cells = append(table.Cells, evaluate(sc, values, logger))
			return
		}
		for _, v := range axes[depth].Values() {
			values[axes[depth].Field] = v
			walk(depth+1, values)
		}
	}
	walk(0, map[string]float64{})
	return table, nil
}

func evaluate(base *scenario.Scenario, values map[string]float64, logger zerolog.Logger) Cell {
	cell := Cell{Values: map[string]float64{}}
	sc := clone(base)
	for field, v := range values {
		cell.Values[field] = v
		setField(sc, field, v)
	}

	result, err := aggregate.Simulate(sc, logger)
	if err != nil {
		cell.Error = err.Error()
		return cell
	}
	// Any failed disease marks the whole cell, including the all-failed
	// case where the aggregate is not flagged partial. Zeros from a run
	// that never happened must not tabulate as outcomes.
	for _, d := range result.Diseases {
		if d.Error != "" {
			cell.Error = d.Error
			break
		}
	}
	cell.CumulativeDeaths = result.CumulativeDeaths
	cell.DALYs = result.DALYs
	cell.TotalCost = result.TotalCost
	return cell
}

// clone deep-copies a scenario so grid cells never share mutable state.
func clone(sc *scenario.Scenario) *scenario.Scenario {
	out := *sc
	out.Diseases = append([]string(nil), sc.Diseases...)
	out.AIInterventions = append([]scenario.Intervention(nil), sc.AIInterventions...)
	out.AIEffects = make(map[scenario.Intervention]float64, len(sc.AIEffects))
	for k, v := range sc.AIEffects {
		out.AIEffects[k] = v
	}
	if sc.DiseaseOverrides != nil {
		out.DiseaseOverrides = make(map[string]scenario.Disease, len(sc.DiseaseOverrides))
		for k, v := range sc.DiseaseOverrides {
			out.DiseaseOverrides[k] = v
		}
	}
	return &out
}
