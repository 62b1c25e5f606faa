// Package outcome converts cumulative simulation results into economic
// and health outcomes: total cost, DALYs, and the incremental
// cost-effectiveness ratio against a baseline run.
package outcome

import (
	"github.com/pathware/careflow/pkg/engine"
	"github.com/pathware/careflow/pkg/resolve"
	"github.com/pathware/careflow/pkg/scenario"
)

const daysPerYear = 365.25

// Summary is the derived economics for one disease run.
type Summary struct {
	TotalCost            float64 `json:"total_cost"`
	DALYs                float64 `json:"dalys"`
	YearsOfLifeLost      float64 `json:"years_of_life_lost"`
	YearsWithDisability  float64 `json:"years_with_disability"`
	AvgWeeksToResolution float64 `json:"avg_weeks_to_resolution"`
}

// Compute derives cost and DALYs from a run result.
func Compute(r *engine.Result, p *resolve.Parameters) Summary {
	return Summary{
		TotalCost:            Cost(r, p),
		DALYs:                DALYs(r, p),
		YearsOfLifeLost:      yll(r, p),
		YearsWithDisability:  yld(r, p),
		AvgWeeksToResolution: r.AvgWeeksToResolution,
	}
}

// Cost is per-diem spend across formal levels plus AI program costs.
// The variable AI cost applies per episode touched, and only when an
// intervention is active.
func Cost(r *engine.Result, p *resolve.Parameters) float64 {
	total := 0.0
	for l := 0; l < scenario.NumLevels; l++ {
		total += r.PatientDays[l] * p.Levels[l].PerDiem
	}
	if p.AIActive {
		total += p.AIFixedCost + p.AIVariableCost*r.Episodes
	}
	return total
}

// DALYs combines years of life lost to deaths with years lived with
// disability, both under a flat discount factor.
func DALYs(r *engine.Result, p *resolve.Parameters) float64 {
	return yll(r, p) + yld(r, p)
}

func yll(r *engine.Result, p *resolve.Parameters) float64 {
	remaining := p.LifeExpectancy - p.MeanAgeOfOnset
	if remaining < 0 {
		remaining = 0
	}
	return r.CumulativeDeaths * remaining * discountFactor(p.DiscountRate)
}

func yld(r *engine.Result, p *resolve.Parameters) float64 {
	return (r.IllPersonDays / daysPerYear) * p.DisabilityWeight * discountFactor(p.DiscountRate)
}

func discountFactor(rate float64) float64 {
	if rate > 0 {
		return 1 - rate
	}
	return 1
}
