package engine

import (
	"github.com/pathware/careflow/pkg/resolve"
	"github.com/pathware/careflow/pkg/scenario"
)

// queueFlows holds one week's per-level queue movements. Every exit is a
// fraction of last week's queue size, so the five exits compete on the
// same snapshot and their order does not matter.
type queueFlows struct {
	Inflow      [scenario.NumLevels]float64
	Mortality   [scenario.NumLevels]float64
	Abandonment [scenario.NumLevels]float64
	Bypass      [scenario.NumLevels]float64
	SelfResolve [scenario.NumLevels]float64
	Clearance   [scenario.NumLevels]float64
}

func sum(v [scenario.NumLevels]float64) float64 {
	return v[0] + v[1] + v[2] + v[3]
}

// advanceQueues computes one week of queue dynamics. blocked is the
// desired flow per level that capacity refused this week; only the
// (1-prevention)·queueEntryRate share of it joins the queue — the caller
// routes the rest. Queues never go negative: exits are clamped by the
// terminal max(0,…) even under numerical overshoot.
func advanceQueues(prev [scenario.NumLevels]float64, blocked [scenario.NumLevels]float64, capacity Capacity, p *resolve.Parameters) ([scenario.NumLevels]float64, queueFlows) {
	var next [scenario.NumLevels]float64
	var fx queueFlows

	for l := 0; l < scenario.NumLevels; l++ {
		q := prev[l]

		fx.Inflow[l] = blocked[l] * (1 - p.Queue.PreventionRate) * capacity.QueueEntryRate
		fx.Mortality[l] = q * p.Levels[l].Death * p.Queue.MortalityMultiplier * p.CompetitionSensitivity
		fx.Abandonment[l] = q * p.Queue.AbandonmentRate
		fx.Bypass[l] = q * p.Queue.BypassRate
		fx.SelfResolve[l] = q * p.Queue.SelfResolveRate
		fx.Clearance[l] = q * p.Queue.ClearanceRate * capacity.Multiplier * (1 + p.Queue.ClearanceBoost)

		size := q + fx.Inflow[l] - fx.Mortality[l] - fx.Abandonment[l] -
			fx.Bypass[l] - fx.SelfResolve[l] - fx.Clearance[l]
		if size < 0 {
			size = 0
		}
		next[l] = size
	}

	return next, fx
}
