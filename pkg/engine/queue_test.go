package engine

import (
	"math"
	"testing"

	"github.com/pathware/careflow/pkg/resolve"
	"github.com/pathware/careflow/pkg/scenario"
)

func queueParams() *resolve.Parameters {
	p := &resolve.Parameters{
		CompetitionSensitivity: 1.0,
		Queue: resolve.QueueRates{
			PreventionRate:      0.10,
			AbandonmentRate:     0.05,
			BypassRate:          0.08,
			SelfResolveRate:     0.03,
			ClearanceRate:       0.30,
			MortalityMultiplier: 1.5,
		},
	}
	for i := range p.Levels {
		p.Levels[i].Death = 0.004
	}
	return p
}

func TestQueueInflowFormula(t *testing.T) {
	p := queueParams()
	capacity := ComputeCapacity(0.5) // entry rate exactly 0.5

	var prev, blocked [scenario.NumLevels]float64
	blocked[0] = 50

	next, fx := advanceQueues(prev, blocked, capacity, p)

	// 50 blocked · (1-0.10) prevention · 0.5 entry = 22.5
	want := 50 * 0.9 * 0.5
	if math.Abs(fx.Inflow[0]-want) > 1e-12 {
		t.Errorf("inflow = %v, want %v", fx.Inflow[0], want)
	}
	if math.Abs(next[0]-want) > 1e-12 {
		t.Errorf("queue size = %v, want %v (empty queue has no exits)", next[0], want)
	}
}

func TestQueueCompetingExits(t *testing.T) {
	p := queueParams()
	capacity := ComputeCapacity(0.5)

	var prev, blocked [scenario.NumLevels]float64
	prev[1] = 100

	next, fx := advanceQueues(prev, blocked, capacity, p)

	// Every exit is a fraction of last week's snapshot.
	if math.Abs(fx.Mortality[1]-100*0.004*1.5*1.0) > 1e-12 {
		t.Errorf("mortality = %v", fx.Mortality[1])
	}
	if math.Abs(fx.Abandonment[1]-5) > 1e-12 {
		t.Errorf("abandonment = %v, want 5", fx.Abandonment[1])
	}
	if math.Abs(fx.Bypass[1]-8) > 1e-12 {
		t.Errorf("bypass = %v, want 8", fx.Bypass[1])
	}
	if math.Abs(fx.SelfResolve[1]-3) > 1e-12 {
		t.Errorf("self-resolve = %v, want 3", fx.SelfResolve[1])
	}
	wantClearance := 100 * 0.30 * math.Exp(-1)
	if math.Abs(fx.Clearance[1]-wantClearance) > 1e-12 {
		t.Errorf("clearance = %v, want %v", fx.Clearance[1], wantClearance)
	}

	exits := fx.Mortality[1] + fx.Abandonment[1] + fx.Bypass[1] + fx.SelfResolve[1] + fx.Clearance[1]
	if math.Abs(next[1]-(100-exits)) > 1e-12 {
		t.Errorf("next = %v, want %v", next[1], 100-exits)
	}
}

func TestQueueClearanceBoost(t *testing.T) {
	p := queueParams()
	p.Queue.ClearanceBoost = 0.15
	capacity := ComputeCapacity(0.5)

	var prev, blocked [scenario.NumLevels]float64
	prev[0] = 100

	_, fx := advanceQueues(prev, blocked, capacity, p)

	want := 100 * 0.30 * math.Exp(-1) * 1.15
	if math.Abs(fx.Clearance[0]-want) > 1e-12 {
		t.Errorf("boosted clearance = %v, want %v", fx.Clearance[0], want)
	}
}

func TestQueueNeverNegative(t *testing.T) {
	p := queueParams()
	// Pathological exit rates that would overshoot the snapshot.
	p.Queue.AbandonmentRate = 0.5
	p.Queue.BypassRate = 0.5
	p.Queue.SelfResolveRate = 0.5
	p.Queue.ClearanceRate = 0.9
	capacity := ComputeCapacity(0.2) // high multiplier keeps clearance large

	var prev, blocked [scenario.NumLevels]float64
	prev[2] = 10

	next, _ := advanceQueues(prev, blocked, capacity, p)

	if next[2] != 0 {
		t.Errorf("queue = %v, want terminal clamp to 0", next[2])
	}
}
