package engine

import (
	"fmt"
	"math"

	"github.com/pathware/careflow/pkg/resolve"
	"github.com/pathware/careflow/pkg/scenario"
)

// weekFlows holds the per-week quantities accumulated into run totals.
type weekFlows struct {
	PatientDays [scenario.NumLevels]float64 // formal bed-days, from start-of-week stocks
	IllDays     float64                     // person-days ill across all compartments
	Episodes    float64                     // new admissions into formal care
}

// step advances the compartment state one week. Every flow is computed
// from the start-of-week snapshot and applied at once, so flows within a
// week are order-independent and never double-count.
//
// Routing decisions for congested flow:
//   - blocked flow that joins a queue leaves its source compartment;
//   - blocked referrals that do not queue remain in the upstream level;
//   - blocked new formal arrivals that do not queue fall back to
//     informal care;
//   - queue abandonment returns to untreated, queue bypass to informal.
//
// With these rules the update conserves population exactly: every person
// entering the system ends the week in a compartment, a queue, or one of
// the resolved/death accumulators.
func step(prev State, p *resolve.Parameters, capacity Capacity) (State, weekFlows, error) {
	// 1. New cases, with self-triage deterring arrivals above 50% raw
	// congestion.
	newCases := p.Incidence * p.Population / 52.0
	arrival := 1.0
	if p.Congestion > 0.5 {
		arrival = 1 - 0.5*(p.Congestion-0.5)
	}
	entered := newCases * arrival

	// 2. Care-seeking split. Visit reduction redirects part of the new
	// formal demand to informal care.
	formalShare := p.FormalCareSeeking * entered
	visitRedirect := formalShare * p.VisitReduction
	formalNew := formalShare - visitRedirect
	informalNew := (1-p.FormalCareSeeking)*(1-p.UntreatedRatio)*entered + visitRedirect
	untreatedNew := (1 - p.FormalCareSeeking) * p.UntreatedRatio * entered

	// 3. Untreated and informal exits.
	uResolve := p.UntreatedResolution * prev.Untreated
	uDeath := p.UntreatedDeath * prev.Untreated
	iTransfer := p.InformalTransfer * prev.Informal
	iResolve := p.InformalResolution * prev.Informal
	iDeath := p.InformalDeath * prev.Informal

	// 4. Formal entry routes 100% to L0, unless the direct-routing
	// intervention is active above 50% congestion, in which case its
	// bypass fraction splits 60/40 to L1/L2 and is not capacity
	// constrained (it routes around the bottleneck).
	formalEntry := formalNew + iTransfer
	var directL1, directL2 float64
	if p.DirectRoutingFraction > 0 && p.Congestion > 0.5 {
		bypass := formalEntry * p.DirectRoutingFraction
		directL1 = bypass * 0.6
		directL2 = bypass * 0.4
		formalEntry -= bypass
	}

	// 5. Desired inflows per level and the capacity throttle.
	var desired, admitted, blocked [scenario.NumLevels]float64
	desired[0] = formalEntry
	for l := 1; l < scenario.NumLevels; l++ {
		desired[l] = p.Levels[l-1].Referral * prev.Levels[l-1]
	}
	for l := 0; l < scenario.NumLevels; l++ {
		admitted[l] = desired[l] * capacity.Multiplier
		blocked[l] = desired[l] - admitted[l]
	}

	// 6. Queue dynamics. At zero effective congestion the subsystem is
	// skipped entirely; nothing is blocked in that case anyway.
	var nextQueues [scenario.NumLevels]float64
	var fx queueFlows
	if capacity.EffectiveCongestion > 0 {
		nextQueues, fx = advanceQueues(prev.Queues, blocked, capacity, p)
	}

	// Blocked flow that neither was admitted nor queued.
	var deflected [scenario.NumLevels]float64
	for l := 0; l < scenario.NumLevels; l++ {
		deflected[l] = blocked[l] - fx.Inflow[l]
	}

	// 7. Level exits and updates. Referral outflow from level l is only
	// what actually reached level l+1 or its queue; the deflected
	// remainder stays put.
	var resolved, died, referralOut [scenario.NumLevels]float64
	for l := 0; l < scenario.NumLevels; l++ {
		resolved[l] = p.Levels[l].Resolution * prev.Levels[l]
		died[l] = p.Levels[l].Death * prev.Levels[l]
		if l < scenario.NumLevels-1 {
			referralOut[l] = admitted[l+1] + fx.Inflow[l+1]
		}
	}

	next := State{Week: prev.Week + 1, Queues: nextQueues}

	next.Untreated = prev.Untreated + untreatedNew + sum(fx.Abandonment) - uResolve - uDeath
	next.Informal = prev.Informal + informalNew + sum(fx.Bypass) + deflected[0] -
		iTransfer - iResolve - iDeath

	for l := 0; l < scenario.NumLevels; l++ {
		next.Levels[l] = prev.Levels[l] + admitted[l] + fx.Clearance[l] -
			resolved[l] - died[l] - referralOut[l]
	}
	next.Levels[1] += directL1
	next.Levels[2] += directL2

	next.Resolved = prev.Resolved + uResolve + iResolve + sum(resolved) + sum(fx.SelfResolve)
	next.Deaths = prev.Deaths + uDeath + iDeath + sum(died) + sum(fx.Mortality)
	next.Entered = prev.Entered + entered

	if err := checkStocks(&next); err != nil {
		return State{}, weekFlows{}, err
	}

	flows := weekFlows{
		IllDays:  prev.Active() * 7,
		Episodes: admitted[0] + directL1 + directL2 + fx.Clearance[0],
	}
	for l := 0; l < scenario.NumLevels; l++ {
		flows.PatientDays[l] = prev.Levels[l] * 7
	}

	return next, flows, nil
}

// checkStocks enforces the internal-consistency invariants: no NaN or
// infinity anywhere, no compartment below zero beyond float noise.
// Sub-epsilon negatives are rounded up to zero.
func checkStocks(s *State) error {
	const eps = 1e-9

	check := func(name string, v *float64) error {
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			return &NumericInstabilityError{Compartment: name, Week: s.Week}
		}
		if *v < -eps {
			return &NegativeStockError{Compartment: name, Week: s.Week, Value: *v}
		}
		if *v < 0 {
			*v = 0
		}
		return nil
	}

	if err := check("untreated", &s.Untreated); err != nil {
		return err
	}
	if err := check("informal", &s.Informal); err != nil {
		return err
	}
	for l := range s.Levels {
		if err := check(fmt.Sprintf("L%d", l), &s.Levels[l]); err != nil {
			return err
		}
		if err := check(fmt.Sprintf("Q%d", l), &s.Queues[l]); err != nil {
			return err
		}
	}
	return nil
}
