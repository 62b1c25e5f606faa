package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/pathware/careflow/pkg/resolve"
	"github.com/pathware/careflow/pkg/scenario"
)

func mustResolve(t *testing.T, sc *scenario.Scenario, diseaseID string) *resolve.Parameters {
	t.Helper()
	p, report := resolve.Resolve(sc, diseaseID)
	if !report.Valid {
		t.Fatalf("resolve failed: %s", report.Summary)
	}
	return p
}

func mustRun(t *testing.T, p *resolve.Parameters) *Result {
	t.Helper()
	r, err := NewSimulator(p).Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return r
}

// With λ=0.2 and a population of 300,000, weekly incidence is ≈1153.8;
// at φ₀=0.6 the formal share is ≈692.3 and, with no congestion, all of
// it lands in L0 at the end of week 1 (that week's outflows act on the
// empty starting stock).
func TestFirstWeekArrivals(t *testing.T) {
	sc := scenario.Default() // pneumonia λ=0.2, pop 300k, φ₀=0.6, r=0.3, congestion 0
	p := mustResolve(t, sc, "pneumonia_childhood")
	r := mustRun(t, p)

	week1 := r.Series[1]

	newCases := 0.2 * 300000 / 52.0
	if math.Abs(newCases-1153.846) > 0.01 {
		t.Fatalf("weekly incidence = %v, want ≈1153.8", newCases)
	}
	if math.Abs(week1.Levels[0]-0.6*newCases) > 0.01 {
		t.Errorf("L0 after week 1 = %v, want ≈692.3", week1.Levels[0])
	}
	if math.Abs(week1.Informal-0.4*0.7*newCases) > 0.01 {
		t.Errorf("informal after week 1 = %v, want ≈%v", week1.Informal, 0.4*0.7*newCases)
	}
	if math.Abs(week1.Untreated-0.4*0.3*newCases) > 0.01 {
		t.Errorf("untreated after week 1 = %v, want ≈%v", week1.Untreated, 0.4*0.3*newCases)
	}
}

func TestConservation(t *testing.T) {
	sc := scenario.Default()
	sc.System.Congestion = 0.8 // exercise queues, arrival deterrence, deflection
	p := mustResolve(t, sc, "pneumonia_childhood")
	r := mustRun(t, p)

	for _, st := range r.Series {
		balance := st.Active() + st.Resolved + st.Deaths - st.Entered
		if math.Abs(balance) > 1e-6 {
			t.Fatalf("week %d: conservation drift %g exceeds 1e-6", st.Week, balance)
		}
	}
}

func TestResolvedAndDeathsMonotonic(t *testing.T) {
	sc := scenario.Default()
	sc.System.Congestion = 0.6
	p := mustResolve(t, sc, "malaria")
	r := mustRun(t, p)

	for i := 1; i < len(r.Series); i++ {
		if r.Series[i].Resolved < r.Series[i-1].Resolved {
			t.Fatalf("resolved decreased at week %d", r.Series[i].Week)
		}
		if r.Series[i].Deaths < r.Series[i-1].Deaths {
			t.Fatalf("deaths decreased at week %d", r.Series[i].Week)
		}
	}
}

// At zero congestion the queue subsystem must contribute nothing:
// queue stocks stay empty and queue rates are irrelevant to the result.
func TestZeroCongestionEquivalence(t *testing.T) {
	base := scenario.Default()
	p1 := mustResolve(t, base, "pneumonia_childhood")
	r1 := mustRun(t, p1)

	altered := scenario.Default()
	altered.Queue.AbandonmentRate = 0.9
	altered.Queue.ClearanceRate = 0.01
	altered.Queue.PreventionRate = 0.99
	p2 := mustResolve(t, altered, "pneumonia_childhood")
	r2 := mustRun(t, p2)

	for i := range r1.Series {
		for l := 0; l < scenario.NumLevels; l++ {
			if r1.Series[i].Queues[l] != 0 {
				t.Fatalf("week %d: Q%d = %v, want 0", i, l, r1.Series[i].Queues[l])
			}
		}
		if r1.Series[i] != r2.Series[i] {
			t.Fatalf("week %d: queue rates changed an uncongested run", i)
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	sc := scenario.Default()
	sc.System.Congestion = 0.7
	sc.AIInterventions = []scenario.Intervention{scenario.InterventionDirectRouting}
	p := mustResolve(t, sc, "tuberculosis")

	r1 := mustRun(t, p)
	r2 := mustRun(t, p)

	if r1.CumulativeDeaths != r2.CumulativeDeaths ||
		r1.CumulativeResolved != r2.CumulativeResolved ||
		r1.IllPersonDays != r2.IllPersonDays {
		t.Fatal("identical inputs produced different totals")
	}
	for i := range r1.Series {
		if r1.Series[i] != r2.Series[i] {
			t.Fatalf("week %d differs between identical runs", i)
		}
	}
}

func TestNegativeStockIsFatal(t *testing.T) {
	// Exits of 220%/week drain L0 below zero on week 2. The resolver
	// rejects such rates; the engine must treat them as a defect.
	p := &resolve.Parameters{
		Population:        1000,
		HorizonWeeks:      5,
		Incidence:         0.52, // 10 new cases per week
		FormalCareSeeking: 1,
	}
	p.Levels[0] = resolve.LevelRates{Resolution: 1.0, Death: 0.9, Referral: 0.3}

	_, err := NewSimulator(p).Run()

	var negErr *NegativeStockError
	if !errors.As(err, &negErr) {
		t.Fatalf("err = %v, want NegativeStockError", err)
	}
	if negErr.Compartment != "L0" || negErr.Week != 2 {
		t.Errorf("got %s at week %d, want L0 at week 2", negErr.Compartment, negErr.Week)
	}
}

func TestDirectRoutingAboveThreshold(t *testing.T) {
	sc := scenario.Default()
	sc.System.Congestion = 0.8
	sc.AIInterventions = []scenario.Intervention{scenario.InterventionDirectRouting}
	sc.AIEffects[scenario.InterventionDirectRouting] = 0.25
	p := mustResolve(t, sc, "pneumonia_childhood")
	r := mustRun(t, p)

	week1 := r.Series[1]

	// Direct-routed inflow skips the capacity throttle, so L1 and L2
	// start filling in week 1 at the 60/40 split.
	if week1.Levels[1] <= 0 || week1.Levels[2] <= 0 {
		t.Fatalf("direct routing should seed L1/L2 in week 1, got %v / %v",
			week1.Levels[1], week1.Levels[2])
	}
	ratio := week1.Levels[1] / week1.Levels[2]
	if math.Abs(ratio-1.5) > 1e-9 {
		t.Errorf("L1/L2 direct split = %v, want 1.5 (60/40)", ratio)
	}
}
