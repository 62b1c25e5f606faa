package aggregate

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pathware/careflow/pkg/outcome"
	"github.com/pathware/careflow/pkg/scenario"
)

func testScenario(diseases ...string) *scenario.Scenario {
	sc := scenario.Default()
	sc.Diseases = diseases
	return sc
}

func TestAggregateSumsTerminalOutcomes(t *testing.T) {
	sc := testScenario("pneumonia_childhood", "malaria")
	agg, err := Simulate(sc, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if len(agg.Diseases) != 2 {
		t.Fatalf("got %d disease runs, want 2", len(agg.Diseases))
	}

	var deaths, dalys, cost float64
	for _, d := range agg.Diseases {
		if d.Error != "" {
			t.Fatalf("%s failed: %s", d.DiseaseID, d.Error)
		}
		deaths += d.Result.CumulativeDeaths
		dalys += d.Outcome.DALYs
		cost += d.Outcome.TotalCost
	}

	if agg.CumulativeDeaths != deaths {
		t.Errorf("aggregate deaths = %v, want %v", agg.CumulativeDeaths, deaths)
	}
	if agg.DALYs != dalys {
		t.Errorf("aggregate dalys = %v, want %v", agg.DALYs, dalys)
	}
	if agg.TotalCost != cost {
		t.Errorf("aggregate cost = %v, want %v", agg.TotalCost, cost)
	}
	if agg.Partial {
		t.Error("all runs succeeded, aggregate must not be partial")
	}
}

// One disease's invalid parameters must not abort its siblings.
func TestPartialFailureIsolation(t *testing.T) {
	sc := testScenario("pneumonia_childhood", "broken")
	sc.DiseaseOverrides = map[string]scenario.Disease{
		"broken": {
			Name:                "Broken",
			IncidenceRate:       0.1,
			UntreatedResolution: 0.8,
			UntreatedDeath:      0.7, // outflow 1.5: rejected by the resolver
		},
	}

	agg, err := Simulate(sc, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if !agg.Partial {
		t.Error("aggregate with one failed disease must be marked partial")
	}

	healthy := agg.Diseases[0]
	broken := agg.Diseases[1]
	if healthy.Error != "" {
		t.Errorf("sibling run should succeed, got: %s", healthy.Error)
	}
	if broken.Error == "" {
		t.Error("broken disease should report its failure")
	}
	if agg.CumulativeDeaths != healthy.Result.CumulativeDeaths {
		t.Error("aggregate should sum only successful runs")
	}
}

// Repeated calls with identical inputs yield bit-identical numbers; only
// the run ID differs.
func TestSimulateIsPure(t *testing.T) {
	sc := testScenario("tuberculosis", "diarrheal_disease")
	sc.System.Congestion = 0.65

	a, err := Simulate(sc, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(sc, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if a.CumulativeDeaths != b.CumulativeDeaths ||
		a.DALYs != b.DALYs ||
		a.TotalCost != b.TotalCost {
		t.Fatal("identical scenarios produced different aggregates")
	}
	for i := range a.Diseases {
		ra, rb := a.Diseases[i].Result, b.Diseases[i].Result
		for w := range ra.Series {
			if ra.Series[w] != rb.Series[w] {
				t.Fatalf("disease %s week %d differs", a.Diseases[i].DiseaseID, w)
			}
		}
	}
}

func TestEmptyDiseaseList(t *testing.T) {
	sc := testScenario()
	if _, err := Simulate(sc, zerolog.Nop()); err == nil {
		t.Fatal("empty disease selection must error")
	}
}

func TestCompareToBaseline(t *testing.T) {
	sc := testScenario("pneumonia_childhood")
	baseline, err := Simulate(sc, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	improved := testScenario("pneumonia_childhood")
	improved.AIInterventions = []scenario.Intervention{
		scenario.InterventionResolutionBoost,
		scenario.InterventionTreatmentEfficiency,
	}
	result, err := Simulate(improved, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if err := result.CompareToBaseline(baseline); err != nil {
		t.Fatal(err)
	}
	if result.ICER == nil {
		t.Fatal("ICER should be filled against a baseline")
	}
}

func TestMissingBaseline(t *testing.T) {
	sc := testScenario("pneumonia_childhood")
	result, err := Simulate(sc, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	err = result.CompareToBaseline(nil)
	if !errors.Is(err, outcome.ErrMissingBaseline) {
		t.Fatalf("err = %v, want ErrMissingBaseline", err)
	}
	if result.ICER != nil {
		t.Error("ICER must stay omitted without a baseline")
	}
}
