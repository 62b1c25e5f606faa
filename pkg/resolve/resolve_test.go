package resolve

import (
	"math"
	"testing"

	"github.com/pathware/careflow/pkg/scenario"
)

func TestResolveDefaultScenario(t *testing.T) {
	sc := scenario.Default()
	p, report := Resolve(sc, "pneumonia_childhood")

	if !report.Valid {
		t.Fatalf("default scenario should resolve: %s", report.Summary)
	}
	if p.DiseaseID != "pneumonia_childhood" {
		t.Errorf("disease = %q", p.DiseaseID)
	}
	if p.Incidence != 0.20 {
		t.Errorf("incidence = %v, want 0.20", p.Incidence)
	}
	if p.EffectiveCongestion != 0 {
		t.Errorf("effective congestion = %v, want 0", p.EffectiveCongestion)
	}
}

func TestResolveUnknownDisease(t *testing.T) {
	_, report := Resolve(scenario.Default(), "dragon_pox")
	if report.Valid {
		t.Fatal("unknown disease must fail validation")
	}
}

// Health-system multipliers are applied exactly once by the resolver;
// the engine consumes final rates.
func TestMultipliersAppliedOnce(t *testing.T) {
	sc := scenario.Default()
	sc.HealthSystem, _ = scenario.PresetMultipliers("strong")

	p, report := Resolve(sc, "pneumonia_childhood")
	if !report.Valid {
		t.Fatalf("resolve failed: %s", report.Summary)
	}

	base, _ := sc.LookupDisease("pneumonia_childhood")
	want := base.Levels[0].Resolution * 1.25
	if math.Abs(p.Levels[0].Resolution-want) > 1e-12 {
		t.Errorf("L0 resolution = %v, want %v", p.Levels[0].Resolution, want)
	}
}

func TestOutOfRangeRateRejected(t *testing.T) {
	sc := scenario.Default()
	// A 2x resolution multiplier pushes diarrheal L3 resolution past 1.
	sc.HealthSystem = scenario.HealthSystemMultipliers{
		Resolution: [scenario.NumLevels]float64{2, 2, 2, 2},
		Death:      [scenario.NumLevels]float64{1, 1, 1, 1},
		Referral:   [scenario.NumLevels]float64{1, 1, 1, 1},
	}

	p, report := Resolve(sc, "diarrheal_disease")
	if report.Valid {
		t.Fatal("rate above 1 must be a validation error, not clamped")
	}
	if p != nil {
		t.Fatal("invalid resolution must not return parameters")
	}
}

func TestExcessOutflowRejected(t *testing.T) {
	sc := scenario.Default()
	sc.DiseaseOverrides = map[string]scenario.Disease{
		"custom": {
			Name:                "Custom",
			IncidenceRate:       0.1,
			UntreatedResolution: 0.7,
			UntreatedDeath:      0.5, // 1.2 total outflow from untreated
		},
	}

	_, report := Resolve(sc, "custom")
	if report.Valid {
		t.Fatal("competing exits above 1 must be a validation error")
	}
}

func TestAIResolutionBoost(t *testing.T) {
	sc := scenario.Default()
	sc.AIInterventions = []scenario.Intervention{scenario.InterventionResolutionBoost}
	sc.AIEffects[scenario.InterventionResolutionBoost] = 0.10

	p, report := Resolve(sc, "pneumonia_childhood")
	if !report.Valid {
		t.Fatalf("resolve failed: %s", report.Summary)
	}
	if !p.AIActive {
		t.Error("AIActive should be set")
	}

	base, _ := sc.LookupDisease("pneumonia_childhood")
	for i := range p.Levels {
		want := base.Levels[i].Resolution * 1.10
		if math.Abs(p.Levels[i].Resolution-want) > 1e-12 {
			t.Errorf("level %d resolution = %v, want %v", i, p.Levels[i].Resolution, want)
		}
	}
}

func TestResourceUtilizationLowersEffectiveCongestion(t *testing.T) {
	sc := scenario.Default()
	sc.System.Congestion = 0.8
	sc.System.CompetitionSensitivity = 1.0
	sc.AIInterventions = []scenario.Intervention{scenario.InterventionResourceUtilization}
	sc.AIEffects[scenario.InterventionResourceUtilization] = 0.15

	p, report := Resolve(sc, "pneumonia_childhood")
	if !report.Valid {
		t.Fatalf("resolve failed: %s", report.Summary)
	}
	if math.Abs(p.EffectiveCongestion-0.8*0.85) > 1e-12 {
		t.Errorf("effective congestion = %v, want %v", p.EffectiveCongestion, 0.8*0.85)
	}
	if p.Queue.ClearanceBoost != 0.15 {
		t.Errorf("clearance boost = %v, want 0.15", p.Queue.ClearanceBoost)
	}
}

func TestEffectMagnitudeOutOfRangeRejected(t *testing.T) {
	sc := scenario.Default()
	sc.AIInterventions = []scenario.Intervention{scenario.InterventionResolutionBoost}
	sc.AIEffects[scenario.InterventionResolutionBoost] = 1.5

	p, report := Resolve(sc, "pneumonia_childhood")
	if report.Valid {
		t.Fatal("effect magnitude at or above 1 must be rejected")
	}
	if p != nil {
		t.Fatal("invalid magnitude must not return parameters")
	}
}

func TestUnknownInterventionRejected(t *testing.T) {
	sc := scenario.Default()
	sc.AIInterventions = []scenario.Intervention{"quantum_triage"}

	_, report := Resolve(sc, "pneumonia_childhood")
	if report.Valid {
		t.Fatal("unknown intervention kind must be rejected")
	}
}

func TestCountryAdjustment(t *testing.T) {
	sc := scenario.Default()
	sc.CountryCode = "KEN"
	sc.IsUrban = true

	p, report := Resolve(sc, "pneumonia_childhood")
	if !report.Valid {
		t.Fatalf("resolve failed: %s", report.Summary)
	}
	if math.Abs(p.Incidence-0.20*1.20) > 1e-12 {
		t.Errorf("incidence = %v, want %v", p.Incidence, 0.20*1.20)
	}
	if math.Abs(p.FormalCareSeeking-0.60*0.90*1.10) > 1e-12 {
		t.Errorf("care seeking = %v, want %v", p.FormalCareSeeking, 0.60*0.90*1.10)
	}
}

func TestUnknownCountryRejected(t *testing.T) {
	sc := scenario.Default()
	sc.CountryCode = "ZZZ"

	_, report := Resolve(sc, "pneumonia_childhood")
	if report.Valid {
		t.Fatal("unknown country code must be rejected")
	}
}

// The resolver is pure: resolving twice from the same scenario yields
// identical parameters and leaves the scenario untouched.
func TestResolveIsPure(t *testing.T) {
	sc := scenario.Default()
	sc.AIInterventions = []scenario.Intervention{scenario.InterventionTreatmentEfficiency}

	p1, _ := Resolve(sc, "malaria")
	p2, _ := Resolve(sc, "malaria")

	if *p1 != *p2 {
		t.Fatal("repeated resolution diverged")
	}
}
