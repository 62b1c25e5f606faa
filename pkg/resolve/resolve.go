package resolve

import (
	"fmt"

	"github.com/pathware/careflow/pkg/scenario"
	"github.com/pathware/careflow/pkg/validation"
)

// Resolve merges the scenario's base parameters, health-system
// multipliers, country adjustments, and AI-intervention effects into one
// fully-resolved parameter set for the given disease. It is pure: the
// scenario is not modified and identical inputs yield identical output.
//
// The returned report carries every range and consistency violation;
// when it is invalid the parameters must not be simulated.
func Resolve(sc *scenario.Scenario, diseaseID string) (*Parameters, *validation.Report) {
	report := validation.NewReport()

	validateSchema(sc, report)

	disease, err := sc.LookupDisease(diseaseID)
	if err != nil {
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     err.Error(),
			Field:       "diseases",
			ActualValue: diseaseID,
			Suggestions: []string{"use a library disease ID or add a disease_overrides entry"},
		})
		return nil, report
	}

	p := &Parameters{
		DiseaseID:    disease.ID,
		DiseaseName:  disease.Name,
		Population:   sc.Population,
		HorizonWeeks: sc.HorizonWeeks,

		Incidence:         disease.IncidenceRate,
		FormalCareSeeking: sc.Behavior.FormalCareSeeking,
		UntreatedRatio:    sc.Behavior.UntreatedRatio,
		InformalTransfer:  disease.InformalTransfer,

		UntreatedResolution: disease.UntreatedResolution,
		UntreatedDeath:      disease.UntreatedDeath,
		InformalResolution:  disease.InformalResolution,
		InformalDeath:       disease.InformalDeath,

		Congestion:             sc.System.Congestion,
		CompetitionSensitivity: sc.System.CompetitionSensitivity,

		Queue: QueueRates{
			PreventionRate:      sc.Queue.PreventionRate,
			AbandonmentRate:     sc.Queue.AbandonmentRate,
			BypassRate:          sc.Queue.BypassRate,
			SelfResolveRate:     sc.Queue.SelfResolveRate,
			ClearanceRate:       sc.Queue.ClearanceRate,
			MortalityMultiplier: sc.Queue.CongestionMortalityMultiplier,
		},

		AIFixedCost:    sc.Economics.AIFixedCost,
		AIVariableCost: sc.Economics.AIVariableCost,

		DisabilityWeight: disease.DisabilityWeight,
		LifeExpectancy:   sc.Economics.LifeExpectancy,
		MeanAgeOfOnset:   disease.MeanAgeOfOnset,
		DiscountRate:     sc.Economics.DiscountRate,
	}

	// 1. Health-system multipliers, applied exactly once.
	for i := 0; i < scenario.NumLevels; i++ {
		p.Levels[i] = LevelRates{
			Resolution: disease.Levels[i].Resolution * sc.HealthSystem.Resolution[i],
			Death:      disease.Levels[i].Death * sc.HealthSystem.Death[i],
			Referral:   disease.Levels[i].Referral * sc.HealthSystem.Referral[i],
			PerDiem:    sc.Economics.PerDiemCosts[i],
		}
	}

	// 2. Country/geography adjustments.
	if sc.CountryCode != "" {
		profile, ok := scenario.LookupCountry(sc.CountryCode)
		if !ok {
			report.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("unknown country code %q", sc.CountryCode),
				Field:       "country_code",
				ActualValue: sc.CountryCode,
			})
		} else {
			applyCountry(p, profile, sc.IsUrban)
		}
	}

	// 3. AI-intervention effects.
	applyInterventions(p, sc, report)

	// 4. Effective congestion consumed by the capacity model.
	p.EffectiveCongestion = p.Congestion * p.CompetitionSensitivity
	if m := sc.EffectMagnitude(scenario.InterventionResourceUtilization); m > 0 {
		p.EffectiveCongestion *= 1 - m
	}

	validateRates(p, report)

	if !report.Valid {
		return nil, report
	}
	return p, report
}

func applyCountry(p *Parameters, profile scenario.CountryProfile, urban bool) {
	p.Incidence *= profile.IncidenceFactor
	seeking := profile.CareSeekingFactor
	congestion := profile.CongestionFactor
	if urban {
		seeking *= 1 + profile.UrbanCareSeekingGain
		congestion *= 1 + profile.UrbanCongestionGain
	}
	p.FormalCareSeeking *= seeking
	p.Congestion *= congestion
}

func validateSchema(sc *scenario.Scenario, r *validation.Report) {
	if sc.Population <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "population must be greater than 0",
			Field:       "population",
			ActualValue: sc.Population,
			Expected:    "> 0",
		})
	}
	if sc.HorizonWeeks <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "horizon_weeks must be greater than 0",
			Field:       "horizon_weeks",
			ActualValue: sc.HorizonWeeks,
			Expected:    "> 0",
		})
	}
	if sc.System.Congestion < 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "congestion must be non-negative",
			Field:       "system.congestion",
			ActualValue: sc.System.Congestion,
			Expected:    ">= 0",
		})
	}
	if sc.System.CompetitionSensitivity < 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "competition_sensitivity must be non-negative",
			Field:       "system.competition_sensitivity",
			ActualValue: sc.System.CompetitionSensitivity,
			Expected:    ">= 0",
		})
	}
	if sc.Economics.DiscountRate < 0 || sc.Economics.DiscountRate >= 1 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("discount_rate %.4f must be >= 0 and < 1", sc.Economics.DiscountRate),
			Field:       "economics.discount_rate",
			ActualValue: sc.Economics.DiscountRate,
			Expected:    "0 <= rate < 1",
		})
	}
	for _, kind := range sc.AIInterventions {
		if !kind.Valid() {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("unknown AI intervention %q", kind),
				Field:       "ai_interventions",
				ActualValue: string(kind),
				Suggestions: []string{"see scenario.AllInterventions for valid kinds"},
			})
		}
	}
}

// validateRates checks that every resolved weekly rate lies in [0,1] and
// that competing exits from one compartment sum to at most 1. Pathological
// outflow is an error, never silently clamped.
func validateRates(p *Parameters, r *validation.Report) {
	checkRate := func(field string, v float64) {
		if v < 0 || v > 1 {
			r.AddError(validation.Result{
				Level:       validation.LevelRates,
				Message:     fmt.Sprintf("resolved rate %s = %.4f is outside [0,1]", field, v),
				Field:       field,
				ActualValue: v,
				Expected:    "0 <= rate <= 1",
			})
		}
	}
	checkOutflow := func(compartment string, sum float64) {
		if sum > 1 {
			r.AddError(validation.Result{
				Level:       validation.LevelRates,
				Message:     fmt.Sprintf("competing weekly exits from %s sum to %.4f", compartment, sum),
				Field:       compartment,
				ActualValue: sum,
				Expected:    "<= 1",
				Suggestions: []string{"reduce resolution, death, or referral rates, or weaken multipliers"},
			})
		}
	}

	checkRate("formal_care_seeking", p.FormalCareSeeking)
	checkRate("untreated_ratio", p.UntreatedRatio)
	checkRate("informal_transfer", p.InformalTransfer)
	checkRate("untreated_resolution", p.UntreatedResolution)
	checkRate("untreated_death", p.UntreatedDeath)
	checkRate("informal_resolution", p.InformalResolution)
	checkRate("informal_death", p.InformalDeath)
	checkRate("queue.prevention_rate", p.Queue.PreventionRate)
	checkRate("queue.abandonment_rate", p.Queue.AbandonmentRate)
	checkRate("queue.bypass_rate", p.Queue.BypassRate)
	checkRate("queue.self_resolve_rate", p.Queue.SelfResolveRate)
	checkRate("queue.clearance_rate", p.Queue.ClearanceRate)
	checkRate("direct_routing_fraction", p.DirectRoutingFraction)
	checkRate("visit_reduction", p.VisitReduction)

	checkOutflow("untreated", p.UntreatedResolution+p.UntreatedDeath)
	checkOutflow("informal", p.InformalTransfer+p.InformalResolution+p.InformalDeath)
	for i, lv := range p.Levels {
		checkRate(fmt.Sprintf("levels[%d].resolution", i), lv.Resolution)
		checkRate(fmt.Sprintf("levels[%d].death", i), lv.Death)
		checkRate(fmt.Sprintf("levels[%d].referral", i), lv.Referral)
		checkOutflow(fmt.Sprintf("levels[%d]", i), lv.Resolution+lv.Death+lv.Referral)
	}

	// Queue exits are fractions of the same snapshot; a sum above 1 will
	// trip the terminal clamp every week and distort conservation.
	queueExits := p.Queue.AbandonmentRate + p.Queue.BypassRate +
		p.Queue.SelfResolveRate + p.Queue.ClearanceRate*(1+p.Queue.ClearanceBoost)
	if queueExits > 1 {
		r.AddWarning(validation.Result{
			Level:       validation.LevelRates,
			Message:     fmt.Sprintf("queue exit fractions sum to %.4f; queues will clamp at zero", queueExits),
			Field:       "queue",
			ActualValue: queueExits,
			Expected:    "<= 1",
		})
	}
}
