package resolve

import (
	"fmt"

	"github.com/pathware/careflow/pkg/scenario"
	"github.com/pathware/careflow/pkg/validation"
)

// applyInterventions folds every enabled AI intervention into the
// resolved rates. The mapping from intervention kind to rate effect is
// fixed here; magnitudes come from the scenario's effect table and must
// lie in [0,1).
//
//	resolution_boost          μ_ℓ ·= (1+m) on all levels
//	point_of_care_resolution  μ_L0 ·= (1+m), ρ_L0 ·= (1-m)
//	length_of_stay_reduction  μ_ℓ ·= (1+m) on L1..L3
//	discharge_optimization    μ_ℓ ·= (1+m) on L2..L3
//	treatment_efficiency      δ_ℓ ·= (1-m) on all levels
//	resource_utilization      queue clearance boost m; effective
//	                          congestion ·= (1-m) (applied by Resolve)
//	visit_reduction           share m of new formal arrivals redirected
//	                          to informal care
//	direct_routing            fraction m of formal entries bypasses L0
//	                          above 50% congestion (60/40 to L1/L2)
func applyInterventions(p *Parameters, sc *scenario.Scenario, report *validation.Report) {
	for _, kind := range sc.AIInterventions {
		if !kind.Valid() {
			continue // already reported by schema validation
		}
		m := sc.EffectMagnitude(kind)
		if m < 0 || m >= 1 {
			report.AddError(validation.Result{
				Level:       validation.LevelRates,
				Message:     fmt.Sprintf("effect magnitude for %s = %.4f is outside [0,1)", kind, m),
				Field:       "ai_effects." + string(kind),
				ActualValue: m,
				Expected:    "0 <= m < 1",
			})
			continue
		}
		if m == 0 {
			continue
		}
		p.AIActive = true

		switch kind {
		case scenario.InterventionResolutionBoost:
			for i := range p.Levels {
				p.Levels[i].Resolution *= 1 + m
			}
		case scenario.InterventionPointOfCareResolution:
			p.Levels[0].Resolution *= 1 + m
			p.Levels[0].Referral *= 1 - m
		case scenario.InterventionLengthOfStayReduction:
			for i := 1; i < len(p.Levels); i++ {
				p.Levels[i].Resolution *= 1 + m
			}
		case scenario.InterventionDischargeOptimization:
			for i := 2; i < len(p.Levels); i++ {
				p.Levels[i].Resolution *= 1 + m
			}
		case scenario.InterventionTreatmentEfficiency:
			for i := range p.Levels {
				p.Levels[i].Death *= 1 - m
			}
		case scenario.InterventionResourceUtilization:
			p.Queue.ClearanceBoost = m
		case scenario.InterventionVisitReduction:
			p.VisitReduction = m
		case scenario.InterventionDirectRouting:
			p.DirectRoutingFraction = m
		}
	}
}
