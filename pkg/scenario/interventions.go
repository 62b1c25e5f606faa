package scenario

// Intervention is one kind of AI-assisted care improvement. The set is
// closed: unknown names are rejected at validation time rather than
// silently ignored.
type Intervention string

const (
	InterventionResolutionBoost       Intervention = "resolution_boost"
	InterventionPointOfCareResolution Intervention = "point_of_care_resolution"
	InterventionLengthOfStayReduction Intervention = "length_of_stay_reduction"
	InterventionDischargeOptimization Intervention = "discharge_optimization"
	InterventionTreatmentEfficiency   Intervention = "treatment_efficiency"
	InterventionResourceUtilization   Intervention = "resource_utilization"
	InterventionVisitReduction        Intervention = "visit_reduction"
	InterventionDirectRouting         Intervention = "direct_routing"
)

// AllInterventions lists every valid intervention kind in a stable order.
var AllInterventions = []Intervention{
	InterventionResolutionBoost,
	InterventionPointOfCareResolution,
	InterventionLengthOfStayReduction,
	InterventionDischargeOptimization,
	InterventionTreatmentEfficiency,
	InterventionResourceUtilization,
	InterventionVisitReduction,
	InterventionDirectRouting,
}

// DefaultEffects maps each intervention kind to its default effect
// magnitude. Magnitudes are fractional improvements in [0,1); scenarios
// may override any entry via ai_effects.
var DefaultEffects = map[Intervention]float64{
	InterventionResolutionBoost:       0.15,
	InterventionPointOfCareResolution: 0.20,
	InterventionLengthOfStayReduction: 0.10,
	InterventionDischargeOptimization: 0.12,
	InterventionTreatmentEfficiency:   0.10,
	InterventionResourceUtilization:   0.15,
	InterventionVisitReduction:        0.08,
	InterventionDirectRouting:         0.25,
}

// Valid reports whether i names a known intervention kind.
func (i Intervention) Valid() bool {
	_, ok := DefaultEffects[i]
	return ok
}

// HasIntervention reports whether the scenario enables the given kind.
func (sc *Scenario) HasIntervention(kind Intervention) bool {
	for _, i := range sc.AIInterventions {
		if i == kind {
			return true
		}
	}
	return false
}

// EffectMagnitude returns the magnitude for an enabled intervention,
// or 0 when the intervention is not enabled.
func (sc *Scenario) EffectMagnitude(kind Intervention) float64 {
	if !sc.HasIntervention(kind) {
		return 0
	}
	if m, ok := sc.AIEffects[kind]; ok {
		return m
	}
	return DefaultEffects[kind]
}
