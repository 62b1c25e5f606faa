package resolve

import "github.com/pathware/careflow/pkg/scenario"

// LevelRates are fully-resolved weekly rates for one formal level.
type LevelRates struct {
	Resolution float64 `json:"resolution"`
	Death      float64 `json:"death"`
	Referral   float64 `json:"referral"`
	PerDiem    float64 `json:"per_diem"`
}

// QueueRates are fully-resolved queue subsystem rates.
type QueueRates struct {
	PreventionRate      float64 `json:"prevention_rate"`
	AbandonmentRate     float64 `json:"abandonment_rate"`
	BypassRate          float64 `json:"bypass_rate"`
	SelfResolveRate     float64 `json:"self_resolve_rate"`
	ClearanceRate       float64 `json:"clearance_rate"`
	MortalityMultiplier float64 `json:"mortality_multiplier"`
	ClearanceBoost      float64 `json:"clearance_boost"`
}

// Parameters is the fully-resolved parameter set consumed by the engine
// and the outcome calculator. Every rate already includes health-system,
// country, and AI effects; downstream code never re-applies them.
type Parameters struct {
	DiseaseID   string `json:"disease_id"`
	DiseaseName string `json:"disease_name"`

	Population   float64 `json:"population"`
	HorizonWeeks int     `json:"horizon_weeks"`

	Incidence         float64 `json:"incidence"`           // λ, annual episodes per capita
	FormalCareSeeking float64 `json:"formal_care_seeking"` // φ₀
	UntreatedRatio    float64 `json:"untreated_ratio"`     // r
	InformalTransfer  float64 `json:"informal_transfer"`   // σI

	UntreatedResolution float64 `json:"untreated_resolution"`
	UntreatedDeath      float64 `json:"untreated_death"`
	InformalResolution  float64 `json:"informal_resolution"`
	InformalDeath       float64 `json:"informal_death"`

	Levels [scenario.NumLevels]LevelRates `json:"levels"`

	// Congestion is the raw system congestion s after geography
	// adjustment; EffectiveCongestion is s·κ with the AI resource-
	// utilization reduction already applied.
	Congestion             float64 `json:"congestion"`
	CompetitionSensitivity float64 `json:"competition_sensitivity"`
	EffectiveCongestion    float64 `json:"effective_congestion"`

	Queue QueueRates `json:"queue"`

	// DirectRoutingFraction is the share of formal entries routed around
	// L0 when congestion exceeds 0.5; VisitReduction is the share of new
	// formal arrivals redirected to informal care. Both are zero unless
	// the corresponding AI intervention is enabled.
	DirectRoutingFraction float64 `json:"direct_routing_fraction"`
	VisitReduction        float64 `json:"visit_reduction"`

	AIActive       bool    `json:"ai_active"`
	AIFixedCost    float64 `json:"ai_fixed_cost"`
	AIVariableCost float64 `json:"ai_variable_cost"`

	DisabilityWeight float64 `json:"disability_weight"`
	LifeExpectancy   float64 `json:"life_expectancy"`
	MeanAgeOfOnset   float64 `json:"mean_age_of_onset"`
	DiscountRate     float64 `json:"discount_rate"`
}
