package scenario

// Scenario is the top-level configuration for a simulation run.
type Scenario struct {
	SchemaVersion string   `yaml:"schema_version" json:"schema_version"`
	Population    float64  `yaml:"population" json:"population"`
	HorizonWeeks  int      `yaml:"horizon_weeks" json:"horizon_weeks"`
	Diseases      []string `yaml:"diseases" json:"diseases"`

	Behavior  Behavior  `yaml:"behavior" json:"behavior"`
	System    System    `yaml:"system" json:"system"`
	Queue     Queue     `yaml:"queue" json:"queue"`
	Economics Economics `yaml:"economics" json:"economics"`

	HealthSystem HealthSystemMultipliers `yaml:"health_system" json:"health_system"`

	AIInterventions []Intervention           `yaml:"ai_interventions" json:"aiInterventions"`
	AIEffects       map[Intervention]float64 `yaml:"ai_effects,omitempty" json:"aiEffects,omitempty"`

	CountryCode string `yaml:"country_code,omitempty" json:"countryCode,omitempty"`
	IsUrban     bool   `yaml:"is_urban,omitempty" json:"isUrban,omitempty"`

	// DiseaseOverrides replaces or extends entries of the built-in disease
	// library, keyed by disease ID.
	DiseaseOverrides map[string]Disease `yaml:"disease_overrides,omitempty" json:"diseaseOverrides,omitempty"`
}

// Behavior holds care-seeking parameters shared across diseases.
type Behavior struct {
	FormalCareSeeking float64 `yaml:"formal_care_seeking" json:"formal_care_seeking"` // φ₀
	UntreatedRatio    float64 `yaml:"untreated_ratio" json:"untreated_ratio"`         // r, share of non-formal staying untreated
}

// System holds congestion parameters shared across diseases.
type System struct {
	Congestion             float64 `yaml:"congestion" json:"congestion"`                           // s
	CompetitionSensitivity float64 `yaml:"competition_sensitivity" json:"competition_sensitivity"` // κ
}

// Queue holds the queue subsystem rates. All are weekly probabilities
// except CongestionMortalityMultiplier, which scales the level death rate
// for queued patients.
type Queue struct {
	PreventionRate                float64 `yaml:"prevention_rate" json:"prevention_rate"`
	AbandonmentRate               float64 `yaml:"abandonment_rate" json:"abandonment_rate"`
	BypassRate                    float64 `yaml:"bypass_rate" json:"bypass_rate"`
	SelfResolveRate               float64 `yaml:"self_resolve_rate" json:"self_resolve_rate"`
	ClearanceRate                 float64 `yaml:"clearance_rate" json:"clearance_rate"`
	CongestionMortalityMultiplier float64 `yaml:"congestion_mortality_multiplier" json:"congestion_mortality_multiplier"`
}

// Economics holds costing and DALY parameters.
type Economics struct {
	PerDiemCosts   [NumLevels]float64 `yaml:"per_diem_costs" json:"per_diem_costs"` // L0..L3, $/patient-day
	AIFixedCost    float64            `yaml:"ai_fixed_cost" json:"ai_fixed_cost"`
	AIVariableCost float64            `yaml:"ai_variable_cost" json:"ai_variable_cost"` // $/episode touched
	LifeExpectancy float64            `yaml:"life_expectancy" json:"life_expectancy"`
	DiscountRate   float64            `yaml:"discount_rate" json:"discount_rate"`
}

// NumLevels is the number of formal care levels (L0 through L3).
const NumLevels = 4

// LevelRates are the weekly transition probabilities for one formal level.
// Referral is zero for L3, which has no higher level to refer to.
type LevelRates struct {
	Resolution float64 `yaml:"resolution" json:"resolution"` // μ
	Death      float64 `yaml:"death" json:"death"`           // δ
	Referral   float64 `yaml:"referral" json:"referral"`     // ρ
}

// Disease is one clinical parameter set. Behavioral and system parameters
// are shared across diseases; everything here is substituted per disease.
type Disease struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`

	IncidenceRate    float64 `yaml:"incidence_rate" json:"incidence_rate"`       // λ, annual episodes per capita
	InformalTransfer float64 `yaml:"informal_transfer" json:"informal_transfer"` // σI, weekly

	UntreatedResolution float64 `yaml:"untreated_resolution" json:"untreated_resolution"` // μU
	UntreatedDeath      float64 `yaml:"untreated_death" json:"untreated_death"`           // δU
	InformalResolution  float64 `yaml:"informal_resolution" json:"informal_resolution"`   // μI
	InformalDeath       float64 `yaml:"informal_death" json:"informal_death"`             // δI

	Levels [NumLevels]LevelRates `yaml:"levels" json:"levels"`

	DisabilityWeight float64 `yaml:"disability_weight" json:"disability_weight"`
	MeanAgeOfOnset   float64 `yaml:"mean_age_of_onset" json:"mean_age_of_onset"`
}

// HealthSystemMultipliers adjust the formal-level rates to represent
// health-system-strength scenarios. Applied exactly once, by the resolver.
type HealthSystemMultipliers struct {
	Preset     string             `yaml:"preset,omitempty" json:"preset,omitempty"`
	Resolution [NumLevels]float64 `yaml:"resolution" json:"resolution"` // α
	Death      [NumLevels]float64 `yaml:"death" json:"death"`           // β
	Referral   [NumLevels]float64 `yaml:"referral" json:"referral"`     // γ
}

// IsZero reports whether no explicit multipliers were supplied.
func (m HealthSystemMultipliers) IsZero() bool {
	for i := 0; i < NumLevels; i++ {
		if m.Resolution[i] != 0 || m.Death[i] != 0 || m.Referral[i] != 0 {
			return false
		}
	}
	return true
}
