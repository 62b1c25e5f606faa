package scenario

// Default returns a baseline scenario: a population of 300,000 served by
// an uncongested moderate-strength system, simulating childhood pneumonia
// with no AI interventions.
func Default() *Scenario {
	sc := &Scenario{
		SchemaVersion: "1.0",
		Population:    300000,
		HorizonWeeks:  52,
		Diseases:      []string{"pneumonia_childhood"},
		Behavior: Behavior{
			FormalCareSeeking: 0.60,
			UntreatedRatio:    0.30,
		},
		System: System{
			Congestion:             0,
			CompetitionSensitivity: 1.0,
		},
		Queue: Queue{
			PreventionRate:                0.10,
			AbandonmentRate:               0.05,
			BypassRate:                    0.08,
			SelfResolveRate:               0.03,
			ClearanceRate:                 0.30,
			CongestionMortalityMultiplier: 1.5,
		},
		Economics: Economics{
			PerDiemCosts:   [NumLevels]float64{12, 25, 70, 180},
			AIFixedCost:    0,
			AIVariableCost: 0,
			LifeExpectancy: 72,
			DiscountRate:   0.03,
		},
	}
	sc.ApplyDefaults()
	return sc
}
