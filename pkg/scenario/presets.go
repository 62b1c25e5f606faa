package scenario

// NeutralMultipliers returns identity multipliers (no adjustment).
func NeutralMultipliers() HealthSystemMultipliers {
	return HealthSystemMultipliers{
		Resolution: [NumLevels]float64{1, 1, 1, 1},
		Death:      [NumLevels]float64{1, 1, 1, 1},
		Referral:   [NumLevels]float64{1, 1, 1, 1},
	}
}

// Named health-system-strength presets. A weak system resolves less,
// kills more, and refers more (cases escalate because lower levels
// cannot finish them); a strong system is the opposite.
var presets = map[string]HealthSystemMultipliers{
	"weak": {
		Preset:     "weak",
		Resolution: [NumLevels]float64{0.6, 0.65, 0.7, 0.75},
		Death:      [NumLevels]float64{1.5, 1.4, 1.3, 1.25},
		Referral:   [NumLevels]float64{1.3, 1.25, 1.2, 1},
	},
	"moderate": {
		Preset:     "moderate",
		Resolution: [NumLevels]float64{1, 1, 1, 1},
		Death:      [NumLevels]float64{1, 1, 1, 1},
		Referral:   [NumLevels]float64{1, 1, 1, 1},
	},
	"strong": {
		Preset:     "strong",
		Resolution: [NumLevels]float64{1.25, 1.2, 1.15, 1.1},
		Death:      [NumLevels]float64{0.7, 0.75, 0.8, 0.85},
		Referral:   [NumLevels]float64{0.85, 0.9, 0.95, 1},
	},
}

// PresetMultipliers looks up a named health-system preset.
func PresetMultipliers(name string) (HealthSystemMultipliers, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns the available preset names.
func PresetNames() []string {
	return []string{"weak", "moderate", "strong"}
}
