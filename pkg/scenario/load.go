package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a scenario from a YAML file and applies defaults.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	sc.ApplyDefaults()
	return &sc, nil
}

// LoadProject loads a scenario from a project directory.
// It looks for scenario.yaml in the given directory.
func LoadProject(projectDir string) (*Scenario, error) {
	return Load(filepath.Join(projectDir, "scenario.yaml"))
}

// ApplyDefaults fills unset fields with their conventional defaults.
func (sc *Scenario) ApplyDefaults() {
	if sc.HorizonWeeks == 0 {
		sc.HorizonWeeks = 52
	}
	if sc.HealthSystem.Preset != "" {
		if p, ok := PresetMultipliers(sc.HealthSystem.Preset); ok {
			sc.HealthSystem = p
		}
	}
	if sc.HealthSystem.IsZero() {
		sc.HealthSystem = NeutralMultipliers()
	}
	if sc.AIEffects == nil {
		sc.AIEffects = map[Intervention]float64{}
	}
	for kind, magnitude := range DefaultEffects {
		if _, ok := sc.AIEffects[kind]; !ok {
			sc.AIEffects[kind] = magnitude
		}
	}
}
