package scenario

import (
	"fmt"
	"sort"
)

// Built-in clinical parameter library. All transition rates are weekly
// probabilities; incidence is annual episodes per capita.
var diseaseLibrary = map[string]Disease{
	"pneumonia_childhood": {
		ID:                  "pneumonia_childhood",
		Name:                "Childhood pneumonia",
		IncidenceRate:       0.20,
		InformalTransfer:    0.25,
		UntreatedResolution: 0.05,
		UntreatedDeath:      0.02,
		InformalResolution:  0.10,
		InformalDeath:       0.012,
		Levels: [NumLevels]LevelRates{
			{Resolution: 0.40, Death: 0.004, Referral: 0.15},
			{Resolution: 0.50, Death: 0.006, Referral: 0.10},
			{Resolution: 0.60, Death: 0.010, Referral: 0.05},
			{Resolution: 0.65, Death: 0.020, Referral: 0},
		},
		DisabilityWeight: 0.28,
		MeanAgeOfOnset:   2.5,
	},
	"tuberculosis": {
		ID:                  "tuberculosis",
		Name:                "Tuberculosis",
		IncidenceRate:       0.003,
		InformalTransfer:    0.10,
		UntreatedResolution: 0.005,
		UntreatedDeath:      0.003,
		InformalResolution:  0.008,
		InformalDeath:       0.0025,
		Levels: [NumLevels]LevelRates{
			{Resolution: 0.03, Death: 0.001, Referral: 0.08},
			{Resolution: 0.04, Death: 0.0015, Referral: 0.06},
			{Resolution: 0.05, Death: 0.002, Referral: 0.03},
			{Resolution: 0.06, Death: 0.004, Referral: 0},
		},
		DisabilityWeight: 0.33,
		MeanAgeOfOnset:   35,
	},
	"malaria": {
		ID:                  "malaria",
		Name:                "Malaria",
		IncidenceRate:       0.40,
		InformalTransfer:    0.30,
		UntreatedResolution: 0.08,
		UntreatedDeath:      0.008,
		InformalResolution:  0.15,
		InformalDeath:       0.005,
		Levels: [NumLevels]LevelRates{
			{Resolution: 0.55, Death: 0.002, Referral: 0.08},
			{Resolution: 0.60, Death: 0.003, Referral: 0.06},
			{Resolution: 0.70, Death: 0.006, Referral: 0.02},
			{Resolution: 0.75, Death: 0.012, Referral: 0},
		},
		DisabilityWeight: 0.19,
		MeanAgeOfOnset:   8,
	},
	"diarrheal_disease": {
		ID:                  "diarrheal_disease",
		Name:                "Diarrheal disease",
		IncidenceRate:       0.60,
		InformalTransfer:    0.20,
		UntreatedResolution: 0.20,
		UntreatedDeath:      0.006,
		InformalResolution:  0.30,
		InformalDeath:       0.003,
		Levels: [NumLevels]LevelRates{
			{Resolution: 0.65, Death: 0.0015, Referral: 0.05},
			{Resolution: 0.70, Death: 0.002, Referral: 0.04},
			{Resolution: 0.80, Death: 0.004, Referral: 0.015},
			{Resolution: 0.85, Death: 0.008, Referral: 0},
		},
		DisabilityWeight: 0.15,
		MeanAgeOfOnset:   3,
	},
	"maternal_complications": {
		ID:                  "maternal_complications",
		Name:                "Maternal complications",
		IncidenceRate:       0.025,
		InformalTransfer:    0.35,
		UntreatedResolution: 0.03,
		UntreatedDeath:      0.015,
		InformalResolution:  0.05,
		InformalDeath:       0.010,
		Levels: [NumLevels]LevelRates{
			{Resolution: 0.25, Death: 0.005, Referral: 0.30},
			{Resolution: 0.40, Death: 0.006, Referral: 0.20},
			{Resolution: 0.55, Death: 0.008, Referral: 0.08},
			{Resolution: 0.60, Death: 0.015, Referral: 0},
		},
		DisabilityWeight: 0.32,
		MeanAgeOfOnset:   26,
	},
}

// DiseaseIDs returns the built-in library's disease IDs in sorted order.
func DiseaseIDs() []string {
	ids := make([]string, 0, len(diseaseLibrary))
	for id := range diseaseLibrary {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LookupDisease resolves a disease ID against the scenario's overrides
// first, then the built-in library.
func (sc *Scenario) LookupDisease(id string) (Disease, error) {
	if d, ok := sc.DiseaseOverrides[id]; ok {
		if d.ID == "" {
			d.ID = id
		}
		return d, nil
	}
	if d, ok := diseaseLibrary[id]; ok {
		return d, nil
	}
	return Disease{}, fmt.Errorf("unknown disease %q", id)
}
