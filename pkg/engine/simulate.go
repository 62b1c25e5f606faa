package engine

import (
	"github.com/rs/zerolog"

	"github.com/pathware/careflow/pkg/resolve"
	"github.com/pathware/careflow/pkg/scenario"
)

// Result is the terminal output of one disease's run: the full weekly
// series plus the cumulative quantities the outcome calculator needs.
type Result struct {
	DiseaseID   string  `json:"disease_id"`
	DiseaseName string  `json:"disease_name"`
	Series      []State `json:"series"`

	CumulativeDeaths   float64 `json:"cumulative_deaths"`
	CumulativeResolved float64 `json:"cumulative_resolved"`

	PatientDays   [scenario.NumLevels]float64 `json:"patient_days"`
	IllPersonDays float64                     `json:"ill_person_days"`
	Episodes      float64                     `json:"episodes"`

	// AvgWeeksToResolution is total ill person-weeks divided by total
	// resolutions; zero when nothing resolved.
	AvgWeeksToResolution float64 `json:"avg_weeks_to_resolution"`
}

// Simulator runs the weekly compartmental model for one disease. It is
// deterministic and carries no state between runs; identical parameters
// produce bit-identical results.
type Simulator struct {
	params *resolve.Parameters
	logger zerolog.Logger
}

// NewSimulator builds a simulator for fully-resolved parameters.
func NewSimulator(params *resolve.Parameters) *Simulator {
	return &Simulator{params: params, logger: zerolog.Nop()}
}

// WithLogger attaches a logger used only to record fatal internal
// defects; the simulation itself never logs.
func (s *Simulator) WithLogger(logger zerolog.Logger) *Simulator {
	s.logger = logger
	return s
}

// Run executes the full horizon. Week 0 is the empty initial state; each
// subsequent entry is the state after that week's update. A negative
// stock or numeric instability aborts the run with the offending
// compartment and week logged.
func (s *Simulator) Run() (*Result, error) {
	p := s.params
	capacity := ComputeCapacity(p.EffectiveCongestion)

	result := &Result{
		DiseaseID:   p.DiseaseID,
		DiseaseName: p.DiseaseName,
		Series:      make([]State, 0, p.HorizonWeeks+1),
	}

	state := State{}
	result.Series = append(result.Series, state)

	for week := 0; week < p.HorizonWeeks; week++ {
		next, flows, err := step(state, p, capacity)
		if err != nil {
			s.logger.Error().
				Str("disease", p.DiseaseID).
				Int("week", week+1).
				Err(err).
				Msg("simulation aborted: internal invariant violated")
			return nil, err
		}

		for l := 0; l < scenario.NumLevels; l++ {
			result.PatientDays[l] += flows.PatientDays[l]
		}
		result.IllPersonDays += flows.IllDays
		result.Episodes += flows.Episodes

		state = next
		result.Series = append(result.Series, state)
	}

	result.CumulativeDeaths = state.Deaths
	result.CumulativeResolved = state.Resolved
	if state.Resolved > 0 {
		result.AvgWeeksToResolution = (result.IllPersonDays / 7) / state.Resolved
	}

	return result, nil
}
