package engine

import "github.com/pathware/careflow/pkg/scenario"

// State is a snapshot of one disease's compartments at the end of a week.
// Resolved and Deaths are cumulative and non-decreasing; Entered is the
// cumulative effective new-case inflow, kept so conservation can be
// checked against the other stocks.
type State struct {
	Week int `json:"week"`

	Untreated float64 `json:"untreated"`
	Informal  float64 `json:"informal"`

	Levels [scenario.NumLevels]float64 `json:"levels"`
	Queues [scenario.NumLevels]float64 `json:"queues"`

	Resolved float64 `json:"resolved"`
	Deaths   float64 `json:"deaths"`
	Entered  float64 `json:"entered"`
}

// Active returns the population currently ill and alive: everything
// except the resolved and dead accumulators.
func (s State) Active() float64 {
	total := s.Untreated + s.Informal
	for i := 0; i < scenario.NumLevels; i++ {
		total += s.Levels[i] + s.Queues[i]
	}
	return total
}
