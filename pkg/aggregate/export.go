package aggregate

import "github.com/pathware/careflow/pkg/scenario"

// Export is the persisted scenario shape consumed by external tooling.
// Parameters round-trip exactly: re-simulating an exported scenario
// reproduces the stored results bit for bit (IEEE-754 doubles, no lossy
// rounding).
type Export struct {
	Parameters      *scenario.Scenario      `json:"parameters"`
	AIInterventions []scenario.Intervention `json:"aiInterventions"`
	Results         *Result                 `json:"results"`
	BaselineResults *Result                 `json:"baselineResults,omitempty"`
	CountryCode     string                  `json:"countryCode,omitempty"`
	IsUrban         bool                    `json:"isUrban,omitempty"`
}

// NewExport assembles the export record for a finished run.
func NewExport(sc *scenario.Scenario, results, baseline *Result) *Export {
	return &Export{
		Parameters:      sc,
		AIInterventions: sc.AIInterventions,
		Results:         results,
		BaselineResults: baseline,
		CountryCode:     sc.CountryCode,
		IsUrban:         sc.IsUrban,
	}
}
