package outcome

import "errors"

// ErrMissingBaseline reports an ICER request without a baseline result.
// Non-fatal: callers omit the ICER field rather than reporting zero.
var ErrMissingBaseline = errors.New("icer requires a baseline result")

// ICERKind classifies the comparison against baseline.
type ICERKind string

const (
	// ICERRatio is an ordinary cost-per-DALY-averted ratio.
	ICERRatio ICERKind = "ratio"
	// ICERDominant marks an intervention that costs less and averts
	// more DALYs than baseline. The raw ratio would be a negative over
	// a positive and must not be displayed as an ordinary number.
	ICERDominant ICERKind = "dominant"
	// ICERDominated marks an intervention that costs more and performs
	// worse than baseline.
	ICERDominated ICERKind = "dominated"
)

// ICER is the incremental cost-effectiveness result. Value is only
// meaningful when Kind is ICERRatio.
type ICER struct {
	Kind  ICERKind `json:"kind"`
	Value float64  `json:"value,omitempty"`
}

// ComputeICER compares an intervention run to a baseline run:
// (Cost_i - Cost_0) / (DALY_0 - DALY_i). Dominance cases are flagged
// instead of returning a numeric ratio.
func ComputeICER(costIntervention, dalyIntervention, costBaseline, dalyBaseline float64) ICER {
	dCost := costIntervention - costBaseline
	averted := dalyBaseline - dalyIntervention

	switch {
	case dCost < 0 && averted > 0:
		return ICER{Kind: ICERDominant}
	case dCost > 0 && averted < 0:
		return ICER{Kind: ICERDominated}
	case averted == 0:
		// No health difference: treat as dominated when it costs more,
		// dominant when it costs less, ratio 0 when identical.
		if dCost > 0 {
			return ICER{Kind: ICERDominated}
		}
		if dCost < 0 {
			return ICER{Kind: ICERDominant}
		}
		return ICER{Kind: ICERRatio, Value: 0}
	default:
		return ICER{Kind: ICERRatio, Value: dCost / averted}
	}
}
