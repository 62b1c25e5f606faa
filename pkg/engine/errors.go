package engine

import "fmt"

// NegativeStockError is a fatal internal-consistency defect: a compartment
// would have gone below zero before clamping. It aborts the current
// single-disease run; sibling runs are unaffected.
type NegativeStockError struct {
	Compartment string
	Week        int
	Value       float64
}

func (e *NegativeStockError) Error() string {
	return fmt.Sprintf("negative stock in %s at week %d: %g", e.Compartment, e.Week, e.Value)
}

// NumericInstabilityError reports a NaN or infinity produced during a
// weekly update. Like NegativeStockError it is fatal for the run.
type NumericInstabilityError struct {
	Compartment string
	Week        int
}

func (e *NumericInstabilityError) Error() string {
	return fmt.Sprintf("numeric instability in %s at week %d", e.Compartment, e.Week)
}
