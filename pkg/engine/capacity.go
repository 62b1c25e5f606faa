package engine

import "math"

// Capacity is the weekly throughput model derived from effective
// congestion. Multiplier is the fraction of desired flow actually
// admitted into a level; QueueEntryRate is the probability that blocked
// flow joins a queue rather than deflecting.
type Capacity struct {
	EffectiveCongestion float64
	Multiplier          float64
	QueueEntryRate      float64
}

// ComputeCapacity evaluates the capacity model at the given effective
// congestion (s·κ, AI adjustments pre-applied by the resolver). There is
// no upper clamp: over-saturation beyond 1 pushes the multiplier toward
// zero. At zero congestion the multiplier is exactly 1 and the queue
// subsystem is skipped entirely.
func ComputeCapacity(effectiveCongestion float64) Capacity {
	if effectiveCongestion <= 0 {
		return Capacity{Multiplier: 1}
	}
	return Capacity{
		EffectiveCongestion: effectiveCongestion,
		Multiplier:          math.Exp(-2 * effectiveCongestion),
		// Sigmoid centered at 50% effective congestion: queue formation
		// is gradual, not a hard threshold.
		QueueEntryRate: 1 / (1 + math.Exp(-2*(effectiveCongestion-0.5))),
	}
}
