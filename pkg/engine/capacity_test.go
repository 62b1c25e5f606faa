package engine

import (
	"math"
	"testing"
)

func TestCapacityZeroCongestion(t *testing.T) {
	c := ComputeCapacity(0)
	if c.Multiplier != 1 {
		t.Errorf("multiplier = %v, want exactly 1", c.Multiplier)
	}
	if c.QueueEntryRate != 0 {
		t.Errorf("queue entry rate = %v, want 0", c.QueueEntryRate)
	}
}

func TestCapacityMidpoint(t *testing.T) {
	// congestion 0.5 with sensitivity 1.0 is the sigmoid midpoint
	c := ComputeCapacity(0.5)

	if math.Abs(c.Multiplier-math.Exp(-1)) > 1e-12 {
		t.Errorf("multiplier = %v, want exp(-1) ≈ 0.368", c.Multiplier)
	}
	if c.QueueEntryRate != 0.5 {
		t.Errorf("queue entry rate = %v, want exactly 0.5", c.QueueEntryRate)
	}
}

func TestCapacityOverSaturation(t *testing.T) {
	// No upper clamp: effective congestion above 1 keeps shrinking capacity.
	c1 := ComputeCapacity(1.0)
	c2 := ComputeCapacity(2.5)

	if c2.Multiplier >= c1.Multiplier {
		t.Errorf("multiplier should keep decreasing: %v then %v", c1.Multiplier, c2.Multiplier)
	}
	if c2.Multiplier <= 0 {
		t.Errorf("multiplier must stay positive, got %v", c2.Multiplier)
	}
	if c2.QueueEntryRate <= c1.QueueEntryRate || c2.QueueEntryRate >= 1 {
		t.Errorf("queue entry rate should rise toward 1: %v then %v", c1.QueueEntryRate, c2.QueueEntryRate)
	}
}
