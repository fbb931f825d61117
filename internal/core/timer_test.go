package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresOnFirstCall(t *testing.T) {
	fs := NewFixedStep(10)
	if !fs.ShouldStepAt(time.Unix(100, 0)) {
		t.Fatal("first call should step")
	}
}

func TestFixedStepGatesByInterval(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(100, 0)
	fs.ShouldStepAt(start)

	if fs.ShouldStepAt(start.Add(50 * time.Millisecond)) {
		t.Fatal("half an interval should not step")
	}
	if !fs.ShouldStepAt(start.Add(100 * time.Millisecond)) {
		t.Fatal("a full interval should step")
	}
	if fs.ShouldStepAt(start.Add(110 * time.Millisecond)) {
		t.Fatal("redraws inside the interval should not step")
	}
}

func TestFixedStepDoesNotBurstAfterStall(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(100, 0)
	fs.ShouldStepAt(start)

	now := start.Add(10 * time.Second)
	steps := 0
	for i := 0; i < 20; i++ {
		if fs.ShouldStepAt(now) {
			steps++
		}
	}
	if steps > 2 {
		t.Fatalf("stall replayed %d steps", steps)
	}
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("expected 60 TPS default, got interval %v", fs.Interval())
	}
}
