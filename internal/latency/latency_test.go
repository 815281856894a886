package latency

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNone_NeverWaits(t *testing.T) {
	t.Parallel()

	sim := None()
	start := time.Now()
	if err := sim.Wait(context.Background(), TaskCreate); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("Expected no delay, waited %v", elapsed)
	}
}

func TestNilSimulator(t *testing.T) {
	t.Parallel()

	var sim *Simulator
	if sim.Delay(TaskList) != 0 {
		t.Error("Expected nil simulator to have zero delay")
	}
	if err := sim.Wait(context.Background(), TaskList); err != nil {
		t.Errorf("Expected nil simulator Wait to succeed, got %v", err)
	}
}

func TestNew_Scale(t *testing.T) {
	t.Parallel()

	sim := New(0.5)
	if got := sim.Delay(TaskCreate); got != 200*time.Millisecond {
		t.Errorf("Expected 200ms for half-scaled create, got %v", got)
	}

	if New(0).Delay(TaskCreate) != 0 {
		t.Error("Expected zero scale to disable delays")
	}
}

func TestWithDelay(t *testing.T) {
	t.Parallel()

	sim := None().WithDelay(TaskGet, 10*time.Millisecond)
	if got := sim.Delay(TaskGet); got != 10*time.Millisecond {
		t.Errorf("Expected 10ms, got %v", got)
	}
	if got := sim.Delay(TaskList); got != 0 {
		t.Errorf("Expected other ops to stay at 0, got %v", got)
	}
}

func TestWithDelay_KeepsDisabledScale(t *testing.T) {
	t.Parallel()

	sim := New(0).WithDelay(TaskGet, 10*time.Millisecond)
	if got := sim.Delay(TaskList); got != 0 {
		t.Errorf("Expected disabled simulator to keep list at 0, got %v", got)
	}
	if got := sim.Delay(TaskGet); got != 0 {
		t.Errorf("Expected disabled simulator to keep override at 0, got %v", got)
	}
}

func TestWait_Cancelled(t *testing.T) {
	t.Parallel()

	sim := None().WithDelay(TaskDelete, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sim.Wait(ctx, TaskDelete)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestWait_Elapses(t *testing.T) {
	t.Parallel()

	sim := None().WithDelay(TaskToggle, 20*time.Millisecond)
	start := time.Now()
	if err := sim.Wait(context.Background(), TaskToggle); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Expected to wait at least 20ms, waited %v", elapsed)
	}
}
