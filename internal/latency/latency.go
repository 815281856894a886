// Package latency simulates network round-trips for the in-memory stores.
// It exists so the UI can show loading states; tests use None.
package latency

import (
	"context"
	"time"
)

// Op identifies a store operation with its own simulated delay
type Op string

// Task operations
const (
	TaskList    Op = "task.list"
	TaskGet     Op = "task.get"
	TaskCreate  Op = "task.create"
	TaskUpdate  Op = "task.update"
	TaskDelete  Op = "task.delete"
	TaskToggle  Op = "task.toggle"
	TaskFilter  Op = "task.filter"
	TaskReorder Op = "task.reorder"
)

// Category operations
const (
	CategoryList   Op = "category.list"
	CategoryGet    Op = "category.get"
	CategoryCreate Op = "category.create"
	CategoryUpdate Op = "category.update"
	CategoryDelete Op = "category.delete"
)

// DefaultDelays mirrors the round-trip times the UI was designed against
var DefaultDelays = map[Op]time.Duration{
	TaskList:       300 * time.Millisecond,
	TaskGet:        200 * time.Millisecond,
	TaskCreate:     400 * time.Millisecond,
	TaskUpdate:     300 * time.Millisecond,
	TaskDelete:     250 * time.Millisecond,
	TaskToggle:     200 * time.Millisecond,
	TaskFilter:     200 * time.Millisecond,
	TaskReorder:    300 * time.Millisecond,
	CategoryList:   200 * time.Millisecond,
	CategoryGet:    150 * time.Millisecond,
	CategoryCreate: 300 * time.Millisecond,
	CategoryUpdate: 250 * time.Millisecond,
	CategoryDelete: 200 * time.Millisecond,
}

// Simulator delays store operations
type Simulator struct {
	delays map[Op]time.Duration
	scale  float64
}

// New creates a simulator using DefaultDelays multiplied by scale.
// A scale <= 0 disables all delays.
func New(scale float64) *Simulator {
	delays := make(map[Op]time.Duration, len(DefaultDelays))
	for op, d := range DefaultDelays {
		delays[op] = d
	}
	return &Simulator{delays: delays, scale: scale}
}

// None returns a simulator that never waits
func None() *Simulator {
	return &Simulator{}
}

// WithDelay overrides the delay for a single operation.
// On None it enables only that delay at scale 1; the scale of a
// simulator from New is kept, so New(0) stays silent.
func (s *Simulator) WithDelay(op Op, d time.Duration) *Simulator {
	if s.delays == nil {
		s.delays = make(map[Op]time.Duration)
		s.scale = 1
	}
	s.delays[op] = d
	return s
}

// Delay returns the scaled delay for op
func (s *Simulator) Delay(op Op) time.Duration {
	if s == nil || s.scale <= 0 {
		return 0
	}
	return time.Duration(float64(s.delays[op]) * s.scale)
}

// Wait blocks for the delay of op or until ctx is done.
// Callers must invoke Wait before touching state so a cancelled
// operation has no effect.
func (s *Simulator) Wait(ctx context.Context, op Op) error {
	d := s.Delay(op)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
