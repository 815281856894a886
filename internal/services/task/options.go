package task

import (
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
)

// Option configures the task service
type Option func(*service)

// WithLatency sets the simulated round-trip delays
func WithLatency(sim *latency.Simulator) Option {
	return func(s *service) {
		s.latency = sim
	}
}

// WithClock overrides the time source used for CreatedAt and date filters
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPublisher sets where change events are published
func WithPublisher(publisher events.EventPublisher) Option {
	return func(s *service) {
		s.publisher = publisher
	}
}
