package category

import (
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
)

// Option configures the category service
type Option func(*service)

// WithLatency sets the simulated round-trip delays
func WithLatency(sim *latency.Simulator) Option {
	return func(s *service) {
		s.latency = sim
	}
}

// WithPublisher sets where change events are published
func WithPublisher(publisher events.EventPublisher) Option {
	return func(s *service) {
		s.publisher = publisher
	}
}
