package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	bus     *events.Bus
	latency *latency.Simulator
	now     func() time.Time
	logger  *slog.Logger
}

// WithEventBus uses an existing bus instead of creating one
func WithEventBus(bus *events.Bus) Option {
	return func(cfg *appConfig) {
		cfg.bus = bus
	}
}

// WithLatency sets the simulated round-trip delays for both stores
func WithLatency(sim *latency.Simulator) Option {
	return func(cfg *appConfig) {
		if sim != nil {
			cfg.latency = sim
		}
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
