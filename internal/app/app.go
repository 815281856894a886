package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/seed"
	categoryservice "github.com/thenoetrevino/taskflow/internal/services/category"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Change bus shared by both stores
	Events *events.Bus

	// Service layer
	TaskService     taskservice.Service
	CategoryService categoryservice.Service

	logger  *slog.Logger
	now     func() time.Time
	ownsBus bool
}

// New creates a new App with both stores seeded from data.
// This is the single entry point for creating the application container.
func New(data *seed.Data, opts ...Option) *App {
	cfg := &appConfig{
		latency: latency.None(),
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if data == nil {
		data = &seed.Data{}
	}

	ownsBus := cfg.bus == nil
	if ownsBus {
		cfg.bus = events.NewBus(events.WithLogger(cfg.logger), events.WithClock(cfg.now))
	}

	cfg.logger.Debug("app initialized",
		"tasks", len(data.Tasks),
		"categories", len(data.Categories),
	)

	return &App{
		Events: cfg.bus,
		TaskService: taskservice.NewService(data.Tasks,
			taskservice.WithLatency(cfg.latency),
			taskservice.WithClock(cfg.now),
			taskservice.WithPublisher(cfg.bus),
		),
		CategoryService: categoryservice.NewService(data.Categories,
			categoryservice.WithLatency(cfg.latency),
			categoryservice.WithPublisher(cfg.bus),
		),
		logger:  cfg.logger,
		now:     cfg.now,
		ownsBus: ownsBus,
	}
}

// Now returns the current time from the app clock
func (a *App) Now() time.Time {
	return a.now()
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close shuts down the event bus if the app created it
func (a *App) Close() error {
	if !a.ownsBus {
		return nil
	}
	return a.Events.Close()
}
