package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/seed"
)

// CLI represents the CLI application context.
// Every invocation works on a freshly seeded, process-local store.
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
}

// NewCLI seeds the stores from the configured seed file (or the embedded
// data) and builds the application container. Latency simulation is off.
// A nil now uses the wall clock.
func NewCLI(cfg *config.Config, now func() time.Time) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if now == nil {
		now = time.Now
	}

	data, err := seed.Load(cfg.SeedFile, now())
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}

	application := app.New(data,
		app.WithClock(now),
		app.WithLogger(slog.Default()),
	)

	return &CLI{
		App:    application,
		Config: cfg,
	}, nil
}

// Now returns the current time from the app clock
func (c *CLI) Now() time.Time {
	return c.App.Now()
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
