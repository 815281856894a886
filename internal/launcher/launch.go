package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/logging"
	"github.com/thenoetrevino/taskflow/internal/seed"
	"github.com/thenoetrevino/taskflow/internal/tui"
)

// Options are command-line overrides applied on top of the loaded config
type Options struct {
	SeedFile  string
	NoLatency bool
	LogLevel  string
}

// Apply writes the set overrides into cfg
func (o Options) Apply(cfg *config.Config) {
	if o.SeedFile != "" {
		cfg.SeedFile = o.SeedFile
	}
	if o.NoLatency {
		cfg.Latency.Enabled = false
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
}

// Launch starts the TUI application
func Launch(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	opts.Apply(cfg)

	// Initialize logging to file before anything else; the TUI owns the
	// terminal so a failure silences logs instead of writing to stderr
	closer, err := logging.Init(cfg.LogLevel)
	if err != nil {
		logging.Setup(io.Discard, cfg.LogLevel)
	} else {
		defer func() { _ = closer.Close() }()
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	data, err := seed.Load(cfg.SeedFile, time.Now())
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	application := app.New(data,
		app.WithLatency(latency.New(cfg.EffectiveLatencyScale())),
		app.WithLogger(slog.Default()),
	)
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	slog.Info("starting tui",
		"tasks", len(data.Tasks),
		"categories", len(data.Categories),
		"latency_scale", cfg.EffectiveLatencyScale(),
	)

	model := tui.New(ctx, application, cfg)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
