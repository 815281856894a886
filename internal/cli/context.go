package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/taskflow/internal/config"
)

type cliContextKey struct{}

// WithCLI returns a context carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliContextKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI, or builds one from
// the user's config when none is present. The bool reports whether the
// caller owns (and must close) the returned CLI.
func GetCLIFromContext(ctx context.Context) (*CLI, bool, error) {
	if c, ok := ctx.Value(cliContextKey{}).(*CLI); ok && c != nil {
		return c, false, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, false, fmt.Errorf("failed to load config: %w", err)
	}
	c, err := NewCLI(cfg, nil)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}
