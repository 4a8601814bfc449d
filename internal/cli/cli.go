package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/cli/styles"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the app was injected by the caller, who then
	// remains responsible for closing it
	owned bool
}

// NewCLI loads the configuration and opens the configured store
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	store, err := database.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Storage.Backend, err)
	}

	styles.Init(cfg.ColorScheme)

	return &CLI{
		App:   app.New(store, app.WithConfig(cfg)),
		owned: true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
