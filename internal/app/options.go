package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/lanes/internal/ai"
	"github.com/thenoetrevino/lanes/internal/config"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	cfg      *config.Config
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
	aiClient *ai.Client
	stateKey string
}

// WithConfig sets the loaded configuration
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.cfg = cfg
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}

// WithClock sets the time source shared by the services
func WithClock(now func() time.Time) Option {
	return func(c *appConfig) {
		c.now = now
	}
}

// WithIDGenerator sets how task and column ids are minted
func WithIDGenerator(newID func() string) Option {
	return func(c *appConfig) {
		c.newID = newID
	}
}

// WithAIClient replaces the AI client built from the configuration
func WithAIClient(client *ai.Client) Option {
	return func(c *appConfig) {
		c.aiClient = client
	}
}

// WithStateKey overrides the store key the board is saved under
func WithStateKey(key string) Option {
	return func(c *appConfig) {
		c.stateKey = key
	}
}
