package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thenoetrevino/lanes/internal/ai"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/logging"
	"github.com/thenoetrevino/lanes/internal/relay"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	logger := logging.Setup(os.Stderr, slog.LevelInfo)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	client := ai.NewClient(
		ai.WithBaseURL(cfg.AI.BaseURL),
		ai.WithModel(cfg.AI.Model),
		ai.WithMaxTokens(cfg.AI.MaxTokens),
		ai.WithTimeout(time.Duration(cfg.AI.TimeoutSeconds)*time.Second),
	)

	server := relay.NewServer(client,
		relay.WithAPIKey(cfg.AI.APIKey),
		relay.WithLogger(logger),
	)

	logger.Info("lanes relay starting", "addr", cfg.Relay.Addr, "model", cfg.AI.Model, "pid", os.Getpid())

	// Blocks until shutdown
	if err := server.ListenAndServe(ctx, cfg.Relay.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("relay error", "error", err)
		os.Exit(1)
	}

	logger.Info("lanes relay shutting down gracefully")
}
