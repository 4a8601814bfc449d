// Package relay serves the two stateless AI endpoints. Requests are validated,
// forwarded to the LLM API and upstream failures are translated into a
// uniform {"error": "..."} payload.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/thenoetrevino/lanes/internal/ai"
)

// Assistant is the AI collaborator the relay forwards to
type Assistant interface {
	Enhance(ctx context.Context, apiKey string, req ai.EnhanceRequest) (ai.Enhancement, error)
	GeneratePrompt(ctx context.Context, apiKey string, req ai.PromptRequest) (string, error)
}

const (
	maxBodySize     = "64K"
	shutdownTimeout = 5 * time.Second
)

// Server wraps the echo instance serving the relay endpoints
type Server struct {
	echo      *echo.Echo
	assistant Assistant
	apiKey    string
	metrics   *Metrics
	logger    *slog.Logger
}

// Option configures a Server
type Option func(*Server)

// WithAPIKey sets the key used when a request carries none
func WithAPIKey(key string) Option {
	return func(s *Server) {
		s.apiKey = key
	}
}

// WithLogger sets the logger used for request logs
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a relay server forwarding to assistant
func NewServer(assistant Assistant, opts ...Option) *Server {
	s := &Server{
		echo:      echo.New(),
		assistant: assistant,
		metrics:   NewMetrics(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.BodyLimit(maxBodySize))
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("relay request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	s.register()
	return s
}

func (s *Server) register() {
	s.echo.POST("/api/enhance-card", s.enhanceCard)
	s.echo.POST("/api/generate-prompt", s.generatePrompt)
	s.echo.GET("/healthz", s.healthz)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Metrics returns the live request counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Serve accepts connections on listener until ctx is cancelled, then shuts
// down gracefully
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.echo.Listener = listener

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("relay listening", "addr", listener.Addr().String())
		errCh <- s.echo.Start("")
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down relay: %w", err)
	}
	s.logger.Info("relay stopped")
	return nil
}

// ListenAndServe listens on addr and serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}
