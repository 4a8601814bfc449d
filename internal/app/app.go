package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/lanes/internal/ai"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/persistence"
	columnservice "github.com/thenoetrevino/lanes/internal/services/column"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
)

// ErrNilBoard is returned when a mutation yields no board
var ErrNilBoard = errors.New("mutation returned no board")

// MutateFunc derives the next board from the current one. It must not modify
// its argument.
type MutateFunc func(state *models.Board) (*models.Board, error)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	store   database.Store
	adapter *persistence.Adapter
	logger  *slog.Logger
	now     func() time.Time
	mu      sync.Mutex

	Config *config.Config

	// Service layer (business logic)
	TaskService   taskservice.Service
	ColumnService columnservice.Service
	AI            *ai.Client
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(store database.Store, opts ...Option) *App {
	c := &appConfig{}
	for _, opt := range opts {
		opt(c)
	}

	if c.cfg == nil {
		c.cfg = config.Default()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.now == nil {
		c.now = func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }
	}
	if c.stateKey == "" {
		c.stateKey = c.cfg.Storage.Key
	}
	if c.aiClient == nil {
		c.aiClient = ai.NewClient(
			ai.WithBaseURL(c.cfg.AI.BaseURL),
			ai.WithModel(c.cfg.AI.Model),
			ai.WithMaxTokens(c.cfg.AI.MaxTokens),
			ai.WithTimeout(time.Duration(c.cfg.AI.TimeoutSeconds)*time.Second),
		)
	}

	taskOpts := []taskservice.Option{taskservice.WithClock(c.now)}
	columnOpts := []columnservice.Option{columnservice.WithClock(c.now)}
	if c.newID != nil {
		taskOpts = append(taskOpts, taskservice.WithIDGenerator(c.newID))
		columnOpts = append(columnOpts, columnservice.WithIDGenerator(c.newID))
	}

	return &App{
		store:         store,
		adapter:       persistence.NewAdapter(store, c.stateKey),
		logger:        c.logger,
		now:           c.now,
		Config:        c.cfg,
		TaskService:   taskservice.NewService(taskOpts...),
		ColumnService: columnservice.NewService(columnOpts...),
		AI:            c.aiClient,
	}
}

// Board returns the current board. When nothing is stored, or the stored
// board has no columns, the default board is returned (and not saved).
func (a *App) Board(ctx context.Context) (*models.Board, error) {
	board, ok, err := a.adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok || len(board.Columns) == 0 {
		return models.DefaultBoard(a.now()), nil
	}
	return board, nil
}

// Mutate loads the board, applies fn and saves the result. If fn fails the
// store is left untouched and the error is returned as is.
func (a *App) Mutate(ctx context.Context, fn MutateFunc) (*models.Board, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	current, err := a.Board(ctx)
	if err != nil {
		return nil, err
	}

	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, ErrNilBoard
	}

	if err := a.adapter.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Replace validates board and stores it in place of the current one
func (a *App) Replace(ctx context.Context, board *models.Board) error {
	if board == nil {
		return ErrNilBoard
	}
	if err := board.Validate(); err != nil {
		return fmt.Errorf("refusing to replace board: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.adapter.Save(ctx, board)
}

// Reset stores a fresh default board
func (a *App) Reset(ctx context.Context) (*models.Board, error) {
	board := models.DefaultBoard(a.now())

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.adapter.Save(ctx, board); err != nil {
		return nil, err
	}
	a.logger.Info("board reset to defaults")
	return board, nil
}

// APIKey returns the configured LLM API key, which may be empty
func (a *App) APIKey() string {
	return a.Config.AI.APIKey
}

// Now returns the application clock's current time
func (a *App) Now() time.Time {
	return a.now()
}

// Close releases the underlying store
func (a *App) Close() error {
	return a.store.Close()
}
