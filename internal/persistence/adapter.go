package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
)

// DefaultKey is the store key the board document lives under
const DefaultKey = "kanban-state"

// Adapter loads and saves the whole board as one document under one key
type Adapter struct {
	store database.Store
	key   string
}

// NewAdapter creates an adapter over store. An empty key uses DefaultKey.
func NewAdapter(store database.Store, key string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{store: store, key: key}
}

// Key returns the store key used by the adapter
func (a *Adapter) Key() string {
	return a.key
}

// Load reads the stored board. ok is false when nothing has been saved yet.
// A stored document that cannot be decoded yields a *ParseError.
func (a *Adapter) Load(ctx context.Context) (*models.Board, bool, error) {
	raw, ok, err := a.store.Get(ctx, a.key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load board: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	board, err := Decode([]byte(raw))
	if err != nil {
		slog.Error("stored board is unreadable", "key", a.key, "error", err)
		return nil, false, err
	}
	return board, true, nil
}

// Save writes the board, replacing any previous document
func (a *Adapter) Save(ctx context.Context, board *models.Board) error {
	data, err := Encode(board)
	if err != nil {
		return err
	}
	if err := a.store.Set(ctx, a.key, string(data)); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}

// Clear removes the stored board
func (a *Adapter) Clear(ctx context.Context) error {
	if err := a.store.Delete(ctx, a.key); err != nil {
		return fmt.Errorf("failed to clear board: %w", err)
	}
	return nil
}
