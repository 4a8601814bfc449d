package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
)

// FixedTime is the clock value of apps built by NewTestApp
var FixedTime = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

// SequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// NewTestApp creates an app over an in-memory store with a fixed clock and
// predictable ids. Extra options are applied after the defaults.
func NewTestApp(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()

	defaults := []app.Option{
		app.WithClock(func() time.Time { return FixedTime }),
		app.WithIDGenerator(SequentialIDs("id")),
	}
	a := app.New(database.NewMemoryStore(), append(defaults, opts...)...)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// SetupTestDB opens a SQLite-backed store in a temporary directory
func SetupTestDB(t *testing.T) database.Store {
	t.Helper()

	store, err := database.OpenSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "lanes.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// SeedBoard stores the default board plus one task per title in the todo
// column and returns the saved board
func SeedBoard(t *testing.T, a *app.App, titles ...string) *models.Board {
	t.Helper()

	board, err := a.Mutate(context.Background(), func(state *models.Board) (*models.Board, error) {
		next := state
		for _, title := range titles {
			var err error
			next, _, err = a.TaskService.CreateTask(next, taskservice.CreateTaskRequest{
				ColumnID: models.DefaultTodoColumnID,
				Title:    title,
			})
			if err != nil {
				return nil, err
			}
		}
		return next, nil
	})
	if err != nil {
		t.Fatalf("Failed to seed board: %v", err)
	}
	return board
}
