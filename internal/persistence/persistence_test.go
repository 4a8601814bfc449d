package persistence

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/services/column"
	"github.com/thenoetrevino/lanes/internal/services/task"
	"github.com/thenoetrevino/lanes/internal/types"
)

var epoch = time.Date(2025, 6, 1, 8, 30, 0, 123_000_000, time.UTC)

// populatedBoard builds a board through the engine so it is valid by construction
func populatedBoard(t *testing.T) *models.Board {
	t.Helper()

	n := 0
	clock := func() time.Time {
		n++
		return epoch.Add(time.Duration(n) * time.Second)
	}
	tasks := task.NewService(task.WithClock(clock))
	columns := column.NewService(column.WithClock(clock))

	b := models.DefaultBoard(epoch)
	b, review, err := columns.AddColumn(b, column.AddColumnRequest{Title: "Review", Color: types.ColorOrange, Icon: "🔍"})
	require.NoError(t, err)

	b, t1, err := tasks.CreateTask(b, task.CreateTaskRequest{ColumnID: models.DefaultTodoColumnID, Title: "Draft", Description: "first pass"})
	require.NoError(t, err)
	b, t2, err := tasks.CreateTask(b, task.CreateTaskRequest{ColumnID: models.DefaultTodoColumnID, Title: "Polish"})
	require.NoError(t, err)
	b, _, err = tasks.CreateTask(b, task.CreateTaskRequest{ColumnID: review.ID, Title: "2025-01-01T00:00:00Z"})
	require.NoError(t, err)

	high := types.PriorityHigh
	assignee := "robin"
	three := 3
	b, err = tasks.UpdateTaskDetails(b, task.UpdateDetailsRequest{TaskID: t1.ID, Priority: &high, Assignee: &assignee, Comments: &three})
	require.NoError(t, err)
	b, err = tasks.ApplyGeneratedPrompt(b, t2.ID, "Act as an editor")
	require.NoError(t, err)
	b, err = tasks.MoveTask(b, task.MoveTaskRequest{TaskID: t2.ID, AnchorID: string(models.DefaultCompletedColumnID)})
	require.NoError(t, err)

	require.NoError(t, b.Validate())
	return b
}

// assertBoardsEqual compares two boards field by field with instant equality for times
func assertBoardsEqual(t *testing.T, want, got *models.Board) {
	t.Helper()

	require.Len(t, got.Columns, len(want.Columns))
	for i, c := range want.Columns {
		g := got.Columns[i]
		assert.Equal(t, c.ID, g.ID)
		assert.Equal(t, c.Title, g.Title)
		assert.Equal(t, c.Color, g.Color)
		assert.Equal(t, c.Icon, g.Icon)
		assert.Equal(t, c.TaskIDs, g.TaskIDs)
		assert.True(t, c.CreatedAt.Equal(g.CreatedAt), "column %s createdAt", c.ID)
	}

	require.Len(t, got.Tasks, len(want.Tasks))
	for id, w := range want.Tasks {
		g, ok := got.Tasks[id]
		require.True(t, ok, "missing task %s", id)
		assert.True(t, w.CreatedAt.Equal(g.CreatedAt), "task %s createdAt", id)
		assert.True(t, w.UpdatedAt.Equal(g.UpdatedAt), "task %s updatedAt", id)

		wc, gc := *w, *g
		wc.CreatedAt, wc.UpdatedAt = time.Time{}, time.Time{}
		gc.CreatedAt, gc.UpdatedAt = time.Time{}, time.Time{}
		assert.Equal(t, wc, gc)
	}
}

// ============================================================================
// Codec Tests
// ============================================================================

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	original := populatedBoard(t)
	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assertBoardsEqual(t, original, decoded)
}

func TestEncode_TimestampFormat(t *testing.T) {
	t.Parallel()

	data, err := Encode(models.DefaultBoard(epoch))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"createdAt":"2025-06-01T08:30:00.123Z"`)
	assert.Contains(t, string(data), `"taskIds":[]`)
}

func TestDecode_Failures(t *testing.T) {
	t.Parallel()

	const ts = `"2025-01-01T00:00:00.000Z"`
	tests := []struct {
		name   string
		doc    string
		reason string
	}{
		{"not json", `{"tasks":`, "invalid JSON"},
		{"trailing data", `{"tasks":{},"columns":[]} {}`, "unexpected data"},
		{"missing tasks", `{"columns":[]}`, "board.tasks"},
		{"missing columns", `{"tasks":{}}`, "board.columns"},
		{"dangling reference", `{"tasks":{},"columns":[{"id":"c","title":"C","taskIds":["ghost"],"color":"blue","createdAt":` + ts + `}]}`, "inconsistent"},
		{"orphan task", `{"tasks":{"a":{"id":"a","title":"A","createdAt":` + ts + `,"updatedAt":` + ts + `}},"columns":[{"id":"c","title":"C","taskIds":[],"color":"blue","createdAt":` + ts + `}]}`, "inconsistent"},
		{"orphan task without columns", `{"tasks":{"a":{"id":"a","title":"A","createdAt":` + ts + `,"updatedAt":` + ts + `}},"columns":[]}`, "inconsistent"},
		{"updated before created", `{"tasks":{"a":{"id":"a","title":"A","createdAt":"2025-02-01T00:00:00.000Z","updatedAt":` + ts + `}},"columns":[{"id":"c","title":"C","taskIds":["a"],"color":"blue","createdAt":` + ts + `}]}`, "inconsistent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := Decode([]byte(tt.doc))
			assert.Nil(t, board)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Contains(t, pe.Error(), tt.reason)
		})
	}
}

func TestDecode_InvariantErrorIsReachable(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"tasks":{},"columns":[{"id":"c","title":"C","taskIds":["ghost"],"createdAt":"2025-01-01T00:00:00Z"}]}`))
	assert.True(t, errors.Is(err, models.ErrInvariant))
}

// ============================================================================
// Adapter Tests
// ============================================================================

func TestAdapter_LoadEmpty(t *testing.T) {
	t.Parallel()

	adapter := NewAdapter(database.NewMemoryStore(), "")
	assert.Equal(t, DefaultKey, adapter.Key())

	board, ok, err := adapter.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, board)
}

func TestAdapter_SaveLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := database.NewMemoryStore()
	adapter := NewAdapter(store, "")
	original := populatedBoard(t)

	require.NoError(t, adapter.Save(ctx, original))

	raw, ok, err := store.Get(ctx, DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(raw, `{"tasks":`))

	loaded, ok, err := adapter.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assertBoardsEqual(t, original, loaded)

	require.NoError(t, adapter.Clear(ctx))
	_, ok, err = adapter.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdapter_LoadCorrupt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := database.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "custom", "not json"))

	_, ok, err := NewAdapter(store, "custom").Load(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrParse)
}

func TestAdapter_RandomBoardsRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))

	tasks := task.NewService()
	columns := column.NewService()
	adapter := NewAdapter(database.NewMemoryStore(), "")

	b := models.DefaultBoard(epoch)
	for range 50 {
		col := b.Columns[rng.Intn(len(b.Columns))]
		switch rng.Intn(4) {
		case 0:
			next, _, err := columns.AddColumn(b, column.AddColumnRequest{Title: "Lane", Color: types.ColumnColors[rng.Intn(len(types.ColumnColors))]})
			require.NoError(t, err)
			b = next
		default:
			next, _, err := tasks.CreateTask(b, task.CreateTaskRequest{ColumnID: col.ID, Title: "Task"})
			require.NoError(t, err)
			b = next
		}

		require.NoError(t, adapter.Save(ctx, b))
		loaded, ok, err := adapter.Load(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assertBoardsEqual(t, b, loaded)
	}
}

// ============================================================================
// Export / Import Tests
// ============================================================================

func TestExportFileName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "kanban-board-2025-06-01.json", ExportFileName(epoch))
}

func TestExportImport_RoundTrip(t *testing.T) {
	t.Parallel()

	original := populatedBoard(t)
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, original))
	assert.Contains(t, buf.String(), "\n  \"tasks\"")

	imported, err := Import(&buf)
	require.NoError(t, err)
	assertBoardsEqual(t, original, imported)
}

func TestImport_MissingKeyNamesKey(t *testing.T) {
	t.Parallel()

	_, err := Import(strings.NewReader(`{"tasks":{}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "columns")

	_, err = Import(strings.NewReader(`{"columns":[]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tasks")
}
