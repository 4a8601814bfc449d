package column

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

var baseTime = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

func newTestService() Service {
	n := 0
	return NewService(
		WithClock(func() time.Time { return baseTime }),
		WithIDGenerator(func() string {
			n++
			return "col-" + string(rune('0'+n))
		}),
	)
}

// boardWithTasks builds columns A:[t1,t2] and B:[t3]
func boardWithTasks(t *testing.T) *models.Board {
	t.Helper()

	b := models.NewBoard()
	for _, id := range []types.TaskID{"t1", "t2", "t3"} {
		b.Tasks[id] = &models.Task{ID: id, Title: string(id), CreatedAt: baseTime, UpdatedAt: baseTime}
	}
	b.Columns = []*models.Column{
		{ID: "A", Title: "A", TaskIDs: []types.TaskID{"t1", "t2"}, Color: types.ColorBlue, CreatedAt: baseTime},
		{ID: "B", Title: "B", TaskIDs: []types.TaskID{"t3"}, Color: types.ColorGreen, CreatedAt: baseTime},
	}
	require.NoError(t, b.Validate())
	return b
}

func TestAddColumn(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	state := boardWithTasks(t)

	next, col, err := svc.AddColumn(state, AddColumnRequest{Title: "Review", Color: types.ColorPink, Icon: "👀"})
	require.NoError(t, err)

	require.Len(t, next.Columns, 3)
	assert.Same(t, col, next.Columns[2])
	assert.Equal(t, types.ColumnID("col-1"), col.ID)
	assert.Equal(t, "Review", col.Title)
	assert.Equal(t, types.ColorPink, col.Color)
	assert.Equal(t, "👀", col.Icon)
	assert.Empty(t, col.TaskIDs)
	assert.NotNil(t, col.TaskIDs)
	assert.Equal(t, baseTime, col.CreatedAt)

	// Existing snapshot keeps two columns
	assert.Len(t, state.Columns, 2)
	require.NoError(t, next.Validate())
}

func TestAddColumn_DefaultColor(t *testing.T) {
	t.Parallel()

	next, col, err := newTestService().AddColumn(models.NewBoard(), AddColumnRequest{Title: "Backlog"})
	require.NoError(t, err)
	assert.Equal(t, types.ColorGray, col.Color)
	assert.Len(t, next.Columns, 1)
}

func TestAddColumn_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	state := boardWithTasks(t)

	_, _, err := svc.AddColumn(state, AddColumnRequest{Title: "  "})
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, _, err = svc.AddColumn(state, AddColumnRequest{Title: "X", Color: "teal"})
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestRenameColumn(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	state := boardWithTasks(t)

	next, err := svc.RenameColumn(state, "B", "Done")
	require.NoError(t, err)

	col, _ := next.Column("B")
	assert.Equal(t, "Done", col.Title)
	assert.Equal(t, []types.TaskID{"t3"}, col.TaskIDs)

	old, _ := state.Column("B")
	assert.Equal(t, "B", old.Title)

	_, err = svc.RenameColumn(state, "Z", "Done")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestDeleteColumn_CascadesTasks(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	state := boardWithTasks(t)

	next, err := svc.DeleteColumn(state, "A")
	require.NoError(t, err)

	require.Len(t, next.Columns, 1)
	assert.Equal(t, types.ColumnID("B"), next.Columns[0].ID)
	assert.Len(t, next.Tasks, 1)
	assert.Contains(t, next.Tasks, types.TaskID("t3"))
	assert.Equal(t, len(state.Tasks)-2, len(next.Tasks))
	require.NoError(t, next.Validate())

	// Input untouched
	assert.Len(t, state.Columns, 2)
	assert.Len(t, state.Tasks, 3)
}

func TestDeleteColumn_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	state := boardWithTasks(t)

	next, err := svc.DeleteColumn(state, "Z")
	assert.Nil(t, next)
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.DeleteColumn(state, "")
	assert.ErrorIs(t, err, ErrEmptyColumnID)
}
