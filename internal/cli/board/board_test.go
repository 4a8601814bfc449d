package board

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/persistence"
	"github.com/thenoetrevino/lanes/internal/testutil"
	clitest "github.com/thenoetrevino/lanes/internal/testutil/cli"
)

func TestBoardCmd_Subcommands(t *testing.T) {
	t.Parallel()

	names := make([]string, 0)
	for _, sub := range BoardCmd().Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"show", "export", "import", "reset"}, names)
}

func TestShowBoard_Integration(t *testing.T) {
	t.Parallel()

	a := clitest.SetupCLITest(t)
	testutil.SeedBoard(t, a, "Write docs", "Ship it")

	output, err := clitest.ExecuteCLICommand(t, a, ShowCmd(), []string{"--json"})
	require.NoError(t, err)
	board := clitest.ParseJSON(t, output)["board"].(map[string]any)
	assert.Len(t, board["tasks"].(map[string]any), 2)
	assert.Len(t, board["columns"].([]any), 3)

	output, err = clitest.ExecuteCLICommand(t, a, ShowCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "3 columns, 2 tasks\n", output)

	output, err = clitest.ExecuteCLICommand(t, a, ShowCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "Write docs")
	assert.Contains(t, output, "(empty)")
}

func TestExportImport_RoundTrip(t *testing.T) {
	t.Parallel()

	source := clitest.SetupCLITest(t)
	saved := testutil.SeedBoard(t, source, "a", "b")

	path := filepath.Join(t.TempDir(), "backup.json")
	output, err := clitest.ExecuteCLICommand(t, source, ExportCmd(), []string{"--output", path, "--json"})
	require.NoError(t, err)
	result := clitest.ParseJSON(t, output)["export"].(map[string]any)
	assert.Equal(t, float64(2), result["tasks"])

	target := clitest.SetupCLITest(t)
	_, err = clitest.ExecuteCLICommand(t, target, ImportCmd(), []string{"--file", path})
	require.NoError(t, err)

	imported, err := target.Board(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved.Tasks["id-1"].Title, imported.Tasks["id-1"].Title)
	assert.Equal(t, saved.Columns[0].TaskIDs, imported.Columns[0].TaskIDs)
	assert.True(t, saved.Tasks["id-2"].CreatedAt.Equal(imported.Tasks["id-2"].CreatedAt))
}

func TestExport_Stdout(t *testing.T) {
	t.Parallel()

	a := clitest.SetupCLITest(t)
	testutil.SeedBoard(t, a, "a")

	output, err := clitest.ExecuteCLICommand(t, a, ExportCmd(), []string{"--output", "-"})
	require.NoError(t, err)

	board, err := persistence.Import(bytes.NewBufferString(output))
	require.NoError(t, err)
	assert.Len(t, board.Tasks, 1)
}

func TestExport_DefaultFileName(t *testing.T) {
	a := clitest.SetupCLITest(t)
	t.Chdir(t.TempDir())

	output, err := clitest.ExecuteCLICommand(t, a, ExportCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "kanban-board-2025-01-06.json\n", output)

	_, err = os.Stat("kanban-board-2025-01-06.json")
	assert.NoError(t, err)
}

func TestWriteExport_RemovesPartialFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "board.json")
	failing := func(w io.Writer, _ *models.Board) error {
		_, _ = w.Write([]byte(`{"tasks":`))
		return errors.New("disk full")
	}

	err := writeExport(path, models.DefaultBoard(time.Now()), failing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteExport_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "board.json")
	err := writeExport(path, models.DefaultBoard(time.Now()), persistence.Export)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create export file")
}

func TestImport_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
	}{
		{"not json", "{"},
		{"missing columns", `{"tasks":{}}`},
		{"missing tasks", `{"columns":[]}`},
		{"dangling task reference", `{"tasks":{},"columns":[{"id":"c","title":"C","taskIds":["ghost"],"color":"gray","createdAt":"2025-01-06T09:00:00.000Z"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := clitest.SetupCLITest(t)
			before := testutil.SeedBoard(t, a, "keep me")

			_, err := clitest.ExecuteCLICommandWithInput(t, context.Background(), a, ImportCmd(),
				[]string{"--file", "-", "--json"}, tt.document)
			assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))

			after, err := a.Board(context.Background())
			require.NoError(t, err)
			assert.Equal(t, before.Tasks["id-1"].Title, after.Tasks["id-1"].Title)
		})
	}
}

func TestImport_DryRun(t *testing.T) {
	t.Parallel()

	a := clitest.SetupCLITest(t)
	testutil.SeedBoard(t, a, "keep me")

	doc := `{"tasks":{},"columns":[{"id":"c","title":"Only","taskIds":[],"color":"blue","createdAt":"2025-01-06T09:00:00.000Z"}]}`
	res, err := clitest.ExecuteCLICommandWithInput(t, context.Background(), a, ImportCmd(),
		[]string{"--file", "-", "--dry-run"}, doc)
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Validated 1 column(s)")

	board, err := a.Board(context.Background())
	require.NoError(t, err)
	assert.Len(t, board.Tasks, 1)
}

func TestResetBoard_Integration(t *testing.T) {
	t.Parallel()

	a := clitest.SetupCLITest(t)
	testutil.SeedBoard(t, a, "a", "b")

	res, err := clitest.ExecuteCLICommandWithInput(t, context.Background(), a, ResetCmd(), []string{}, "\n")
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Cancelled")

	_, err = clitest.ExecuteCLICommand(t, a, ResetCmd(), []string{"--force"})
	require.NoError(t, err)

	board, err := a.Board(context.Background())
	require.NoError(t, err)
	assert.Empty(t, board.Tasks)
	require.Len(t, board.Columns, 3)
	assert.Equal(t, models.DefaultTodoColumnID, board.Columns[0].ID)
}

func TestImport_PersistsInSQLite(t *testing.T) {
	t.Parallel()

	store := testutil.SetupTestDB(t)
	a := app.New(store, app.WithClock(func() time.Time { return testutil.FixedTime }))

	doc := `{"tasks":{"t1":{"id":"t1","title":"From backup","description":"","createdAt":"2025-01-06T09:00:00.000Z","updatedAt":"2025-01-06T09:00:00.000Z"}},` +
		`"columns":[{"id":"c","title":"Only","taskIds":["t1"],"color":"blue","createdAt":"2025-01-06T09:00:00.000Z"}]}`
	_, err := clitest.ExecuteCLICommandWithInput(t, context.Background(), a, ImportCmd(), []string{"--file", "-"}, doc)
	require.NoError(t, err)

	// A second app over the same store sees the imported board
	reopened := app.New(store)
	board, err := reopened.Board(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Columns, 1)
	assert.Equal(t, "From backup", board.Tasks["t1"].Title)
}
