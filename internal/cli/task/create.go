package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task at the bottom of a column",
		Long: `Create a new task. It is appended to the end of the column.

Examples:
  # Simple task in the first column
  lanes task create --title="Fix login bug"

  # Pick a column by id or title
  lanes task create --title="Write release notes" --column="In Progress"

  # Description from stdin
  cat notes.md | lanes task create --title="Design review" --description=-

  # Quiet mode for bash capture
  TASK_ID=$(lanes task create --title="Deploy" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	cli.MarkRequired(cmd, "title")

	// Optional flags
	cmd.Flags().String("column", "", "Column ID or title (defaults to the first column)")
	cmd.Flags().String("description", "", "Task description (use - to read from stdin)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	columnRef, _ := cmd.Flags().GetString("column")
	descFlag, _ := cmd.Flags().GetString("description")

	formatter := cli.FormatterFor(cmd)

	description, err := cli.ReadDescription(descFlag, cmd.InOrStdin())
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, cleanup, err := cli.Start(cmd, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	var task *models.Task
	board, err := cliInstance.App.Mutate(cmd.Context(), func(state *models.Board) (*models.Board, error) {
		if len(state.Columns) == 0 {
			return nil, models.ErrColumnNotFound
		}
		column := state.Columns[0]
		if columnRef != "" {
			var err error
			if column, err = cli.ResolveColumn(state, columnRef); err != nil {
				return nil, err
			}
		}

		next, created, err := cliInstance.App.TaskService.CreateTask(state, taskservice.CreateTaskRequest{
			ColumnID:    column.ID,
			Title:       title,
			Description: description,
		})
		task = created
		return next, err
	})
	if err != nil {
		return formatter.Fail(err, "Run 'lanes column list' to see available columns")
	}

	return outputTask(formatter, board, task, "created")
}
