package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
	"github.com/thenoetrevino/lanes/internal/types"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Move a task to another column or position",
		Long: `Move a task. With --before the task is placed immediately above that
task (in whichever column it lives); otherwise it goes to the bottom of --to.

Examples:
  # Bottom of the "In Progress" column
  lanes task move 3f2a --to="In Progress"

  # Directly above another task
  lanes task move 3f2a --before=9c1d

  # Reorder within the same column
  lanes task move 3f2a --to=todo --before=7b7b --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runMove,
	}

	addIDFlag(cmd)
	cmd.Flags().String("to", "", "Target column ID or title")
	cmd.Flags().String("before", "", "Task to insert above (ID or prefix)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ref := taskRef(cmd, args)
	to, _ := cmd.Flags().GetString("to")
	before, _ := cmd.Flags().GetString("before")

	formatter := cli.FormatterFor(cmd)
	if err := requireRef(formatter, ref, "lanes task move <id> --to=<column>"); err != nil {
		return err
	}
	if to == "" && before == "" {
		return formatter.FailWith(cli.ExitUsage, "NO_DESTINATION",
			models.NewValidationError("one of --to or --before must be specified"), "")
	}

	cliInstance, cleanup, err := cli.Start(cmd, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	var moved *models.Task
	board, err := cliInstance.App.Mutate(cmd.Context(), func(state *models.Board) (*models.Board, error) {
		task, err := cli.ResolveTask(state, ref)
		if err != nil {
			return nil, err
		}
		moved = task

		req := taskservice.MoveTaskRequest{TaskID: task.ID}
		if to != "" {
			column, err := cli.ResolveColumn(state, to)
			if err != nil {
				return nil, err
			}
			req.TargetColumnID = column.ID
		}
		if before != "" {
			anchor, err := cli.ResolveTask(state, before)
			if err != nil {
				return nil, err
			}
			req.AnchorID = string(anchor.ID)
			if to == "" {
				loc, err := state.Locate(anchor.ID)
				if err != nil {
					return nil, err
				}
				req.TargetColumnID = loc.ColumnID
			}
		}

		return cliInstance.App.TaskService.MoveTask(state, req)
	})
	if err != nil {
		return formatter.Fail(err, "")
	}

	loc, err := board.Locate(moved.ID)
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		return formatter.Success(moved)
	}
	if formatter.JSON {
		return formatter.JSONSuccess("task", map[string]any{
			"id":       moved.ID,
			"columnId": loc.ColumnID,
			"index":    loc.Index,
		})
	}

	column, _ := board.Column(loc.ColumnID)
	formatter.Printf("✓ Task '%s' moved to '%s' (position %d)\n", moved.Title, columnTitle(column, loc.ColumnID), loc.Index+1)
	return nil
}

func columnTitle(c *models.Column, id types.ColumnID) string {
	if c == nil {
		return string(id)
	}
	return c.Title
}
