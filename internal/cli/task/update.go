package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Edit a task's title and description",
		Long: `Edit the title and/or description of a task.
Flags that are not given keep their current value.

Examples:
  lanes task update 3f2a --title="Fix login redirect"
  lanes task update --id=3f2a --description="Repro: log in twice"

  # Clear the description
  lanes task update 3f2a --description=""
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	addIDFlag(cmd)
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - to read from stdin)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ref := taskRef(cmd, args)
	formatter := cli.FormatterFor(cmd)
	if err := requireRef(formatter, ref, "lanes task update <id> --title=<title>"); err != nil {
		return err
	}

	titleSet := cmd.Flags().Changed("title")
	descSet := cmd.Flags().Changed("description")
	if !titleSet && !descSet {
		return formatter.FailWith(cli.ExitUsage, "NO_UPDATES",
			models.NewValidationError("at least one of --title or --description must be specified"), "")
	}

	title, _ := cmd.Flags().GetString("title")
	descFlag, _ := cmd.Flags().GetString("description")
	description, err := cli.ReadDescription(descFlag, cmd.InOrStdin())
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, cleanup, err := cli.Start(cmd, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	var updated *models.Task
	board, err := cliInstance.App.Mutate(cmd.Context(), func(state *models.Board) (*models.Board, error) {
		current, err := cli.ResolveTask(state, ref)
		if err != nil {
			return nil, err
		}

		req := taskservice.EditTaskRequest{
			TaskID:      current.ID,
			Title:       current.Title,
			Description: current.Description,
		}
		if titleSet {
			req.Title = title
		}
		if descSet {
			req.Description = description
		}

		next, err := cliInstance.App.TaskService.EditTask(state, req)
		if err != nil {
			return nil, err
		}
		updated, err = next.Task(current.ID)
		return next, err
	})
	if err != nil {
		return formatter.Fail(err, "Run 'lanes task list' to see available tasks")
	}

	return outputTask(formatter, board, updated, "updated")
}
