package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/styles"
	"github.com/thenoetrevino/lanes/internal/converters"
	"github.com/thenoetrevino/lanes/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DetailsCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(EnhanceCmd())
	cmd.AddCommand(PromptCmd())

	return cmd
}

// taskView is the JSON shape of a task in command output
type taskView struct {
	converters.TaskDocument
	ColumnID string `json:"columnId,omitempty"`
}

func viewOf(board *models.Board, t *models.Task) taskView {
	v := taskView{TaskDocument: converters.TaskToDocument(t)}
	if loc, err := board.Locate(t.ID); err == nil {
		v.ColumnID = string(loc.ColumnID)
	}
	return v
}

// addIDFlag registers --id; the id may also be given as the first argument
func addIDFlag(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "Task ID or unique ID prefix (can also be provided as positional argument)")
}

// taskRef returns the task reference from the positional arg or --id
func taskRef(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	ref, _ := cmd.Flags().GetString("id")
	return ref
}

// requireRef reports a usage error when no task reference was given
func requireRef(formatter *cli.OutputFormatter, ref, usage string) error {
	if ref != "" {
		return nil
	}
	return formatter.FailWith(cli.ExitUsage, "INVALID_TASK_ID",
		models.NewValidationError("task ID is required"), "Usage: "+usage)
}

func outputTask(formatter *cli.OutputFormatter, board *models.Board, t *models.Task, verb string) error {
	if formatter.Quiet {
		return formatter.Success(t)
	}
	if formatter.JSON {
		return formatter.JSONSuccess("task", viewOf(board, t))
	}

	formatter.Printf("%s Task '%s' %s successfully (ID: %s)\n",
		styles.SuccessStyle.Render("✓"), t.Title, verb, t.ID)
	return nil
}
