package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
	"github.com/thenoetrevino/lanes/internal/user"
)

// DetailsCmd returns the task details subcommand
func DetailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details [id]",
		Short: "Set a task's priority, assignee and counters",
		Long: `Update task metadata. Only the flags that are given are changed.

Examples:
  lanes task details 3f2a --priority=high --assignee=sam
  lanes task details 3f2a --comments=4 --attachments=1
  lanes task details 3f2a --assignee=@me

  # Clear the priority
  lanes task details 3f2a --priority=none
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDetails,
	}

	addIDFlag(cmd)
	cmd.Flags().String("priority", "", "Priority: none, low, medium, high")
	cmd.Flags().String("assignee", "", "Assignee name, @me for yourself (empty clears it)")
	cmd.Flags().Int("attachments", 0, "Attachment count")
	cmd.Flags().Int("comments", 0, "Comment count")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDetails(cmd *cobra.Command, args []string) error {
	ref := taskRef(cmd, args)
	formatter := cli.FormatterFor(cmd)
	if err := requireRef(formatter, ref, "lanes task details <id> --priority=<level>"); err != nil {
		return err
	}

	req := taskservice.UpdateDetailsRequest{}
	if cmd.Flags().Changed("priority") {
		value, _ := cmd.Flags().GetString("priority")
		priority, err := cli.ParsePriority(value)
		if err != nil {
			return formatter.Fail(err, "")
		}
		req.Priority = &priority
	}
	if cmd.Flags().Changed("assignee") {
		value, _ := cmd.Flags().GetString("assignee")
		value = user.ResolveAssignee(value)
		req.Assignee = &value
	}
	if cmd.Flags().Changed("attachments") {
		value, _ := cmd.Flags().GetInt("attachments")
		req.Attachments = &value
	}
	if cmd.Flags().Changed("comments") {
		value, _ := cmd.Flags().GetInt("comments")
		req.Comments = &value
	}
	if req.Priority == nil && req.Assignee == nil && req.Attachments == nil && req.Comments == nil {
		return formatter.FailWith(cli.ExitUsage, "NO_UPDATES",
			models.NewValidationError("at least one of --priority, --assignee, --attachments or --comments must be specified"), "")
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
		req.TaskID = current.ID

		next, err := cliInstance.App.TaskService.UpdateTaskDetails(state, req)
		if err != nil {
			return nil, err
		}
		updated, err = next.Task(current.ID)
		return next, err
	})
	if err != nil {
		return formatter.Fail(err, "")
	}

	return outputTask(formatter, board, updated, "updated")
}
