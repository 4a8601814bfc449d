package task

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long: `Delete a task from the board.

Examples:
  # Asks for confirmation
  lanes task delete 3f2a

  # Skip the confirmation prompt
  lanes task delete --id=3f2a --force
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDelete,
	}

	addIDFlag(cmd)
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ref := taskRef(cmd, args)
	force, _ := cmd.Flags().GetBool("force")

	formatter := cli.FormatterFor(cmd)
	if err := requireRef(formatter, ref, "lanes task delete <id>"); err != nil {
		return err
	}

	cliInstance, cleanup, err := cli.Start(cmd, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	board, err := cliInstance.App.Board(cmd.Context())
	if err != nil {
		return formatter.Fail(err, "")
	}
	task, err := cli.ResolveTask(board, ref)
	if err != nil {
		return formatter.Fail(err, "Run 'lanes task list' to see available tasks")
	}

	// Ask for confirmation unless forced or in quiet/json mode
	if !force && !formatter.Quiet && !formatter.JSON {
		formatter.Printf("Delete task '%s'? (y/N): ", task.Title)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	_, err = cliInstance.App.Mutate(cmd.Context(), func(state *models.Board) (*models.Board, error) {
		return cliInstance.App.TaskService.DeleteTask(state, task.ID)
	})
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess("deleted", map[string]any{"id": task.ID})
	}

	formatter.Printf("✓ Task '%s' deleted\n", task.Title)
	return nil
}
