package column

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a column and all of its tasks",
		Long: `Delete a column. Every task in the column is deleted with it.

Examples:
  # Asks for confirmation
  lanes column delete --id=completed

  # Skip the confirmation prompt
  lanes column delete --id=completed --force --json
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Column ID or title (required)")
	cli.MarkRequired(cmd, "id")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ref, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")

	formatter := cli.FormatterFor(cmd)

	cliInstance, cleanup, err := cli.Start(cmd, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	board, err := cliInstance.App.Board(cmd.Context())
	if err != nil {
		return formatter.Fail(err, "")
	}
	target, err := cli.ResolveColumn(board, ref)
	if err != nil {
		return formatter.Fail(err, "Run 'lanes column list' to see available columns")
	}

	// Ask for confirmation unless forced or in quiet/json mode
	if !force && !formatter.Quiet && !formatter.JSON {
		formatter.Printf("Delete column '%s' and its %d task(s)? (y/N): ", target.Title, len(target.TaskIDs))
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	removed := len(target.TaskIDs)
	_, err = cliInstance.App.Mutate(cmd.Context(), func(state *models.Board) (*models.Board, error) {
		return cliInstance.App.ColumnService.DeleteColumn(state, target.ID)
	})
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess("deleted", map[string]any{
			"id":           target.ID,
			"tasksRemoved": removed,
		})
	}

	formatter.Printf("✓ Column '%s' deleted (%d task(s) removed)\n", target.Title, removed)
	return nil
}
