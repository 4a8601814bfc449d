package board

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
)

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the board with the three default columns",
		Long: `Discard every task and column and start again from
"To Do", "In Progress" and "Completed".

Examples:
  lanes board reset
  lanes board reset --force
`,
		RunE: runReset,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.FormatterFor(cmd)

	// Ask for confirmation unless forced or in quiet/json mode
	if !force && !formatter.Quiet && !formatter.JSON {
		formatter.Printf("Delete every task and column? (y/N): ")
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	cliInstance, cleanup, err := cli.Start(cmd, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	board, err := cliInstance.App.Reset(cmd.Context())
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess("board", map[string]any{"columns": len(board.Columns), "tasks": 0})
	}

	formatter.Printf("✓ Board reset to %d default columns\n", len(board.Columns))
	return nil
}
