package board

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/persistence"
)

// ImportCmd returns the board import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the board with an exported JSON file",
		Long: `Replace the current board with a previously exported one.
The file is fully validated first; an invalid file leaves the board untouched.

Examples:
  lanes board import --file=kanban-board-2025-01-06.json

  # Check a file without importing it
  lanes board import --file=backup.json --dry-run

  # Read from stdin
  cat backup.json | lanes board import --file=-
`,
		RunE: runImport,
	}

	cmd.Flags().StringP("file", "f", "", "File to import (- for stdin) (required)")
	cli.MarkRequired(cmd, "file")
	cmd.Flags().Bool("dry-run", false, "Validate the file without importing it")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	formatter := cli.FormatterFor(cmd)

	board, err := readBoard(cmd, file)
	if err != nil {
		return formatter.Fail(err, "Only files written by 'lanes board export' can be imported")
	}

	if !dryRun {
		cliInstance, cleanup, err := cli.Start(cmd, formatter)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := cliInstance.App.Replace(cmd.Context(), board); err != nil {
			return formatter.Fail(err, "")
		}
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess("import", map[string]any{
			"columns":  len(board.Columns),
			"tasks":    board.TaskCount(),
			"imported": !dryRun,
		})
	}

	verb := "Imported"
	if dryRun {
		verb = "Validated"
	}
	formatter.Printf("✓ %s %d column(s) and %d task(s)\n", verb, len(board.Columns), board.TaskCount())
	return nil
}

func readBoard(cmd *cobra.Command, file string) (*models.Board, error) {
	var r io.Reader = cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return persistence.Import(r)
}
