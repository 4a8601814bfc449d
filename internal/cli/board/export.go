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

// ExportCmd returns the board export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board to a JSON file",
		Long: `Export the whole board as indented JSON. Without --output the file is
named kanban-board-YYYY-MM-DD.json in the current directory.

Examples:
  lanes board export
  lanes board export --output=backup.json

  # Write to stdout
  lanes board export --output=- > board.json
`,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Output file (- for stdout)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
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

	if output == "-" {
		if err := persistence.Export(cmd.OutOrStdout(), board); err != nil {
			return formatter.Fail(err, "")
		}
		return nil
	}

	if output == "" {
		output = persistence.ExportFileName(cliInstance.App.Now())
	}

	if err := writeExport(output, board, persistence.Export); err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		formatter.Printf("%s\n", output)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess("export", map[string]any{
			"file":    output,
			"columns": len(board.Columns),
			"tasks":   board.TaskCount(),
		})
	}

	formatter.Printf("✓ Exported %d column(s) and %d task(s) to %s\n", len(board.Columns), board.TaskCount(), output)
	return nil
}

// writeExport writes board to path. A partially written file is removed.
func writeExport(path string, board *models.Board, write func(io.Writer, *models.Board) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := write(f, board); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to close export file: %w", err)
	}
	return nil
}
