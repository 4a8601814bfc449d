package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/styles"
	"github.com/thenoetrevino/lanes/internal/converters"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns in board order",
		Long: `List all columns from left to right.

Examples:
  # Human-readable list
  lanes column list

  # JSON output for agents
  lanes column list --json

  # Quiet mode (one ID per line)
  lanes column list --quiet
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)

	cliInstance, cleanup, err := cli.Start(cmd, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	board, err := cliInstance.App.Board(cmd.Context())
	if err != nil {
		return formatter.Fail(err, "Run 'lanes board reset' to start from the default board")
	}
	columns := board.ColumnList()

	if formatter.Quiet {
		for _, col := range columns {
			formatter.Printf("%s\n", col.ID)
		}
		return nil
	}

	if formatter.JSON {
		docs := make([]converters.ColumnDocument, len(columns))
		for i, col := range columns {
			docs[i] = columnJSON(col)
		}
		return formatter.JSONSuccess("columns", docs)
	}

	if len(columns) == 0 {
		formatter.Printf("No columns found\n")
		return nil
	}

	formatter.Printf("Columns (%d):\n", len(columns))
	for i, col := range columns {
		formatter.Printf("  %d. %s %s\n", i+1, styles.RenderColumnHeader(col),
			styles.SubtitleStyle.Render("["+string(col.ID)+"]"))
	}
	return nil
}
