package board

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/styles"
	"github.com/thenoetrevino/lanes/internal/converters"
	"github.com/thenoetrevino/lanes/internal/models"
)

const laneWidth = 28

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the board with its columns side by side",
		Long: `Render every column and its tasks.

Examples:
  lanes board show

  # The full board document, as stored
  lanes board show --json
`,
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)

	cliInstance, cleanup, err := cli.Start(cmd, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	board, err := cliInstance.App.Board(cmd.Context())
	if err != nil {
		return formatter.Fail(err, "Run 'lanes board reset' to start over")
	}

	if formatter.Quiet {
		formatter.Printf("%d columns, %d tasks\n", len(board.Columns), board.TaskCount())
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess("board", converters.BoardToDocument(board))
	}

	formatter.Printf("%s\n", renderBoard(board))
	return nil
}

func renderBoard(board *models.Board) string {
	if len(board.Columns) == 0 {
		return "No columns"
	}

	lane := lipgloss.NewStyle().
		Width(laneWidth).
		MarginRight(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Scheme().Border)).
		Padding(0, 1)

	lanes := make([]string, 0, len(board.Columns))
	for _, col := range board.Columns {
		var body strings.Builder
		body.WriteString(styles.RenderColumnHeader(col))
		body.WriteString("\n")

		tasks, _ := board.TasksIn(col.ID)
		if len(tasks) == 0 {
			body.WriteString(styles.SubtitleStyle.Render("(empty)"))
		}
		for i, t := range tasks {
			if i > 0 {
				body.WriteString("\n")
			}
			body.WriteString(styles.RenderTaskLine(t))
		}
		lanes = append(lanes, lane.Render(body.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, lanes...)
}
