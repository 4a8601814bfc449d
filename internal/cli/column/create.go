package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/styles"
	"github.com/thenoetrevino/lanes/internal/models"
	columnservice "github.com/thenoetrevino/lanes/internal/services/column"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a column to the right end of the board",
		Long: `Add a new, empty column to the right end of the board.

Examples:
  # Create column (human-readable output)
  lanes column create --title="Review"

  # Pick a lane color and icon
  lanes column create --title="Blocked" --color=red --icon="⛔"

  # Quiet mode for bash capture
  COLUMN_ID=$(lanes column create --title="Review" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Column title (required)")
	cli.MarkRequired(cmd, "title")

	// Optional flags
	cmd.Flags().String("color", "gray", "Lane color: gray, blue, purple, green, yellow, red, pink, orange")
	cmd.Flags().String("icon", "", "Optional icon shown before the title")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	colorFlag, _ := cmd.Flags().GetString("color")
	icon, _ := cmd.Flags().GetString("icon")

	formatter := cli.FormatterFor(cmd)

	color, err := cli.ParseColor(colorFlag)
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, cleanup, err := cli.Start(cmd, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	var column *models.Column
	_, err = cliInstance.App.Mutate(cmd.Context(), func(state *models.Board) (*models.Board, error) {
		next, col, err := cliInstance.App.ColumnService.AddColumn(state, columnservice.AddColumnRequest{
			Title: title,
			Color: color,
			Icon:  icon,
		})
		column = col
		return next, err
	})
	if err != nil {
		return formatter.Fail(err, "")
	}

	return outputColumn(formatter, column, "created")
}

func outputColumn(formatter *cli.OutputFormatter, column *models.Column, verb string) error {
	if formatter.Quiet {
		return formatter.Success(column)
	}
	if formatter.JSON {
		return formatter.JSONSuccess("column", columnJSON(column))
	}

	formatter.Printf("%s Column '%s' %s successfully (ID: %s)\n",
		styles.SuccessStyle.Render("✓"), column.Title, verb, column.ID)
	return nil
}
