package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Change a column's title",
		Long: `Change the display title of a column. Its tasks are untouched.

Examples:
  lanes column rename --id=in-progress --title="Doing"

  # Columns can also be addressed by their current title
  lanes column rename --id="In Progress" --title="Doing" --json
`,
		RunE: runRename,
	}

	cmd.Flags().String("id", "", "Column ID or title (required)")
	cmd.Flags().String("title", "", "New column title (required)")
	cli.MarkRequired(cmd, "id", "title")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ref, _ := cmd.Flags().GetString("id")
	title, _ := cmd.Flags().GetString("title")

	formatter := cli.FormatterFor(cmd)

	cliInstance, cleanup, err := cli.Start(cmd, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	var column *models.Column
	_, err = cliInstance.App.Mutate(cmd.Context(), func(state *models.Board) (*models.Board, error) {
		target, err := cli.ResolveColumn(state, ref)
		if err != nil {
			return nil, err
		}
		next, err := cliInstance.App.ColumnService.RenameColumn(state, target.ID, title)
		if err != nil {
			return nil, err
		}
		column, err = next.Column(target.ID)
		return next, err
	})
	if err != nil {
		return formatter.Fail(err, "Run 'lanes column list' to see available columns")
	}

	return outputColumn(formatter, column, "renamed")
}
