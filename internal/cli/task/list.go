package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/styles"
	"github.com/thenoetrevino/lanes/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by column",
		Long: `List tasks in board order, optionally limited to one column.

Examples:
  lanes task list
  lanes task list --column="In Progress" --json

  # One ID per line
  lanes task list --quiet
`,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Only list tasks in this column (ID or title)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	columnRef, _ := cmd.Flags().GetString("column")
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

	columns := board.ColumnList()
	if columnRef != "" {
		column, err := cli.ResolveColumn(board, columnRef)
		if err != nil {
			return formatter.Fail(err, "Run 'lanes column list' to see available columns")
		}
		columns = []*models.Column{column}
	}

	if formatter.Quiet {
		for _, col := range columns {
			for _, id := range col.TaskIDs {
				formatter.Printf("%s\n", id)
			}
		}
		return nil
	}

	if formatter.JSON {
		views := make([]taskView, 0)
		for _, col := range columns {
			tasks, err := board.TasksIn(col.ID)
			if err != nil {
				return formatter.Fail(err, "")
			}
			for _, t := range tasks {
				views = append(views, viewOf(board, t))
			}
		}
		return formatter.JSONSuccess("tasks", views)
	}

	for i, col := range columns {
		if i > 0 {
			formatter.Printf("\n")
		}
		formatter.Printf("%s\n", styles.RenderColumnHeader(col))
		tasks, err := board.TasksIn(col.ID)
		if err != nil {
			return formatter.Fail(err, "")
		}
		if len(tasks) == 0 {
			formatter.Printf("  %s\n", styles.SubtitleStyle.Render("(empty)"))
			continue
		}
		for _, t := range tasks {
			formatter.Printf("  %s\n", styles.RenderTaskLine(t))
		}
	}
	return nil
}
