package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/converters"
	"github.com/thenoetrevino/lanes/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func columnJSON(c *models.Column) converters.ColumnDocument {
	return converters.ColumnToDocument(c)
}
