package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli/board"
	"github.com/thenoetrevino/lanes/internal/cli/column"
	"github.com/thenoetrevino/lanes/internal/cli/task"
	"github.com/thenoetrevino/lanes/internal/logging"
)

// NewRootCmd builds the lanes command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lanes",
		Short: "Lanes - a kanban board for the terminal",
		Long: `Lanes keeps a kanban board of columns and tasks in a local store
(SQLite by default, Redis or memory via LANES_STORE) and can rewrite
cards with a language model.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := logging.Init(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
			}
		},
	}

	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(board.BoardCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
