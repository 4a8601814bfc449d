package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// FormatterFor builds an OutputFormatter from the command's output flags and
// writers
func FormatterFor(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// Start resolves the CLI for a command. The returned cleanup func closes it.
// Initialization failures are reported through the formatter.
func Start(cmd *cobra.Command, formatter *OutputFormatter) (*CLI, func(), error) {
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, formatter.FailWith(ExitError, "INITIALIZATION_ERROR", err, "")
	}
	cleanup := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}
	return cliInstance, cleanup, nil
}

// MarkRequired marks flags as required, logging the (programming) error if a
// flag does not exist
func MarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "flag", name, "error", err)
		}
	}
}
