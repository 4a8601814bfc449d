package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/app"
	lanescli "github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/testutil"
)

// Result holds what a command printed
type Result struct {
	Stdout string
	Stderr string
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the command context so commands never touch the
// user's configured store.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	res, err := ExecuteCLICommandWithInput(t, context.Background(), testApp, cmd, args, "")
	return res.Stdout, err
}

// ExecuteCLICommandWithInput executes a CLI command with stdin set to input
func ExecuteCLICommandWithInput(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string, input string) (Result, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	testutil.SetupCobraCommand(cmd, args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(bytes.NewBufferString(input))

	err := cmd.ExecuteContext(lanescli.WithApp(ctx, testApp))
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
