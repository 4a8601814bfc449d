package cli

import (
	"testing"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/testutil"
)

// SetupCLITest creates an app over an in-memory store for CLI tests.
// It lives in a separate package so service tests can import testutil without
// pulling in the CLI.
func SetupCLITest(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()
	return testutil.NewTestApp(t, opts...)
}
