package cli

import (
	"testing"

	"github.com/thenoetrevino/lanes/internal/testutil"
)

// ParseJSON wraps testutil.ParseJSON for CLI tests
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	return testutil.ParseJSON(t, output)
}
