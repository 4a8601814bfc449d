package cli

import (
	"context"

	"github.com/thenoetrevino/lanes/internal/app"
)

// contextKey is the type for values the CLI stores in a command context
type contextKey string

// appKey carries a pre-built *app.App, used by tests and embedders
const appKey contextKey = "app"

// WithApp returns a context from which GetCLIFromContext takes app instead of
// opening the configured store
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI over the app stored in ctx, or a new CLI
// built from the user's configuration. Styles are only initialized for the
// latter.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}
