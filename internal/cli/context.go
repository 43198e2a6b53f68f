package cli

import (
	"context"

	"github.com/thenoetrevino/applyboard/internal/app"
	"github.com/thenoetrevino/applyboard/internal/config"
)

type contextKey string

const appKey contextKey = "applyboard.app"

// WithApp returns a context carrying a prebuilt App. Commands run with it
// skip opening the real database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI over the App in ctx, or a fresh one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return &CLI{App: a, Config: config.Default()}, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}
