package cli

import (
	"context"

	"github.com/devtrack/devtrack/internal/app"
	"github.com/spf13/cobra"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const appKey contextKey = "devtrack.app"

// WithApp stores an already opened App in ctx. Commands run with this
// context use it instead of opening the database themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromCommand returns the CLI for cmd: the App from the command's
// context when present, otherwise one built from the --config and --db flags.
func GetCLIFromCommand(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	return NewCLI(ctx, Options{
		ConfigPath: flagString(cmd, "config"),
		DBPath:     flagString(cmd, "db"),
	})
}

func flagString(cmd *cobra.Command, name string) string {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}
