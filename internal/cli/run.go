package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// RunFunc is the body of a command once the application is open
type RunFunc func(ctx context.Context, c *CLI, out *OutputFormatter) error

// Run opens the CLI for cmd and calls fn. A failure is printed through the
// formatter and returned carrying its exit code.
func Run(cmd *cobra.Command, fn RunFunc) error {
	out := NewFormatter(cmd)

	c, err := GetCLIFromCommand(cmd)
	if err != nil {
		return out.Fail(err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			_, _ = fmt.Fprintf(out.Err, "Error closing CLI: %v\n", err)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := fn(ctx, c, out); err != nil {
		return out.Fail(err)
	}
	return nil
}

// Fail prints err and returns it wrapped with its exit code
func (f *OutputFormatter) Fail(err error) error {
	err = WithExitCode(err)
	if fmtErr := f.Error(errorCode(err), err.Error()); fmtErr != nil {
		_, _ = fmt.Fprintf(f.Err, "Error formatting error message: %v\n", fmtErr)
	}
	return err
}

// AddOutputFlags registers the --json and --quiet flags read by NewFormatter
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (names only)")
}
