// Package clitest runs cobra commands against a throwaway database
package clitest

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/devtrack/devtrack/internal/app"
	"github.com/devtrack/devtrack/internal/cli"
	"github.com/devtrack/devtrack/internal/testutil"
	"github.com/spf13/cobra"
)

// SetupCLITest opens an App over a fresh test store and returns a context
// that makes commands use it instead of the configured database.
func SetupCLITest(t *testing.T) (*app.App, context.Context) {
	t.Helper()
	a := app.New(testutil.SetupTestStore(t))
	return a, cli.WithApp(context.Background(), a)
}

// ExecuteCLICommand runs cmd against the App injected in ctx
func ExecuteCLICommand(t *testing.T, ctx context.Context, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd.SetContext(ctx)
	return ExecuteCommand(t, cmd, args...)
}

// ExecuteCommand runs a cobra command with args and returns what it wrote
// to stdout and stderr.
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	SetupCobraCommand(cmd, args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
