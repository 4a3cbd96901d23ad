// Package task holds all cli commands related to tasks
//
// e.g., devtrack task ...
package task

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/devtrack/devtrack/internal/cli"
	"github.com/spf13/cobra"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the tasks of a project",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ProgressCmd())
	cmd.AddCommand(RemoveCmd())

	return cmd
}

// parseDeadline accepts RFC 3339 timestamps and plain dates. An empty
// string means no deadline.
func parseDeadline(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, time.Local)
	if err != nil {
		return time.Time{}, cli.UsageError("invalid deadline %q: use YYYY-MM-DD or RFC 3339", raw)
	}
	return t, nil
}

func parseProgress(raw string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), "%"), 64)
	if err != nil || math.IsNaN(p) {
		return 0, cli.UsageError("invalid progress %q: must be a number between 0 and 100", raw)
	}
	return p, nil
}
