package task

import (
	"context"
	"fmt"

	"github.com/devtrack/devtrack/internal/cli"
	"github.com/spf13/cobra"
)

// ProgressCmd returns the task progress subcommand
func ProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress <project> <task> <value>",
		Short: "Set the progress of a task",
		Long: `Set the progress of a task. Values outside 0-100 are clamped; 100 marks
the task completed.

Examples:
  devtrack task progress "Backend API" "Auth endpoints" 60
`,
		Args: cobra.ExactArgs(3),
		RunE: runProgress,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runProgress(cmd *cobra.Command, args []string) error {
	projectName, taskName := args[0], args[1]

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter) error {
		progress, err := parseProgress(args[2])
		if err != nil {
			return err
		}
		if err := c.App.ProjectService.UpdateTaskProgress(ctx, projectName, taskName, progress); err != nil {
			return err
		}
		return showTask(ctx, c, out, projectName, taskName, fmt.Sprintf("Task '%s' updated", taskName))
	})
}
