package task

import (
	"context"
	"fmt"

	"github.com/devtrack/devtrack/internal/cli"
	"github.com/spf13/cobra"
)

// RemoveCmd returns the task remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <project> <task>",
		Aliases: []string{"rm"},
		Short:   "Remove a task from a project",
		Args:    cobra.ExactArgs(2),
		RunE:    runRemove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	projectName, taskName := args[0], args[1]

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter) error {
		if err := c.App.ProjectService.RemoveTaskFromProject(ctx, projectName, taskName); err != nil {
			return err
		}
		return out.Success(
			fmt.Sprintf("Task '%s' removed from '%s'", taskName, projectName),
			map[string]any{"project": projectName, "task": taskName},
		)
	})
}
