package project

import (
	"context"
	"fmt"

	"github.com/devtrack/devtrack/internal/cli"
	"github.com/devtrack/devtrack/internal/models"
	"github.com/spf13/cobra"
)

// StatusCmd returns the project status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <name> <status>",
		Short: "Set a project's status",
		Long: `Override the status of a project. The next task change derives the
status again from task progress.

Accepted values: not-started, in-progress, paused, completed (or 0-3).

Examples:
  devtrack project status "Backend API" paused
`,
		Args: cobra.ExactArgs(2),
		RunE: runStatus,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	name := args[0]

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter) error {
		status, err := models.ParseStatus(args[1])
		if err != nil {
			return err
		}

		svc := c.App.ProjectService
		if err := svc.SetProjectStatus(ctx, name, status); err != nil {
			return err
		}

		project, err := svc.GetProjectByName(ctx, name)
		if err != nil {
			return err
		}
		return out.Success(fmt.Sprintf("Project '%s' is now %s", name, status), cli.NewProjectView(project))
	})
}
