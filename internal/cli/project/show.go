package project

import (
	"context"

	"github.com/devtrack/devtrack/internal/cli"
	"github.com/spf13/cobra"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a project with its tasks",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter) error {
		project, err := c.App.ProjectService.GetProjectByName(ctx, args[0])
		if err != nil {
			return err
		}
		return out.Project(project)
	})
}
