package project

import (
	"context"
	"fmt"

	"github.com/devtrack/devtrack/internal/cli"
	"github.com/spf13/cobra"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a project and all of its tasks",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter) error {
		svc := c.App.ProjectService
		if !svc.DeleteProject(ctx, name) {
			return svc.LastError()
		}
		return out.Success(fmt.Sprintf("Project '%s' deleted", name), map[string]any{"name": name})
	})
}
