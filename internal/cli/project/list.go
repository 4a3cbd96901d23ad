package project

import (
	"context"

	"github.com/devtrack/devtrack/internal/cli"
	"github.com/spf13/cobra"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long: `List all projects in the order they were created.

Examples:
  devtrack project list
  devtrack project list --json
  devtrack project list --quiet   # names only
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter) error {
		projects, err := c.App.ProjectService.GetAllProjects(ctx)
		if err != nil {
			return err
		}
		return out.Projects(projects)
	})
}
