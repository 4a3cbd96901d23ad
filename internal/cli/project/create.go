package project

import (
	"context"
	"fmt"
	"log"

	"github.com/devtrack/devtrack/internal/cli"
	"github.com/spf13/cobra"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new, empty project.

Examples:
  # Simple project (human-readable output)
  devtrack project create --name="Backend API"

  # JSON output for scripts
  devtrack project create --name="Backend API" --json

  # With description
  devtrack project create \
    --name="Backend API" \
    --description="REST API for mobile app"
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Project name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Project description")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter) error {
		svc := c.App.ProjectService
		if !svc.CreateProject(ctx, name, description) {
			return svc.LastError()
		}

		if out.Quiet {
			_, err := fmt.Fprintln(out.Out, name)
			return err
		}

		project, err := svc.GetProjectByName(ctx, name)
		if err != nil {
			return err
		}
		return out.Success(fmt.Sprintf("Project '%s' created successfully", name), cli.NewProjectView(project))
	})
}
