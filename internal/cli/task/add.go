package task

import (
	"context"
	"fmt"
	"log"

	"github.com/devtrack/devtrack/internal/cli"
	"github.com/devtrack/devtrack/internal/models"
	"github.com/spf13/cobra"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <project>",
		Short: "Add a task to a project",
		Long: `Add a task to a project. Task names are unique within a project,
ignoring case. Progress is clamped to 0-100.

Examples:
  devtrack task add "Backend API" --name="Auth endpoints"

  devtrack task add "Backend API" \
    --name="Rate limiting" \
    --description="Token bucket per client" \
    --deadline=2026-12-01 \
    --progress=25
`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("name", "", "Task name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("deadline", "", "Deadline as YYYY-MM-DD or RFC 3339")
	cmd.Flags().String("progress", "0", "Initial progress (0-100)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	projectName := args[0]
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	rawDeadline, _ := cmd.Flags().GetString("deadline")
	rawProgress, _ := cmd.Flags().GetString("progress")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter) error {
		deadline, err := parseDeadline(rawDeadline)
		if err != nil {
			return err
		}
		progress, err := parseProgress(rawProgress)
		if err != nil {
			return err
		}

		task := models.Task{
			Name:        name,
			Description: description,
			Deadline:    deadline,
			Progress:    progress,
		}
		if err := c.App.ProjectService.AddTaskToProject(ctx, projectName, task); err != nil {
			return err
		}

		if out.Quiet {
			_, err := fmt.Fprintln(out.Out, name)
			return err
		}
		return showTask(ctx, c, out, projectName, name, fmt.Sprintf("Task '%s' added to '%s'", name, projectName))
	})
}

// showTask reports success with the stored state of one task
func showTask(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, projectName, taskName, message string) error {
	project, err := c.App.ProjectService.GetProjectByName(ctx, projectName)
	if err != nil {
		return err
	}

	view := cli.NewProjectView(project)
	data := map[string]any{"project": view.Name, "project_status": view.Status}
	for _, t := range view.Tasks {
		if models.SameName(t.Name, taskName) {
			data["task"] = t
		}
	}
	return out.Success(message, data)
}
