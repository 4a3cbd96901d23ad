package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/devtrack/devtrack/internal/cli/styles"
	"github.com/devtrack/devtrack/internal/models"
	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

// NewFormatter reads the --json and --quiet flags of cmd
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// ProjectView is the JSON shape of a project
type ProjectView struct {
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	OverallProgress float64    `json:"overall_progress"`
	Tasks           []TaskView `json:"tasks"`
}

// TaskView is the JSON shape of a task
type TaskView struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Progress    float64    `json:"progress"`
}

// NewProjectView converts a project for JSON output
func NewProjectView(p *models.Project) ProjectView {
	view := ProjectView{
		Name:            p.Name(),
		Description:     p.Description(),
		Status:          p.Status().String(),
		OverallProgress: p.OverallProgress(),
		Tasks:           make([]TaskView, 0, len(p.Tasks())),
	}
	for _, t := range p.Tasks() {
		tv := TaskView{
			Name:        t.Name,
			Description: t.Description,
			Status:      t.Status.String(),
			Progress:    t.Progress,
		}
		if !t.Deadline.IsZero() {
			deadline := t.Deadline.UTC()
			tv.Deadline = &deadline
		}
		view.Tasks = append(view.Tasks, tv)
	}
	return view
}

// Success outputs a successful operation result. message is used in
// human-readable mode, data in JSON mode, and quiet prints nothing.
func (f *OutputFormatter) Success(message string, data any) error {
	if f.Quiet {
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	_, err := fmt.Fprintf(f.Out, "✓ %s\n", message)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    code,
				"message": message,
			},
		})
	}

	_, err := fmt.Fprintf(f.Err, "%s %s\n", styles.ErrorStyle.Render("Error:"), message)
	return err
}

// Projects prints a project list
func (f *OutputFormatter) Projects(projects []*models.Project) error {
	if f.Quiet {
		for _, p := range projects {
			if _, err := fmt.Fprintln(f.Out, p.Name()); err != nil {
				return err
			}
		}
		return nil
	}

	if f.JSON {
		views := make([]ProjectView, 0, len(projects))
		for _, p := range projects {
			views = append(views, NewProjectView(p))
		}
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success":  true,
			"projects": views,
		})
	}

	if len(projects) == 0 {
		_, err := fmt.Fprintln(f.Out, styles.SubtitleStyle.Render("No projects found"))
		return err
	}

	for _, p := range projects {
		line := fmt.Sprintf("%s  %s  %s  (%d tasks)",
			styles.TitleStyle.Render(p.Name()),
			styles.RenderStatus(p.Status()),
			styles.RenderProgressBar(p.OverallProgress(), 20),
			len(p.Tasks()),
		)
		if _, err := fmt.Fprintln(f.Out, line); err != nil {
			return err
		}
	}
	return nil
}

// Project prints one project with its tasks
func (f *OutputFormatter) Project(p *models.Project) error {
	if f.Quiet {
		_, err := fmt.Fprintln(f.Out, p.Name())
		return err
	}

	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": true,
			"project": NewProjectView(p),
		})
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(p.Name()) + "\n")
	if p.Description() != "" {
		b.WriteString(styles.SubtitleStyle.Render(p.Description()) + "\n")
	}
	b.WriteString("\n" + styles.LabelStyle.Render("Status:") + " " + styles.RenderStatus(p.Status()) + "\n")
	b.WriteString(styles.RenderField("Progress", styles.RenderProgressBar(p.OverallProgress(), 30)) + "\n")

	tasks := p.Tasks()
	if len(tasks) == 0 {
		b.WriteString("\n" + styles.SubtitleStyle.Render("No tasks"))
	}
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("\n• %s  %s  %s",
			styles.ValueStyle.Render(t.Name),
			styles.RenderStatus(t.Status),
			styles.RenderProgressBar(t.Progress, 10),
		))
		if !t.Deadline.IsZero() {
			b.WriteString("  " + styles.SubtitleStyle.Render("due "+t.Deadline.Format(time.DateOnly)))
		}
	}

	_, err := fmt.Fprintln(f.Out, styles.CardStyle.Render(b.String()))
	return err
}
