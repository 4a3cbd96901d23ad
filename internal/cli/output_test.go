package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/devtrack/devtrack/internal/models"
	projectservice "github.com/devtrack/devtrack/internal/services/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func sampleProject(t *testing.T) *models.Project {
	t.Helper()
	p := models.NewProject("Website", "Company site")
	require.NoError(t, p.AddTask(models.Task{Name: "Design", Progress: 100}))
	require.NoError(t, p.AddTask(models.Task{
		Name:     "Launch",
		Deadline: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}))
	return p
}

func TestNewProjectView(t *testing.T) {
	view := NewProjectView(sampleProject(t))

	assert.Equal(t, "Website", view.Name)
	assert.Equal(t, "Company site", view.Description)
	assert.Equal(t, "In Progress", view.Status)
	assert.InDelta(t, 50.0, view.OverallProgress, 0.001)
	require.Len(t, view.Tasks, 2)
	assert.Nil(t, view.Tasks[0].Deadline)
	require.NotNil(t, view.Tasks[1].Deadline)
	assert.Equal(t, 2026, view.Tasks[1].Deadline.Year())
}

func TestSuccess_Modes(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, false)
		require.NoError(t, f.Success("done", map[string]any{"name": "x"}))

		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, true, result["success"])
		assert.Equal(t, map[string]any{"name": "x"}, result["data"])
	})

	t.Run("Quiet prints nothing", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, true)
		require.NoError(t, f.Success("done", nil))
		assert.Empty(t, out.String())
	})

	t.Run("Human", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, false)
		require.NoError(t, f.Success("done", nil))
		assert.Equal(t, "✓ done\n", out.String())
	})
}

func TestProjects_Modes(t *testing.T) {
	projects := []*models.Project{sampleProject(t), models.NewProject("Empty", "")}

	t.Run("Quiet prints names", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, true)
		require.NoError(t, f.Projects(projects))
		assert.Equal(t, "Website\nEmpty\n", out.String())
	})

	t.Run("JSON keeps order", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, false)
		require.NoError(t, f.Projects(projects))

		var result struct {
			Projects []ProjectView `json:"projects"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Len(t, result.Projects, 2)
		assert.Equal(t, "Website", result.Projects[0].Name)
		assert.Equal(t, "Empty", result.Projects[1].Name)
		assert.Empty(t, result.Projects[1].Tasks)
	})

	t.Run("Human with no projects", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, false)
		require.NoError(t, f.Projects(nil))
		assert.Contains(t, out.String(), "No projects found")
	})
}

func TestProject_Human(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)
	require.NoError(t, f.Project(sampleProject(t)))

	text := out.String()
	assert.Contains(t, text, "Website")
	assert.Contains(t, text, "Design")
	assert.Contains(t, text, "due 2026-05-01")
}

func TestFail(t *testing.T) {
	t.Run("JSON error carries code", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, false)
		err := f.Fail(fmt.Errorf("load: %w", projectservice.ErrProjectNotFound))

		assert.Equal(t, ExitNotFound, ExitCode(err))
		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, false, result["success"])
		assert.Equal(t, "NOT_FOUND", result["error"].(map[string]any)["code"])
	})

	t.Run("Human error goes to stderr", func(t *testing.T) {
		f, out, errOut := newTestFormatter(false, false)
		_ = f.Fail(errors.New("disk on fire"))

		assert.Empty(t, out.String())
		assert.True(t, strings.Contains(errOut.String(), "disk on fire"))
	})
}
