package task

import (
	"context"
	"testing"
	"time"

	"github.com/devtrack/devtrack/internal/cli"
	"github.com/devtrack/devtrack/internal/models"
	"github.com/devtrack/devtrack/internal/testutil"
	"github.com/devtrack/devtrack/internal/testutil/clitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTask(t *testing.T) {
	a, ctx := clitest.SetupCLITest(t)
	testutil.CreateTestProject(t, a.Store(), "Backend")

	t.Run("Add task with all fields", func(t *testing.T) {
		stdout, _, err := clitest.ExecuteCLICommand(t, ctx, AddCmd(), "Backend",
			"--name", "Auth",
			"--description", "Login endpoints",
			"--deadline", "2026-12-01",
			"--progress", "25",
			"--json",
		)
		require.NoError(t, err)

		result := clitest.ParseJSON(t, stdout)
		data := result["data"].(map[string]interface{})
		assert.Equal(t, "In Progress", data["project_status"])
		task := data["task"].(map[string]interface{})
		assert.Equal(t, "Auth", task["name"])
		assert.NotNil(t, task["deadline"])

		project, err := a.ProjectService.GetProjectByName(context.Background(), "Backend")
		require.NoError(t, err)
		stored, ok := project.Task("auth")
		require.True(t, ok)
		assert.Equal(t, "Login endpoints", stored.Description)
		assert.InDelta(t, 25.0, stored.Progress, 0.001)
		assert.Equal(t, 2026, stored.Deadline.Year())
		assert.Equal(t, time.December, stored.Deadline.Month())
	})

	t.Run("Progress above range is clamped", func(t *testing.T) {
		_, _, err := clitest.ExecuteCLICommand(t, ctx, AddCmd(), "Backend", "--name", "Overshoot", "--progress", "150", "--quiet")
		require.NoError(t, err)

		project, err := a.ProjectService.GetProjectByName(context.Background(), "Backend")
		require.NoError(t, err)
		stored, ok := project.Task("Overshoot")
		require.True(t, ok)
		assert.InDelta(t, 100.0, stored.Progress, 0.001)
	})

	t.Run("Duplicate task name ignoring case", func(t *testing.T) {
		_, _, err := clitest.ExecuteCLICommand(t, ctx, AddCmd(), "Backend", "--name", "AUTH")
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

		project, err := a.ProjectService.GetProjectByName(context.Background(), "Backend")
		require.NoError(t, err)
		assert.Len(t, project.Tasks(), 2)
	})

	t.Run("Unknown project", func(t *testing.T) {
		_, _, err := clitest.ExecuteCLICommand(t, ctx, AddCmd(), "Nowhere", "--name", "Auth")
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("Invalid deadline", func(t *testing.T) {
		_, _, err := clitest.ExecuteCLICommand(t, ctx, AddCmd(), "Backend", "--name", "Late", "--deadline", "next week")
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("Invalid progress", func(t *testing.T) {
		for _, raw := range []string{"lots", "NaN", "nan%"} {
			_, _, err := clitest.ExecuteCLICommand(t, ctx, AddCmd(), "Backend", "--name", "Vague", "--progress", raw)
			require.Error(t, err, raw)
			assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), raw)
		}
	})

	t.Run("Task added at 100 is completed", func(t *testing.T) {
		stdout, _, err := clitest.ExecuteCLICommand(t, ctx, AddCmd(), "Backend", "--name", "Shipped", "--progress", "100", "--json")
		require.NoError(t, err)

		task := clitest.ParseJSON(t, stdout)["data"].(map[string]interface{})["task"].(map[string]interface{})
		assert.Equal(t, "Completed", task["status"])
	})
}

func TestUpdateTaskProgress(t *testing.T) {
	a, ctx := clitest.SetupCLITest(t)
	testutil.CreateTestProject(t, a.Store(), "Website", 0, 0)

	t.Run("Completing every task completes the project", func(t *testing.T) {
		for _, name := range []string{testutil.TaskName(1), testutil.TaskName(2)} {
			_, _, err := clitest.ExecuteCLICommand(t, ctx, ProgressCmd(), "Website", name, "100", "--quiet")
			require.NoError(t, err)
		}

		project, err := a.ProjectService.GetProjectByName(context.Background(), "Website")
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, project.Status())
		for _, task := range project.Tasks() {
			assert.Equal(t, models.StatusCompleted, task.Status)
		}
	})

	t.Run("Partial progress moves the task back in progress", func(t *testing.T) {
		stdout, _, err := clitest.ExecuteCLICommand(t, ctx, ProgressCmd(), "Website", testutil.TaskName(1), "40%", "--json")
		require.NoError(t, err)

		data := clitest.ParseJSON(t, stdout)["data"].(map[string]interface{})
		assert.Equal(t, "In Progress", data["project_status"])
		task := data["task"].(map[string]interface{})
		assert.Equal(t, "In Progress", task["status"])
		assert.InDelta(t, 40.0, task["progress"], 0.001)
	})

	t.Run("NaN is rejected", func(t *testing.T) {
		_, _, err := clitest.ExecuteCLICommand(t, ctx, ProgressCmd(), "Website", testutil.TaskName(1), "NaN")
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("Unknown task", func(t *testing.T) {
		_, _, err := clitest.ExecuteCLICommand(t, ctx, ProgressCmd(), "Website", "ghost", "10")
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("Wrong number of arguments", func(t *testing.T) {
		_, _, err := clitest.ExecuteCLICommand(t, ctx, ProgressCmd(), "Website", testutil.TaskName(1))
		assert.Error(t, err)
	})
}

func TestRemoveTask(t *testing.T) {
	a, ctx := clitest.SetupCLITest(t)
	testutil.CreateTestProject(t, a.Store(), "Infra", 100, 0)

	_, _, err := clitest.ExecuteCLICommand(t, ctx, RemoveCmd(), "Infra", testutil.TaskName(2), "--quiet")
	require.NoError(t, err)

	project, err := a.ProjectService.GetProjectByName(context.Background(), "Infra")
	require.NoError(t, err)
	require.Len(t, project.Tasks(), 1)
	assert.Equal(t, testutil.TaskName(1), project.Tasks()[0].Name)
	assert.Equal(t, models.StatusCompleted, project.Status())

	t.Run("Missing task is ignored", func(t *testing.T) {
		_, _, err := clitest.ExecuteCLICommand(t, ctx, RemoveCmd(), "Infra", "ghost", "--quiet")
		assert.NoError(t, err)
	})

	t.Run("Unknown project", func(t *testing.T) {
		_, _, err := clitest.ExecuteCLICommand(t, ctx, RemoveCmd(), "Nowhere", "ghost")
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "empty means none", input: "", want: time.Time{}},
		{name: "date only", input: "2026-03-04", want: time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local)},
		{name: "rfc3339", input: "2026-03-04T10:30:00Z", want: time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)},
		{name: "garbage", input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDeadline(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}
