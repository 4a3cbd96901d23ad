package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/devtrack/devtrack/internal/models"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestStore opens a file-backed store in a per-test temp directory
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, _ := setupTestStoreFile(t)
	return store
}

// setupTestStoreFile also returns the path so tests can reopen the database
func setupTestStoreFile(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devtrack-test.db")
	store, err := Open(context.Background(), path)
	require.NoError(t, err, "Failed to open test store")
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

// ============================================================================
// FIXTURES
// ============================================================================

// newTestProject builds a project with the given task progress values
func newTestProject(t *testing.T, name string, progress ...float64) *models.Project {
	t.Helper()
	p := models.NewProject(name, name+" description")
	deadline := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	for i, prog := range progress {
		require.NoError(t, p.AddTask(models.Task{
			Name:        string(rune('A'+i)) + " task",
			Description: "step " + string(rune('1'+i)),
			Status:      models.StatusInProgress,
			Deadline:    deadline.Add(time.Duration(i) * 24 * time.Hour),
			Progress:    prog,
		}))
	}
	return p
}

// requireSameProject compares name, description, status and the task set
func requireSameProject(t *testing.T, want, got *models.Project) {
	t.Helper()
	require.Equal(t, want.Name(), got.Name())
	require.Equal(t, want.Description(), got.Description())
	require.Equal(t, want.Status(), got.Status())

	wantTasks, gotTasks := want.Tasks(), got.Tasks()
	require.Len(t, gotTasks, len(wantTasks))
	for i := range wantTasks {
		require.Equal(t, wantTasks[i].Name, gotTasks[i].Name)
		require.Equal(t, wantTasks[i].Description, gotTasks[i].Description)
		require.Equal(t, wantTasks[i].Status, gotTasks[i].Status)
		require.Equal(t, wantTasks[i].Progress, gotTasks[i].Progress)
		require.Equal(t, wantTasks[i].Deadline.Unix(), gotTasks[i].Deadline.Unix())
	}
}
