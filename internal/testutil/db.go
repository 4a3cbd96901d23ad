// Package testutil holds helpers shared by tests across packages
package testutil

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/devtrack/devtrack/internal/database"
	"github.com/devtrack/devtrack/internal/models"
)

// SetupTestStore opens a store backed by a file in the test's temp directory.
// The store is closed when the test finishes.
func SetupTestStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "devtrack.db"))
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Failed to close test store: %v", err)
		}
	})
	return store
}

// CreateTestProject inserts a project whose tasks are named after their
// position ("task-1", "task-2", ...) with the given progress values.
func CreateTestProject(t *testing.T, store *database.Store, name string, progress ...float64) *models.Project {
	t.Helper()
	project := models.NewProject(name, "Test Description")
	for i, p := range progress {
		task := models.Task{Name: TaskName(i + 1), Progress: p}
		if err := project.AddTask(task); err != nil {
			t.Fatalf("Failed to add task %s: %v", task.Name, err)
		}
	}
	if err := store.Insert(context.Background(), project); err != nil {
		t.Fatalf("Failed to create test project %s: %v", name, err)
	}
	return project
}

// TaskName returns the name CreateTestProject gives the n-th task
func TaskName(n int) string {
	return "task-" + strconv.Itoa(n)
}
