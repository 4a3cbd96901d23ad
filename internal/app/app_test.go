package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/devtrack/devtrack/internal/database"
	"github.com/devtrack/devtrack/internal/testutil"
)

func TestNew(t *testing.T) {
	store := testutil.SetupTestStore(t)

	app := New(store)

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.ProjectService == nil {
		t.Error("Expected ProjectService to be initialized")
	}
	if app.Store() != store {
		t.Error("Expected Store() to return the wrapped store")
	}
	if app.Logger() == nil {
		t.Error("Expected a non-nil default logger")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")

	app, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Expected Open to succeed, got error: %v", err)
	}

	if !app.ProjectService.CreateProject(ctx, "From App", "") {
		t.Fatalf("Expected create to succeed: %v", app.ProjectService.LastError())
	}

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}

func TestOpen_StorageUnavailable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	_, err := Open(context.Background(), filepath.Join(blocker, "app.db"))
	if !errors.Is(err, database.ErrStorageUnavailable) {
		t.Errorf("Expected ErrStorageUnavailable, got %v", err)
	}
}
