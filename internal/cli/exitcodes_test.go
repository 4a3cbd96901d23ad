package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/devtrack/devtrack/internal/database"
	"github.com/devtrack/devtrack/internal/models"
	projectservice "github.com/devtrack/devtrack/internal/services/project"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "unclassified", err: errors.New("boom"), want: ExitError},
		{name: "not found", err: WithExitCode(projectservice.ErrProjectNotFound), want: ExitNotFound},
		{name: "task not found", err: WithExitCode(fmt.Errorf("p: %w", models.ErrTaskNotFound)), want: ExitNotFound},
		{name: "duplicate project", err: WithExitCode(&database.StorageError{Op: "insert", Err: database.ErrDuplicateProject}), want: ExitConflict},
		{name: "validation", err: WithExitCode(projectservice.ErrEmptyName), want: ExitValidation},
		{name: "storage", err: WithExitCode(database.ErrStorageUnavailable), want: ExitError},
		{name: "usage", err: UsageError("bad flag %q", "x"), want: ExitUsage},
		{name: "usage kept when wrapped again", err: WithExitCode(UsageError("bad")), want: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestWithExitCode_Unwraps(t *testing.T) {
	err := WithExitCode(fmt.Errorf("create: %w", projectservice.ErrProjectExists))
	assert.ErrorIs(t, err, database.ErrDuplicateProject)
	assert.Nil(t, WithExitCode(nil))
}
