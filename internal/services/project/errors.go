package project

import (
	"errors"

	"github.com/devtrack/devtrack/internal/database"
	"github.com/devtrack/devtrack/internal/models"
)

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName     = errors.New("project name cannot be empty")
	ErrNameTooLong   = errors.New("project name cannot exceed 100 characters")
	ErrEmptyTaskName = errors.New("task name cannot be empty")

	// Business logic errors, shared with the layers that raise them
	ErrProjectNotFound = database.ErrProjectNotFound
	ErrProjectExists   = database.ErrDuplicateProject
	ErrTaskNotFound    = models.ErrTaskNotFound
	ErrDuplicateTask   = models.ErrDuplicateTask
)

// ErrorKind groups errors by how a caller should report them
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindValidation
	KindNotFound
	KindAlreadyExists
	KindStorage
)

// KindOf classifies err for user-facing reporting
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrProjectExists):
		return KindAlreadyExists
	case errors.Is(err, ErrProjectNotFound), errors.Is(err, ErrTaskNotFound):
		return KindNotFound
	case errors.Is(err, ErrEmptyName), errors.Is(err, ErrNameTooLong),
		errors.Is(err, ErrEmptyTaskName), errors.Is(err, ErrDuplicateTask),
		errors.Is(err, models.ErrInvalidStatus):
		return KindValidation
	default:
		return KindStorage
	}
}
