package models

import "errors"

// Domain errors for project and task mutations
var (
	// ErrDuplicateTask indicates a task with the same name (ignoring case) already exists
	ErrDuplicateTask = errors.New("task with this name already exists")

	// ErrTaskNotFound indicates no task in the project matches the given name
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidStatus indicates a status string or value outside the known states
	ErrInvalidStatus = errors.New("invalid status")
)
