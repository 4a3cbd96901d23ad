package cli

import (
	"errors"
	"fmt"

	projectservice "github.com/devtrack/devtrack/internal/services/project"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors or any error that doesn't fit the categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested project or task does not exist.
	ExitNotFound = 3

	// ExitConflict indicates the resource already exists.
	ExitConflict = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, invalid status values, duplicate task names.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err with the exit code matching its kind
func WithExitCode(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitCodeError{Code: exitCodeForKind(projectservice.KindOf(err)), Err: err}
}

// ExitCode returns the process exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// UsageError reports bad command-line input
func UsageError(format string, args ...any) error {
	return &ExitCodeError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

func exitCodeForKind(kind projectservice.ErrorKind) int {
	switch kind {
	case projectservice.KindNone:
		return ExitSuccess
	case projectservice.KindNotFound:
		return ExitNotFound
	case projectservice.KindAlreadyExists:
		return ExitConflict
	case projectservice.KindValidation:
		return ExitValidation
	default:
		return ExitError
	}
}

// errorCode is the machine-readable code printed with a failure
func errorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitConflict:
		return "ALREADY_EXISTS"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "STORAGE_ERROR"
	}
}
