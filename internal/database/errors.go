package database

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Domain errors for the persistent store
var (
	// ErrStorageUnavailable indicates the database file or its directory cannot be accessed
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrDuplicateProject indicates a project with the same name (ignoring case) already exists
	ErrDuplicateProject = errors.New("project already exists")

	// ErrProjectNotFound indicates no stored project matches the given name
	ErrProjectNotFound = errors.New("project not found")

	// ErrDeletionFailed wraps any engine failure during a cascading delete
	ErrDeletionFailed = errors.New("deletion failed")
)

// StorageError carries the operation that failed alongside the underlying cause.
// Use errors.Is with the sentinel errors above rather than inspecting Err.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// isUniqueViolation reports whether err is a primary key or unique constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}
