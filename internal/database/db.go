// Package database is the SQLite-backed persistence layer for projects and
// their tasks.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/devtrack/devtrack/internal/logging"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database, useful for tests and dry runs
const MemoryPath = ":memory:"

// Option configures a Store at Open time
type Option func(*Store)

// WithLogger sets the logger used for diagnostics that cannot be returned
// to the caller, such as a failed rollback.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open opens or creates the database file at path and makes sure the schema
// exists. The returned Store owns the only connection to the file; release it
// with Close.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:   path,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	inMemory := isMemoryPath(path)
	if !inMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: failed to create directory for %s: %w", ErrStorageUnavailable, path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database %s: %w", ErrStorageUnavailable, path, err)
	}

	// A single connection keeps in-memory databases alive and gives the
	// store exclusive ownership of the file handle.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	if !inMemory {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			s.closeAfterFailure(db)
			return nil, fmt.Errorf("%w: %s failed for %s: %w", ErrStorageUnavailable, pragma, path, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		s.closeAfterFailure(db)
		return nil, fmt.Errorf("%w: database ping failed for %s: %w", ErrStorageUnavailable, path, err)
	}

	if err := runMigrations(ctx, db); err != nil {
		s.closeAfterFailure(db)
		return nil, &StorageError{Op: "create schema", Err: err}
	}

	s.db = db
	s.q = db
	return s, nil
}

// Close releases the database handle. Closing an already closed store, or a
// store bound to a transaction, does nothing.
func (s *Store) Close() error {
	if s.tx != nil || s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return &StorageError{Op: "close database", Err: err}
	}
	return nil
}

// Path returns the location the store was opened from
func (s *Store) Path() string {
	return s.path
}

func (s *Store) closeAfterFailure(db *sql.DB) {
	if err := db.Close(); err != nil {
		s.logger.Error("error closing db", "path", s.path, "error", err)
	}
}

func isMemoryPath(path string) bool {
	return path == MemoryPath || strings.Contains(path, "mode=memory")
}
