package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// withTx runs fn against a store bound to a transaction.
// A store that is already bound runs fn directly and leaves commit and
// rollback to whoever opened the transaction.
func (s *Store) withTx(ctx context.Context, op string, fn func(*Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.BeginTx(ctx)
	if err != nil {
		return &StorageError{Op: op, Err: err}
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.logger.Error("failed to rollback transaction", "op", op, "error", err)
		}
	}()

	if err := fn(s.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: op, Err: fmt.Errorf("failed to commit transaction: %w", err)}
	}
	return nil
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// unixToNull stores the zero time as NULL so it survives a round trip
func unixToNull(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

// nullToUnix is the inverse of unixToNull
func nullToUnix(n sql.NullInt64) time.Time {
	if !n.Valid {
		return time.Time{}
	}
	return time.Unix(n.Int64, 0)
}
