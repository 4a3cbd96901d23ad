package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devtrack/devtrack/internal/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store maps projects and tasks onto the projects and tasks tables.
//
// A Store is meant to be used from one goroutine at a time. While a
// transaction is open, run operations through the store returned by WithTx;
// the root store shares the same single connection and would block.
type Store struct {
	db     *sql.DB
	tx     *sql.Tx
	q      querier
	path   string
	logger *slog.Logger
	closed bool
}

// BeginTx starts a transaction on the store's connection
func (s *Store) BeginTx(ctx context.Context) (*sql.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// WithTx returns a store whose operations run inside tx. The caller commits
// or rolls back tx; operations on the returned store never do.
func (s *Store) WithTx(tx *sql.Tx) *Store {
	return &Store{
		db:     s.db,
		tx:     tx,
		q:      tx,
		path:   s.path,
		logger: s.logger,
	}
}

// Insert writes the project row and all of its task rows atomically.
// A name already taken (ignoring case) yields ErrDuplicateProject.
func (s *Store) Insert(ctx context.Context, project *models.Project) error {
	op := fmt.Sprintf("insert project %q", project.Name())

	return s.withTx(ctx, op, func(txs *Store) error {
		exists, err := txs.Exists(ctx, project.Name())
		if err != nil {
			return err
		}
		if exists {
			return &StorageError{Op: op, Err: ErrDuplicateProject}
		}

		_, err = txs.q.ExecContext(ctx,
			`INSERT INTO projects (name, description, status) VALUES (?, ?, ?)`,
			project.Name(), project.Description(), int(project.Status()),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return &StorageError{Op: op, Err: fmt.Errorf("%w: %w", ErrDuplicateProject, err)}
			}
			return &StorageError{Op: op, Err: err}
		}

		return txs.insertTasks(ctx, op, project)
	})
}

// Update replaces the project's metadata and its whole task list.
// Both steps share one transaction.
func (s *Store) Update(ctx context.Context, project *models.Project) error {
	op := fmt.Sprintf("update project %q", project.Name())

	return s.withTx(ctx, op, func(txs *Store) error {
		result, err := txs.q.ExecContext(ctx,
			`UPDATE projects SET description = ?, status = ? WHERE name = ?`,
			project.Description(), int(project.Status()), project.Name(),
		)
		if err != nil {
			return &StorageError{Op: op, Err: err}
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return &StorageError{Op: op, Err: err}
		}
		if affected == 0 {
			return &StorageError{Op: op, Err: ErrProjectNotFound}
		}

		_, err = txs.q.ExecContext(ctx, `DELETE FROM tasks WHERE project_name = ?`, project.Name())
		if err != nil {
			return &StorageError{Op: op, Err: fmt.Errorf("failed to delete existing tasks: %w", err)}
		}

		return txs.insertTasks(ctx, op, project)
	})
}

// Remove deletes the project and every task that references it.
// Engine failures are reported wrapped in ErrDeletionFailed.
func (s *Store) Remove(ctx context.Context, name string) error {
	op := fmt.Sprintf("delete project %q", name)

	return s.withTx(ctx, op, func(txs *Store) error {
		exists, err := txs.Exists(ctx, name)
		if err != nil {
			return err
		}
		if !exists {
			return &StorageError{Op: op, Err: ErrProjectNotFound}
		}

		if _, err := txs.q.ExecContext(ctx, `DELETE FROM tasks WHERE project_name = ?`, name); err != nil {
			return &StorageError{Op: op, Err: fmt.Errorf("%w: failed to delete tasks: %w", ErrDeletionFailed, err)}
		}
		if _, err := txs.q.ExecContext(ctx, `DELETE FROM projects WHERE name = ?`, name); err != nil {
			return &StorageError{Op: op, Err: fmt.Errorf("%w: failed to delete project: %w", ErrDeletionFailed, err)}
		}
		return nil
	})
}

// Exists reports whether a project with the given name is stored, ignoring case
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	var count int
	err := s.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE name = ?`, name).Scan(&count)
	if err != nil {
		return false, &StorageError{Op: fmt.Sprintf("check project %q exists", name), Err: err}
	}
	return count > 0, nil
}

// Load retrieves a single project with its tasks
func (s *Store) Load(ctx context.Context, name string) (*models.Project, error) {
	op := fmt.Sprintf("load project %q", name)

	var r projectRow
	err := s.q.QueryRowContext(ctx,
		`SELECT name, description, status FROM projects WHERE name = ?`, name,
	).Scan(&r.name, &r.description, &r.status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &StorageError{Op: op, Err: ErrProjectNotFound}
	}
	if err != nil {
		return nil, &StorageError{Op: op, Err: err}
	}

	return s.hydrate(ctx, r)
}

// LoadAll retrieves every project in storage order, tasks included
func (s *Store) LoadAll(ctx context.Context) ([]*models.Project, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT name, description, status FROM projects ORDER BY rowid`)
	if err != nil {
		return nil, &StorageError{Op: "query all projects", Err: err}
	}

	// Project rows are drained before tasks are queried: the store has a
	// single connection and cannot hold two result sets open.
	var projectRows []projectRow
	for rows.Next() {
		var r projectRow
		if err := rows.Scan(&r.name, &r.description, &r.status); err != nil {
			s.closeRows(rows)
			return nil, &StorageError{Op: "scan project row", Err: err}
		}
		projectRows = append(projectRows, r)
	}
	if err := rows.Err(); err != nil {
		s.closeRows(rows)
		return nil, &StorageError{Op: "iterate project rows", Err: err}
	}
	s.closeRows(rows)

	projects := make([]*models.Project, 0, len(projectRows))
	for _, r := range projectRows {
		project, err := s.hydrate(ctx, r)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

type projectRow struct {
	name        string
	description sql.NullString
	status      int
}

// hydrate builds the entity for a project row and loads its tasks.
// The stored project status wins over the one derived while adding tasks.
func (s *Store) hydrate(ctx context.Context, r projectRow) (*models.Project, error) {
	project := models.NewProject(r.name, NullStringToString(r.description))

	tasks, err := s.loadTasks(ctx, r.name)
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if err := project.AddTask(task); err != nil {
			return nil, &StorageError{Op: fmt.Sprintf("load task %q of project %q", task.Name, r.name), Err: err}
		}
	}

	project.SetStatus(models.Status(r.status))
	return project, nil
}

func (s *Store) loadTasks(ctx context.Context, projectName string) ([]models.Task, error) {
	op := fmt.Sprintf("load tasks of project %q", projectName)

	rows, err := s.q.QueryContext(ctx,
		`SELECT task_name, description, status, deadline, progress
		 FROM tasks WHERE project_name = ? ORDER BY rowid`,
		projectName,
	)
	if err != nil {
		return nil, &StorageError{Op: op, Err: err}
	}
	defer s.closeRows(rows)

	var tasks []models.Task
	for rows.Next() {
		var (
			task        models.Task
			description sql.NullString
			status      int
			deadline    sql.NullInt64
		)
		if err := rows.Scan(&task.Name, &description, &status, &deadline, &task.Progress); err != nil {
			return nil, &StorageError{Op: op, Err: err}
		}
		task.Description = NullStringToString(description)
		task.Status = models.Status(status)
		task.Deadline = nullToUnix(deadline)
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: op, Err: err}
	}
	return tasks, nil
}

func (s *Store) insertTasks(ctx context.Context, op string, project *models.Project) error {
	for _, task := range project.Tasks() {
		_, err := s.q.ExecContext(ctx,
			`INSERT INTO tasks (project_name, task_name, description, status, deadline, progress)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			project.Name(), task.Name, task.Description, int(task.Status),
			unixToNull(task.Deadline), models.ClampProgress(task.Progress),
		)
		if err != nil {
			return &StorageError{Op: op, Err: fmt.Errorf("failed to insert task %q: %w", task.Name, err)}
		}
	}
	return nil
}

func (s *Store) closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		s.logger.Error("failed to close rows", "error", err)
	}
}
