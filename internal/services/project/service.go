// Package project is the entry point the rest of the application uses to
// read and change projects. Every read goes back to the store; nothing is
// cached here.
package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/devtrack/devtrack/internal/logging"
	"github.com/devtrack/devtrack/internal/models"
)

const maxNameLength = 100

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByName(ctx context.Context, name string) (*models.Project, error)
	ProjectExists(ctx context.Context, name string) (bool, error)

	// Write operations reported as success/failure; see LastError
	CreateProject(ctx context.Context, name, description string) bool
	DeleteProject(ctx context.Context, name string) bool

	// Write operations whose failure detail the caller needs
	UpdateProject(ctx context.Context, project *models.Project) error
	SetProjectStatus(ctx context.Context, projectName string, status models.Status) error
	AddTaskToProject(ctx context.Context, projectName string, task models.Task) error
	UpdateTaskProgress(ctx context.Context, projectName, taskName string, progress float64) error
	RemoveTaskFromProject(ctx context.Context, projectName, taskName string) error

	// LastError returns the failure behind the most recent false from
	// CreateProject or DeleteProject, nil after a success.
	LastError() error
}

// repository defines the data access methods needed by the project service
// This interface is private to the service layer
type repository interface {
	Insert(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Remove(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
	Load(ctx context.Context, name string) (*models.Project, error)
	LoadAll(ctx context.Context) ([]*models.Project, error)
}

// service implements Service interface with private repository
type service struct {
	repo    repository
	logger  *slog.Logger
	lastErr error
}

// NewService creates a new project service over repo. A nil logger discards output.
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetAllProjects retrieves a fresh snapshot of every project
func (s *service) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Error("failed to load projects", "error", err)
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return projects, nil
}

// GetProjectByName retrieves a specific project
func (s *service) GetProjectByName(ctx context.Context, name string) (*models.Project, error) {
	project, err := s.repo.Load(ctx, name)
	if err != nil {
		s.logger.Error("failed to get project", "project", name, "error", err)
		return nil, err
	}
	return project, nil
}

// ProjectExists reports whether a project with the given name is stored
func (s *service) ProjectExists(ctx context.Context, name string) (bool, error) {
	return s.repo.Exists(ctx, name)
}

// CreateProject stores a new, empty project
func (s *service) CreateProject(ctx context.Context, name, description string) bool {
	if err := validateName(name); err != nil {
		return s.fail("failed to create project", name, err)
	}

	if err := s.repo.Insert(ctx, models.NewProject(name, description)); err != nil {
		return s.fail("failed to create project", name, err)
	}

	s.lastErr = nil
	s.logger.Info("project created", "project", name)
	return true
}

// DeleteProject removes a project together with its tasks
func (s *service) DeleteProject(ctx context.Context, name string) bool {
	if err := s.repo.Remove(ctx, name); err != nil {
		return s.fail("failed to delete project", name, err)
	}

	s.lastErr = nil
	s.logger.Info("project deleted", "project", name)
	return true
}

// UpdateProject saves the full state of project, tasks included
func (s *service) UpdateProject(ctx context.Context, project *models.Project) error {
	if err := s.repo.Update(ctx, project); err != nil {
		s.logger.Error("failed to update project", "project", project.Name(), "error", err)
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// SetProjectStatus overrides the stored status of a project
func (s *service) SetProjectStatus(ctx context.Context, projectName string, status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %d", models.ErrInvalidStatus, int(status))
	}
	return s.mutate(ctx, projectName, "", func(p *models.Project) error {
		p.SetStatus(status)
		return nil
	})
}

// AddTaskToProject appends task to the named project
func (s *service) AddTaskToProject(ctx context.Context, projectName string, task models.Task) error {
	if strings.TrimSpace(task.Name) == "" {
		return ErrEmptyTaskName
	}
	return s.mutate(ctx, projectName, task.Name, func(p *models.Project) error {
		return p.AddTask(task)
	})
}

// UpdateTaskProgress sets the progress of one task, clamped to [0, 100]
func (s *service) UpdateTaskProgress(ctx context.Context, projectName, taskName string, progress float64) error {
	return s.mutate(ctx, projectName, taskName, func(p *models.Project) error {
		return p.UpdateTaskProgress(taskName, progress)
	})
}

// RemoveTaskFromProject drops a task; a task that does not exist is ignored
func (s *service) RemoveTaskFromProject(ctx context.Context, projectName, taskName string) error {
	return s.mutate(ctx, projectName, taskName, func(p *models.Project) error {
		p.RemoveTask(taskName)
		return nil
	})
}

func (s *service) LastError() error {
	return s.lastErr
}

// mutate loads a project, applies fn in memory and saves the result
func (s *service) mutate(ctx context.Context, projectName, taskName string, fn func(*models.Project) error) error {
	project, err := s.repo.Load(ctx, projectName)
	if err != nil {
		s.logger.Error("failed to load project for update", "project", projectName, "task", taskName, "error", err)
		return err
	}

	if err := fn(project); err != nil {
		s.logger.Error("rejected task change", "project", projectName, "task", taskName, "error", err)
		return fmt.Errorf("project %q: %w", projectName, err)
	}

	return s.UpdateProject(ctx, project)
}

// fail records err for LastError and logs it
func (s *service) fail(msg, name string, err error) bool {
	s.lastErr = err
	s.logger.Error(msg, "project", name, "error", err)
	return false
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}
