// Package app wires the store and services together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/devtrack/devtrack/internal/database"
	projectservice "github.com/devtrack/devtrack/internal/services/project"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	store  *database.Store
	logger *slog.Logger

	ProjectService projectservice.Service
}

// New creates a new App over an already opened store. The App takes
// ownership of the store and closes it in Close.
func New(store *database.Store, opts ...Option) *App {
	cfg := buildConfig(opts)
	return &App{
		store:          store,
		logger:         cfg.logger,
		ProjectService: projectservice.NewService(store, cfg.logger),
	}
}

// Open opens the database at dbPath and builds the App around it
func Open(ctx context.Context, dbPath string, opts ...Option) (*App, error) {
	cfg := buildConfig(opts)

	store, err := database.Open(ctx, dbPath, database.WithLogger(cfg.logger))
	if err != nil {
		cfg.logger.Error("failed to open database", "path", dbPath, "error", err)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	cfg.logger.Info("database initialized", "path", dbPath)

	return New(store, opts...), nil
}

// Store returns the underlying store for direct database access
func (a *App) Store() *database.Store {
	return a.store
}

// Logger returns the logger shared by the services
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database handle
func (a *App) Close() error {
	return a.store.Close()
}
