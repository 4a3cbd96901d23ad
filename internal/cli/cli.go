// Package cli holds the pieces shared by the devtrack subcommands: opening
// the application, formatting output and mapping errors to exit codes.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/devtrack/devtrack/internal/app"
	"github.com/devtrack/devtrack/internal/cli/styles"
	"github.com/devtrack/devtrack/internal/config"
	"github.com/devtrack/devtrack/internal/logging"
)

// Options selects where the CLI reads its settings from
type Options struct {
	ConfigPath string // empty means the default location
	DBPath     string // overrides the configured database path
}

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config

	owned     bool
	logCloser io.Closer
}

// NewCLI loads the configuration, opens the log file and the database
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.DBPath != "" {
		cfg.DatabasePath = opts.DBPath
	}

	logger, logCloser, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.Open(ctx, cfg.DatabasePath, app.WithLogger(logger))
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	styles.Init(cfg.ColorScheme)

	return &CLI{
		App:       application,
		Config:    cfg,
		owned:     true,
		logCloser: logCloser,
	}, nil
}

// Close releases the database and the log file. A CLI borrowed from the
// context leaves the App open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logCloser != nil {
		if closeErr := c.logCloser.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}
