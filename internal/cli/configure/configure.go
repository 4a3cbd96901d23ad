// Package configure holds the cli commands that read and write the settings file
//
// e.g., devtrack config ...
package configure

import (
	"github.com/devtrack/devtrack/internal/config"
	"github.com/spf13/cobra"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// settingsView is the JSON shape of the effective settings
type settingsView struct {
	Path         string `json:"path"`
	DatabasePath string `json:"database_path"`
	LogPath      string `json:"log_path"`
	LogLevel     string `json:"log_level"`
	Theme        string `json:"theme"`
}

func newSettingsView(cfg *config.Config) settingsView {
	return settingsView{
		Path:         cfg.Path(),
		DatabasePath: cfg.DatabasePath,
		LogPath:      cfg.LogPath,
		LogLevel:     cfg.LogLevel,
		Theme:        cfg.ColorScheme.Preset,
	}
}

// loadSettings reads the file named by --config, or the default one, and
// applies --db on top.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DatabasePath = db
	}
	return cfg, nil
}
