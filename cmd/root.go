// Package cmd assembles the devtrack command tree
package cmd

import (
	"github.com/devtrack/devtrack/internal/cli/configure"
	"github.com/devtrack/devtrack/internal/cli/project"
	"github.com/devtrack/devtrack/internal/cli/task"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the devtrack root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "devtrack",
		Short: "DevTrack - track projects and their tasks",
		Long: `DevTrack keeps projects and their tasks in a local SQLite database.

Settings are read from $XDG_CONFIG_HOME/devtrack/config.yaml, and the
DEVTRACK_DB_PATH, DEVTRACK_LOG_PATH and DEVTRACK_LOG_LEVEL environment
variables (or a .env file in the working directory) override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/devtrack/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Database file, overriding the configured path")

	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(configure.ConfigCmd())

	return rootCmd
}

// Execute runs the command tree against os.Args
func Execute() error {
	return NewRootCmd().Execute()
}
