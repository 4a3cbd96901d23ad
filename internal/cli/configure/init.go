package configure

import (
	"errors"
	"fmt"
	"os"

	"github.com/devtrack/devtrack/internal/cli"
	"github.com/spf13/cobra"
)

// ErrConfigExists is returned by init when the settings file is already there
var ErrConfigExists = errors.New("config file already exists")

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the settings file",
		Long: `Write the effective settings (defaults, environment overrides and
--db) to the settings file so they can be edited.

Examples:
  devtrack config init
  devtrack config init --db ~/work/devtrack.db --force
`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cfg, err := loadSettings(cmd)
	if err != nil {
		return out.Fail(fmt.Errorf("failed to load config: %w", err))
	}

	if _, err := os.Stat(cfg.Path()); err == nil && !force {
		return out.Fail(&cli.ExitCodeError{
			Code: cli.ExitConflict,
			Err:  fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, cfg.Path()),
		})
	}

	if err := cfg.Save(); err != nil {
		return out.Fail(fmt.Errorf("failed to save config: %w", err))
	}

	if out.Quiet {
		_, err := fmt.Fprintln(out.Out, cfg.Path())
		return err
	}
	return out.Success(fmt.Sprintf("Config written to %s", cfg.Path()), newSettingsView(cfg))
}
