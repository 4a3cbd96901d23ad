package configure

import (
	"encoding/json"
	"fmt"

	"github.com/devtrack/devtrack/internal/cli"
	"github.com/devtrack/devtrack/internal/cli/styles"
	"github.com/spf13/cobra"
)

// ShowCmd returns the config show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	out := cli.NewFormatter(cmd)

	cfg, err := loadSettings(cmd)
	if err != nil {
		return out.Fail(fmt.Errorf("failed to load config: %w", err))
	}
	view := newSettingsView(cfg)

	if out.JSON {
		return json.NewEncoder(out.Out).Encode(map[string]any{
			"success": true,
			"config":  view,
		})
	}

	if out.Quiet {
		_, err := fmt.Fprintln(out.Out, view.Path)
		return err
	}

	for _, line := range []string{
		styles.RenderField("Config file", view.Path),
		styles.RenderField("Database", view.DatabasePath),
		styles.RenderField("Log file", view.LogPath),
		styles.RenderField("Log level", view.LogLevel),
		styles.RenderField("Theme", view.Theme),
	} {
		if _, err := fmt.Fprintln(out.Out, line); err != nil {
			return err
		}
	}
	return nil
}
