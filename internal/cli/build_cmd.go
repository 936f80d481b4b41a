package cli

import (
	"fmt"

	"github.com/haytac/pidgin-slack-theme/internal/app"
	"github.com/haytac/pidgin-slack-theme/internal/config"
	"github.com/haytac/pidgin-slack-theme/internal/theme"
	"github.com/spf13/cobra"
)

func runBuild(cmd *cobra.Command, cfg *config.AppConfig) error {
	application, err := app.NewApplication(cfg, Fs)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	res, err := application.Run()
	if err != nil {
		return err
	}

	if cfg.DryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Dry run: rendered %d emoji for %d themes, nothing written.\n", res.Lines, len(res.Rendered))
		return nil
	}
	for _, size := range res.Written {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d emoji)\n", theme.OutputPath(cfg.OutputPattern, size), res.Lines)
	}
	return nil
}
