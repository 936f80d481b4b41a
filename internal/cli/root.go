package cli

import (
	"fmt"
	"os"

	"github.com/haytac/pidgin-slack-theme/internal/config"
	"github.com/haytac/pidgin-slack-theme/internal/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// AppCfg is populated by the root command's PersistentPreRunE.
var AppCfg *config.AppConfig

// Fs is the filesystem commands read from and write to.
var Fs afero.Fs = afero.NewOsFs()

type rootOptions struct {
	cfgFile       string
	input         string
	outputPattern string
	logLevel      string
	dryRun        bool
}

// NewRootCmd builds the command tree. Running the root command with no
// arguments performs the full theme build.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pidgin-slack-theme",
		Short: "Build Pidgin emoticon themes from the Slack emoji catalog.",
		Long: `pidgin-slack-theme reads emoji_pretty.json and writes slack-medium/theme and
slack-large/theme, mapping each <unified>.png image to the emoji it represents.
The slack-<size>/ directories must already exist.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loadedCfg, err := config.LoadConfig(opts.cfgFile)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			applyFlags(loadedCfg, opts)
			if err := loadedCfg.Validate(); err != nil {
				return err
			}
			AppCfg = loadedCfg

			logging.Setup(AppCfg.Log)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, AppCfg)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./.pidgin-slack-theme.yaml, $HOME/.pidgin-slack-theme/.pidgin-slack-theme.yaml)")
	cmd.PersistentFlags().StringVar(&opts.input, "input", "", "emoji catalog to read (default emoji_pretty.json)")
	cmd.PersistentFlags().StringVar(&opts.outputPattern, "output-pattern", "", "theme path, {size} is substituted (default slack-{size}/theme)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "render themes without writing them")

	cmd.AddCommand(NewDecodeCmd())
	cmd.AddCommand(NewCheckCmd())
	return cmd
}

func applyFlags(cfg *config.AppConfig, opts *rootOptions) {
	if opts.input != "" {
		cfg.InputPath = opts.input
	}
	if opts.outputPattern != "" {
		cfg.OutputPattern = opts.outputPattern
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	cfg.DryRun = opts.dryRun
}

// RootCmd is the command run by main.
var RootCmd = NewRootCmd()

// Execute runs RootCmd and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
