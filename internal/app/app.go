package app

import (
	"fmt"

	"github.com/haytac/pidgin-slack-theme/internal/catalog"
	"github.com/haytac/pidgin-slack-theme/internal/config"
	"github.com/haytac/pidgin-slack-theme/internal/metrics"
	"github.com/haytac/pidgin-slack-theme/internal/theme"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Application holds the dependencies of one theme build.
type Application struct {
	Config  *config.AppConfig
	Builder *theme.Builder
}

// NewApplication wires a Builder from cfg over fs.
func NewApplication(cfg *config.AppConfig, fs afero.Fs) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	b := theme.NewBuilder(catalog.NewLoader(fs), theme.NewFileWriter(fs, cfg.OutputPattern), cfg.InputPath)
	b.Sizes = cfg.Sizes
	b.Header = theme.Header{
		Name:        cfg.Theme.Name,
		Description: cfg.Theme.Description,
		Icon:        cfg.Theme.Icon,
		Author:      cfg.Theme.Author,
	}
	b.DryRun = cfg.DryRun

	return &Application{Config: cfg, Builder: b}, nil
}

// Run performs the build and exports metrics, including for failed builds.
func (app *Application) Run() (*theme.Result, error) {
	log.Debug().Str("input", app.Config.InputPath).Strs("sizes", app.Config.Sizes).Msg("Starting theme build")

	res, buildErr := app.Builder.Build()

	if err := metrics.WriteTextfile(app.Config.MetricsFile); err != nil {
		log.Warn().Err(err).Str("path", app.Config.MetricsFile).Msg("Failed to write metrics file")
	}

	if buildErr != nil {
		if res != nil && len(res.Written) > 0 {
			log.Warn().Strs("written", res.Written).Msg("Build aborted after writing some themes")
		}
		return res, fmt.Errorf("build failed: %w", buildErr)
	}
	return res, nil
}
