package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// Registry holds the build metrics. It is separate from the default registry
// so the textfile only carries what the build produced.
var Registry = prometheus.NewRegistry()

var (
	// RecordsLoaded counts catalog records read.
	RecordsLoaded = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Name: "slacktheme_records_loaded_total",
			Help: "Total number of emoji catalog records loaded.",
		},
	)

	// BuildErrors counts aborted builds by error kind.
	BuildErrors = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "slacktheme_build_errors_total",
			Help: "Total number of aborted theme builds.",
		},
		[]string{"kind"}, // parse, schema, decode, io
	)

	// ThemesWritten counts theme files written per size.
	ThemesWritten = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "slacktheme_themes_written_total",
			Help: "Total number of theme files written.",
		},
		[]string{"size"},
	)

	// ThemeLines reports the body line count of the last rendered theme.
	ThemeLines = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "slacktheme_theme_lines",
			Help: "Number of emoji lines in the last rendered theme.",
		},
	)
)

// WriteTextfile dumps the registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	if path == "" {
		log.Debug().Msg("Metrics file not configured, skipping export.")
		return nil
	}
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("Metrics written")
	return nil
}
