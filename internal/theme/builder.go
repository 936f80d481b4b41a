package theme

import (
	"errors"
	"fmt"

	"github.com/haytac/pidgin-slack-theme/internal/catalog"
	"github.com/haytac/pidgin-slack-theme/internal/logging"
	"github.com/haytac/pidgin-slack-theme/internal/metrics"
	"github.com/haytac/pidgin-slack-theme/pkg/interfaces"
	"github.com/rs/zerolog/log"
)

// DefaultSizes are the variants built, in order.
var DefaultSizes = []string{"medium", "large"}

// Builder runs the catalog to theme conversion.
type Builder struct {
	Loader    interfaces.RecordLoader
	Writer    interfaces.ThemeWriter
	InputPath string
	Sizes     []string
	Header    Header
	DryRun    bool
}

// Result summarizes a completed build.
type Result struct {
	Lines    int
	Rendered map[string]string // size -> content
	Written  []string          // sizes actually written, in order
}

// NewBuilder creates a Builder with the default sizes and header.
func NewBuilder(loader interfaces.RecordLoader, writer interfaces.ThemeWriter, inputPath string) *Builder {
	return &Builder{
		Loader:    loader,
		Writer:    writer,
		InputPath: inputPath,
		Sizes:     DefaultSizes,
		Header:    DefaultHeader,
	}
}

// Build loads the catalog, decodes every record and writes one theme per size.
// Any error aborts the build; every record is decoded before the first write,
// so a decode failure leaves the output files untouched.
func (b *Builder) Build() (*Result, error) {
	res, err := b.build()
	if err != nil {
		metrics.BuildErrors.WithLabelValues(ErrorKind(err)).Inc()
		return res, err
	}
	return res, nil
}

func (b *Builder) build() (*Result, error) {
	records, err := b.Loader.LoadRecords(b.InputPath)
	if err != nil {
		return nil, err
	}
	metrics.RecordsLoaded.Add(float64(len(records)))
	log.Info().Str("input", b.InputPath).Int("records", len(records)).Msg("Catalog loaded")

	lines, err := BuildLines(records)
	if err != nil {
		return nil, err
	}
	metrics.ThemeLines.Set(float64(len(lines)))

	res := &Result{Lines: len(lines), Rendered: make(map[string]string, len(b.Sizes))}
	for _, size := range b.Sizes {
		logger := logging.ContextualLogger(map[string]interface{}{"size": size})
		content := Render(lines, size, b.Header)
		res.Rendered[size] = content

		if b.DryRun {
			logger.Info().Int("bytes", len(content)).Msg("Dry run, theme not written")
			continue
		}
		if err := b.Writer.WriteTheme(content, size); err != nil {
			return res, fmt.Errorf("size %s: %w", size, err)
		}
		metrics.ThemesWritten.WithLabelValues(size).Inc()
		res.Written = append(res.Written, size)
	}
	return res, nil
}

// ErrorKind names the taxonomy class of a build error.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, catalog.ErrParse):
		return "parse"
	case errors.Is(err, catalog.ErrSchema):
		return "schema"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrIO):
		return "io"
	default:
		return "other"
	}
}
