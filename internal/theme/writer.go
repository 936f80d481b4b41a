package theme

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// DefaultOutputPattern places each size in its own theme directory.
const DefaultOutputPattern = "slack-{size}/theme"

// OutputPath substitutes size into pattern.
func OutputPath(pattern, size string) string {
	return strings.ReplaceAll(pattern, "{size}", size)
}

// FileWriter writes theme files into pre-existing directories.
type FileWriter struct {
	fs      afero.Fs
	pattern string
}

// NewFileWriter creates a FileWriter. An empty pattern uses DefaultOutputPattern.
func NewFileWriter(fs afero.Fs, pattern string) *FileWriter {
	if pattern == "" {
		pattern = DefaultOutputPattern
	}
	return &FileWriter{fs: fs, pattern: pattern}
}

// WriteTheme overwrites the theme file for size. The parent directory is
// never created: a missing directory is an error.
func (w *FileWriter) WriteTheme(content, size string) error {
	path := OutputPath(w.pattern, size)
	dir := filepath.Dir(path)

	exists, err := afero.DirExists(w.fs, dir)
	if err != nil {
		return fmt.Errorf("%w: checking %s: %w", ErrIO, dir, err)
	}
	if !exists {
		return fmt.Errorf("%w: directory %s does not exist", ErrIO, dir)
	}

	if err := afero.WriteFile(w.fs, path, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	log.Info().Str("path", path).Int("bytes", len(content)).Msg("Theme written")
	return nil
}
