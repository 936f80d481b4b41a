package interfaces

import (
	"github.com/haytac/pidgin-slack-theme/internal/catalog"
)

// RecordLoader loads catalog records in file order.
type RecordLoader interface {
	LoadRecords(path string) ([]catalog.EmojiRecord, error)
}

// ThemeWriter persists rendered theme content for one size variant.
type ThemeWriter interface {
	WriteTheme(content, size string) error
}

// GlyphChecker compares a decoded glyph against a reference table.
type GlyphChecker interface {
	// Known reports the reference glyph for a shortcode, if any.
	Known(shortName string) (string, bool)
}
