// Package shortcode cross-checks catalog glyphs against the kyokomi/emoji
// shortcode table.
package shortcode

import (
	"strings"

	"github.com/kyokomi/emoji/v2"
)

const variationSelector16 = "\uFE0F"

// Table is a shortcode -> glyph lookup.
type Table struct {
	codes map[string]string
}

// NewTable loads the kyokomi/emoji code map.
func NewTable() *Table {
	return &Table{codes: emoji.CodeMap()}
}

// Known implements interfaces.GlyphChecker. shortName has no surrounding colons.
func (t *Table) Known(shortName string) (string, bool) {
	glyph, ok := t.codes[":"+shortName+":"]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(glyph), true
}

// Equivalent compares two glyphs ignoring emoji presentation selectors,
// which the two tables apply inconsistently.
func Equivalent(a, b string) bool {
	return strings.ReplaceAll(a, variationSelector16, "") == strings.ReplaceAll(b, variationSelector16, "")
}
