package shortcode

import (
	"github.com/haytac/pidgin-slack-theme/internal/catalog"
	"github.com/haytac/pidgin-slack-theme/internal/theme"
	"github.com/haytac/pidgin-slack-theme/pkg/interfaces"
)

// Mismatch is a record whose decoded glyph differs from the reference table.
type Mismatch struct {
	ShortName string
	Unified   string
	Catalog   string
	Known     string
}

// Report summarizes a catalog check.
type Report struct {
	Checked    int
	Matched    int
	Unknown    int // records without a short name, or one the table lacks
	Mismatches []Mismatch
}

// Check decodes every record and compares it with known. Decode errors abort
// the check the same way they abort a build.
func Check(records []catalog.EmojiRecord, known interfaces.GlyphChecker) (*Report, error) {
	rep := &Report{}
	for _, rec := range records {
		glyph, err := theme.DecodeUnified(rec.Unified)
		if err != nil {
			return rep, err
		}
		rep.Checked++

		if rec.ShortName == "" {
			rep.Unknown++
			continue
		}
		ref, ok := known.Known(rec.ShortName)
		if !ok {
			rep.Unknown++
			continue
		}
		if Equivalent(glyph, ref) {
			rep.Matched++
			continue
		}
		rep.Mismatches = append(rep.Mismatches, Mismatch{
			ShortName: rec.ShortName,
			Unified:   rec.Unified,
			Catalog:   glyph,
			Known:     ref,
		})
	}
	return rep, nil
}
