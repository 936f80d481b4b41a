package theme

import (
	"strings"

	"github.com/haytac/pidgin-slack-theme/internal/catalog"
)

const imageExt = ".png"

// Line maps one image file to the glyph Pidgin should replace with it.
type Line struct {
	ImageFileName string
	Glyph         string
}

// String returns the tab-separated theme form.
func (l Line) String() string {
	return l.ImageFileName + "\t" + l.Glyph
}

// BuildLine derives the theme line for a record.
func BuildLine(rec catalog.EmojiRecord) (Line, error) {
	glyph, err := DecodeUnified(rec.Unified)
	if err != nil {
		return Line{}, err
	}
	return Line{ImageFileName: rec.Unified + imageExt, Glyph: glyph}, nil
}

// BuildLines maps BuildLine over records, stopping at the first failure.
func BuildLines(records []catalog.EmojiRecord) ([]Line, error) {
	lines := make([]Line, 0, len(records))
	for _, rec := range records {
		line, err := BuildLine(rec)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Header is the fixed block at the top of a theme file.
type Header struct {
	Name        string
	Description string
	Icon        string
	Author      string
}

// DefaultHeader is the header of the Slack themes.
var DefaultHeader = Header{
	Name:        "Slack",
	Description: "Slack Emojis ported to pidgin",
	Icon:        "1F600.png",
	Author:      "Slack",
}

func (h Header) lines(size string) []string {
	return []string{
		"Name=" + h.Name + " " + size,
		"Description=" + h.Description,
		"Icon=" + h.Icon,
		"Author=" + h.Author,
		"",
		"[default]",
	}
}

// Render produces the complete theme file for one size. The body is not
// newline-terminated.
func Render(lines []Line, size string, header Header) string {
	body := make([]string, len(lines))
	for i, l := range lines {
		body[i] = l.String()
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(header.lines(size), "\n"))
	sb.WriteString("\n")
	sb.WriteString(strings.Join(body, "\n"))
	return sb.String()
}
