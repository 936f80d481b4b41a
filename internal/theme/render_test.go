package theme

import (
	"strings"
	"testing"

	"github.com/haytac/pidgin-slack-theme/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLine(t *testing.T) {
	line, err := BuildLine(catalog.EmojiRecord{Unified: "1F600", ShortName: "grinning"})
	require.NoError(t, err)
	assert.Equal(t, "1F600.png", line.ImageFileName)
	assert.Equal(t, "1F600.png\t\U0001F600", line.String())

	again, err := BuildLine(catalog.EmojiRecord{Unified: "1F600"})
	require.NoError(t, err)
	assert.Equal(t, line, again)
}

func TestBuildLine_Sequence(t *testing.T) {
	line, err := BuildLine(catalog.EmojiRecord{Unified: "1F468-1F3FB-200D-2695-FE0F"})
	require.NoError(t, err)
	assert.Equal(t, "1F468-1F3FB-200D-2695-FE0F.png\t\U0001F468\U0001F3FB\u200D\u2695\uFE0F", line.String())
}

func TestBuildLines_StopsOnBadRecord(t *testing.T) {
	lines, err := BuildLines([]catalog.EmojiRecord{{Unified: "1F600"}, {Unified: "ZZZZ"}, {Unified: "1F601"}})
	assert.ErrorIs(t, err, ErrDecode)
	assert.Nil(t, lines)
}

func TestRender(t *testing.T) {
	lines := []Line{
		{ImageFileName: "1F600.png", Glyph: "\U0001F600"},
		{ImageFileName: "1F44D-1F3FD.png", Glyph: "\U0001F44D\U0001F3FD"},
	}

	got := Render(lines, "medium", DefaultHeader)
	want := "Name=Slack medium\n" +
		"Description=Slack Emojis ported to pidgin\n" +
		"Icon=1F600.png\n" +
		"Author=Slack\n" +
		"\n" +
		"[default]\n" +
		"1F600.png\t\U0001F600\n" +
		"1F44D-1F3FD.png\t\U0001F44D\U0001F3FD"
	assert.Equal(t, want, got)
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestRender_SizesDifferOnlyInName(t *testing.T) {
	lines := []Line{{ImageFileName: "1F600.png", Glyph: "\U0001F600"}}

	medium := strings.Split(Render(lines, "medium", DefaultHeader), "\n")
	large := strings.Split(Render(lines, "large", DefaultHeader), "\n")
	require.Equal(t, len(medium), len(large))

	assert.Equal(t, "Name=Slack medium", medium[0])
	assert.Equal(t, "Name=Slack large", large[0])
	assert.Equal(t, medium[1:], large[1:])
}

func TestRender_Empty(t *testing.T) {
	got := Render(nil, "large", DefaultHeader)
	assert.Equal(t, "Name=Slack large\nDescription=Slack Emojis ported to pidgin\nIcon=1F600.png\nAuthor=Slack\n\n[default]\n", got)
}

func TestRender_CustomHeader(t *testing.T) {
	h := Header{Name: "Team", Description: "Team emoji", Icon: "2B50.png", Author: "Ops"}
	got := Render(nil, "small", h)
	assert.True(t, strings.HasPrefix(got, "Name=Team small\nDescription=Team emoji\nIcon=2B50.png\nAuthor=Ops\n"))
}
