package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/haytac/pidgin-slack-theme/internal/catalog"
	"github.com/haytac/pidgin-slack-theme/internal/theme"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestFs swaps the command filesystem for an in-memory workspace.
func setupTestFs(t *testing.T, catalogJSON string) (afero.Fs, func()) {
	t.Helper()
	chdir(t, t.TempDir()) // keep config discovery away from real files

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/slack-medium", 0755))
	require.NoError(t, fs.MkdirAll("/work/slack-large", 0755))
	require.NoError(t, afero.WriteFile(fs, "/work/emoji_pretty.json", []byte(catalogJSON), 0644))

	prev := Fs
	Fs = fs
	cleanup := func() {
		Fs = prev
		AppCfg = nil
	}
	return fs, cleanup
}

// executeCommand captures the output of a Cobra command.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return strings.TrimSpace(buf.String()), err
}

var workFlags = []string{
	"--input", "/work/emoji_pretty.json",
	"--output-pattern", "/work/slack-{size}/theme",
	"--log-level", "error",
}

func TestRootCmd_Build(t *testing.T) {
	fs, cleanup := setupTestFs(t, `[{"unified": "1F600"}, {"unified": "1F44D-1F3FB"}]`)
	defer cleanup()

	output, err := executeCommand(NewRootCmd(), workFlags...)
	require.NoError(t, err)
	assert.Contains(t, output, "Wrote /work/slack-medium/theme (2 emoji)")
	assert.Contains(t, output, "Wrote /work/slack-large/theme (2 emoji)")

	data, err := afero.ReadFile(fs, "/work/slack-large/theme")
	require.NoError(t, err)
	assert.Equal(t, "Name=Slack large\n"+
		"Description=Slack Emojis ported to pidgin\n"+
		"Icon=1F600.png\n"+
		"Author=Slack\n"+
		"\n"+
		"[default]\n"+
		"1F600.png\t\U0001F600\n"+
		"1F44D-1F3FB.png\t\U0001F44D\U0001F3FB", string(data))
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, cleanup := setupTestFs(t, `[]`)
	defer cleanup()

	_, err := executeCommand(NewRootCmd(), append(workFlags, "extra")...)
	assert.Error(t, err)
}

func TestRootCmd_DecodeErrorAborts(t *testing.T) {
	fs, cleanup := setupTestFs(t, `[{"unified": "ZZZZ"}]`)
	defer cleanup()

	_, err := executeCommand(NewRootCmd(), workFlags...)
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrDecode)

	exists, err := afero.Exists(fs, "/work/slack-medium/theme")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRootCmd_MissingCatalog(t *testing.T) {
	_, cleanup := setupTestFs(t, `[]`)
	defer cleanup()

	_, err := executeCommand(NewRootCmd(), "--input", "/work/missing.json", "--output-pattern", "/work/slack-{size}/theme", "--log-level", "error")
	assert.ErrorIs(t, err, catalog.ErrParse)
}

func TestRootCmd_DryRun(t *testing.T) {
	fs, cleanup := setupTestFs(t, `[{"unified": "1F600"}]`)
	defer cleanup()

	output, err := executeCommand(NewRootCmd(), append(workFlags, "--dry-run")...)
	require.NoError(t, err)
	assert.Contains(t, output, "Dry run: rendered 1 emoji for 2 themes")

	exists, err := afero.Exists(fs, "/work/slack-medium/theme")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRootCmd_BadOutputPattern(t *testing.T) {
	_, cleanup := setupTestFs(t, `[]`)
	defer cleanup()

	_, err := executeCommand(NewRootCmd(), "--output-pattern", "/work/theme", "--log-level", "error")
	assert.ErrorContains(t, err, "{size}")
}

func TestDecodeCmd(t *testing.T) {
	_, cleanup := setupTestFs(t, `[]`)
	defer cleanup()

	output, err := executeCommand(NewRootCmd(), "decode", "1F600", "1F468-1F3FB-200D-2695-FE0F", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "1F600.png\t\U0001F600\n1F468-1F3FB-200D-2695-FE0F.png\t\U0001F468\U0001F3FB\u200D\u2695\uFE0F", output)

	_, err = executeCommand(NewRootCmd(), "decode", "D800", "--log-level", "error")
	assert.ErrorIs(t, err, theme.ErrDecode)
}

func TestCheckCmd(t *testing.T) {
	_, cleanup := setupTestFs(t, `[
		{"unified": "1F600", "short_name": "grinning"},
		{"unified": "1F601", "short_name": "grinning"},
		{"unified": "1F9D1"}
	]`)
	defer cleanup()

	output, err := executeCommand(NewRootCmd(), append([]string{"check"}, workFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, output, "MISMATCH :grinning: 1F601")
	assert.Contains(t, output, "Checked 3 records: 1 matched, 1 mismatched, 1 not in table.")
}
