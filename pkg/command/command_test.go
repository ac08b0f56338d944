package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/antgroup/livebar/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	Globals
	Demo    Demo    `cmd:"demo"`
	Manual  Manual  `cmd:"manual"`
	Lines   Lines   `cmd:"lines"`
	Version Version `cmd:"version"`
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.ENV_LIVEBAR_CONFIG, "")
	var app testApp
	parser, err := kong.New(&app, kong.Name("livebar"), kong.Exit(func(int) {}))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	var out bytes.Buffer
	app.Globals.Stdout = &out
	app.Globals.Stdin = strings.NewReader(stdin)
	err = ctx.Run(&app.Globals)
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := run(t, "", "demo", "-n", "2", "--delay", "0s")
	require.NoError(t, err)
	assert.Equal(t, `This is a text printed before the progress bar.
Doing some computation for i=0... Done!
Doing some computation for i=1... Done!
100% 2/2 in 00:00:00
This is a text printed after the progress bar.
`, out)
}

func TestDemoDescription(t *testing.T) {
	out, err := run(t, "", "demo", "-n", "1", "--delay", "0s", "-d", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "work 100% 1/1 in 00:00:00\n")
}

func TestManual(t *testing.T) {
	out, err := run(t, "", "manual", "-n", "4", "--delay", "0s")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "Done!\n"))
	assert.True(t, strings.HasSuffix(out, "100% in 00:00:00\n"), out)

	_, err = run(t, "", "manual", "-n", "0")
	assert.ErrorIs(t, err, ErrArgRequired)
}

func TestLines(t *testing.T) {
	out, err := run(t, "a\nb\nc\n", "lines")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n3 it in 00:00:00\n", out)

	out, err = run(t, "a\nb\n", "lines", "--total", "4")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n50% 2/4 in 00:00:00\n", out)
}

func TestConfigOverrides(t *testing.T) {
	out, err := run(t, "x\n", "-X", "bar.summary=false", "lines")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)

	_, err = run(t, "", "-X", "bar.fill=##", "lines")
	assert.ErrorIs(t, err, config.ErrInvalidGlyph)

	p := filepath.Join(t.TempDir(), "livebar.toml")
	require.NoError(t, os.WriteFile(p, []byte("[bar]\nsummary = false\n"), 0644))
	out, err = run(t, "x\n", "-c", p, "lines")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)

	_, err = run(t, "", "-c", filepath.Join(t.TempDir(), "missing.toml"), "lines")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersionJSON(t *testing.T) {
	t.Setenv("LIVEBAR_FORCE_TTY", "")
	out, err := run(t, "", "version", "--json", "--system")
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Contains(t, m, "version")
	system, ok := m["system"].(map[string]any)
	require.True(t, ok)
	terminal, ok := system["terminal"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, terminal["interactive"])
	assert.Equal(t, false, terminal["vt"])
	assert.Equal(t, "none", terminal["color"])
}

func TestVersionText(t *testing.T) {
	t.Setenv("LIVEBAR_FORCE_TTY", "")
	out, err := run(t, "", "version", "--system")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "livebar "), out)
	assert.Contains(t, out, "terminal:  interactive=false vt=false width=80 color=none\n")
}
