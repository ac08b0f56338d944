package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/antgroup/livebar/modules/strengthen"
	"github.com/antgroup/livebar/modules/term"
	"github.com/antgroup/livebar/pkg/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOverDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
[bar]
fill = "#"
color = "cyan"
min_interval = "250ms"
`))
	require.NoError(t, err)
	assert.Equal(t, "#", cfg.Bar.Fill)
	assert.Equal(t, " ", cfg.Bar.Empty)
	assert.Equal(t, "[", cfg.Bar.Left)
	assert.Equal(t, "cyan", cfg.Bar.Color)
	assert.True(t, cfg.Bar.ShowETA)
	assert.True(t, cfg.Bar.Summary)
	assert.Equal(t, 250*time.Millisecond, cfg.Bar.MinInterval.Duration)
}

func TestDecodeRejects(t *testing.T) {
	_, err := Decode(strings.NewReader("[bar]\nfill = \"##\"\n"))
	assert.ErrorIs(t, err, ErrInvalidGlyph)

	_, err = Decode(strings.NewReader("[bar]\nleft = \"\"\n"))
	assert.ErrorIs(t, err, ErrInvalidGlyph)

	_, err = Decode(strings.NewReader("[bar]\nwidth = 10\n"))
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.ErrorContains(t, err, "bar.width")

	_, err = Decode(strings.NewReader("[bar]\nmin_interval = \"soon\"\n"))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("[bar]\nmin_interval = \"-1s\"\n"))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Bar.Fill = "进"
	cfg.Bar.Smooth = true
	cfg.Bar.MinInterval.Duration = time.Second
	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestOverwrite(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Overwrite([]string{"bar.fill==", " BAR.Show_ETA =false", "bar.min_interval=0s"}))
	assert.Equal(t, "=", cfg.Bar.Fill)
	assert.False(t, cfg.Bar.ShowETA)
	assert.Zero(t, cfg.Bar.MinInterval.Duration)

	assert.ErrorIs(t, cfg.Overwrite([]string{"bar.fill"}), strengthen.ErrSyntaxKeyValue)
	assert.ErrorIs(t, cfg.Overwrite([]string{"bar.nope=1"}), ErrUnknownKey)
	assert.ErrorIs(t, cfg.Overwrite([]string{"bar.right=>>"}), ErrInvalidGlyph)
}

func TestLoadExpandEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "livebar.toml")
	require.NoError(t, os.WriteFile(p, []byte("[bar]\ncolor = \"${LIVEBAR_TEST_COLOR}\"\n"), 0644))
	t.Setenv("LIVEBAR_TEST_COLOR", "green")

	cfg, err := Load(p, true)
	require.NoError(t, err)
	assert.Equal(t, "green", cfg.Bar.Color)

	cfg, err = Load(p, false)
	require.NoError(t, err)
	assert.Equal(t, "${LIVEBAR_TEST_COLOR}", cfg.Bar.Color)

	t.Setenv(ENV_LIVEBAR_CONFIG, p)
	cfg, err = Load("", true)
	require.NoError(t, err)
	assert.Equal(t, "green", cfg.Bar.Color)
}

func TestLoadMissing(t *testing.T) {
	t.Setenv(ENV_LIVEBAR_CONFIG, "")
	cfg, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	assert.Len(t, cfg.Options(), 2)

	cfg.Bar.ShowETA = false
	cfg.Bar.Smooth = true
	cfg.Bar.Summary = false
	assert.Len(t, cfg.Options(), 5)

	// glyphs end up in the rendered line
	cfg = Default()
	require.NoError(t, cfg.Overwrite([]string{"bar.fill=#", "bar.left=<", "bar.right=>", "bar.show_eta=off"}))
	var buf bytes.Buffer
	epoch := time.Unix(1700000000, 0)
	opts := append(cfg.Options(), progress.WithTerminal(term.NewWithSize(&buf, 21)), progress.WithClock(func() time.Time { return epoch }))
	it := progress.Count(&buf, 2, opts...)
	for range it.All() {
	}
	assert.Contains(t, buf.String(), "<##########> 100% 2/2\n")
}
