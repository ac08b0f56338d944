package term

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferIsNotInteractive(t *testing.T) {
	t.Setenv("LIVEBAR_FORCE_TTY", "")
	var buf bytes.Buffer
	tm := New(&buf)
	assert.False(t, tm.Interactive())

	_, err := tm.Width()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, Info{Width: DefaultWidth, Interactive: false}, tm.Info())

	require.NoError(t, tm.ClearLine())
	require.NoError(t, tm.MoveUp(3))
	require.NoError(t, tm.MoveRight(2))
	require.NoError(t, tm.HideCursor())
	require.NoError(t, tm.ShowCursor())
	require.NoError(t, tm.Enable())
	assert.Zero(t, buf.Len(), "no control bytes for a non terminal")

	_, _ = tm.Write([]byte("plain\n"))
	assert.Equal(t, "plain\n", buf.String())
}

func TestControlSequences(t *testing.T) {
	var buf bytes.Buffer
	tm := NewWithSize(&buf, 42)
	assert.True(t, tm.Interactive())
	width, err := tm.Width()
	require.NoError(t, err)
	assert.Equal(t, 42, width)

	require.NoError(t, tm.ClearLine())
	require.NoError(t, tm.MoveUp(2))
	require.NoError(t, tm.MoveUp(0))
	require.NoError(t, tm.MoveRight(5))
	require.NoError(t, tm.HideCursor())
	require.NoError(t, tm.ShowCursor())
	assert.Equal(t, "\r\x1b[2K\x1b[2A\x1b[5C\x1b[?25l\x1b[?25h", buf.String())
}

func TestForceInteractive(t *testing.T) {
	var buf bytes.Buffer
	tm := NewWithSize(&buf, 10)
	tm.ForceInteractive(false)
	require.NoError(t, tm.ClearLine())
	assert.Zero(t, buf.Len())
}

func TestForceTTYEnv(t *testing.T) {
	t.Setenv("LIVEBAR_FORCE_TTY", "yes")
	var buf bytes.Buffer
	assert.True(t, New(&buf).Interactive())

	t.Setenv("NO_TTY", "1")
	assert.False(t, New(&buf).Interactive())
}

func TestColorMode(t *testing.T) {
	t.Setenv("LIVEBAR_FORCE_TTY", "")
	t.Setenv("LIVEBAR_FORCE_TRUECOLOR", "1")
	var buf bytes.Buffer
	assert.Equal(t, NO_COLOR, New(&buf).ColorMode())
	assert.Equal(t, HAS_TRUECOLOR, NewWithSize(&buf, 10).ColorMode())
	assert.Equal(t, "truecolor", HAS_TRUECOLOR.String())
	assert.Equal(t, "256color", HAS_256COLOR.String())
	assert.Equal(t, "none", NO_COLOR.String())
}
