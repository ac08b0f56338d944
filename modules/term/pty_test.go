//go:build linux || darwin || freebsd

package term

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtyDetection(t *testing.T) {
	t.Setenv("LIVEBAR_FORCE_TTY", "")
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close() // nolint
	defer tty.Close()  // nolint

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 100}))
	tm := New(tty)
	assert.True(t, tm.Interactive())
	width, err := tm.Width()
	require.NoError(t, err)
	assert.Equal(t, 100, width)

	// resize between frames
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 37}))
	assert.Equal(t, Info{Width: 37, Interactive: true}, tm.Info())
}

func TestRegularFileIsNotTerminal(t *testing.T) {
	t.Setenv("LIVEBAR_FORCE_TTY", "")
	fd, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer fd.Close() // nolint
	tm := New(fd)
	assert.False(t, tm.Interactive())
	_, err = tm.Width()
	assert.ErrorIs(t, err, ErrUnavailable)
}
