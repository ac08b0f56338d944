//go:build linux || darwin

package command

import (
	"bytes"
	"testing"
	"time"

	expect "github.com/Netflix/go-expect"
	"github.com/antgroup/livebar/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoOnConsole(t *testing.T) {
	t.Setenv(config.ENV_LIVEBAR_CONFIG, "")
	t.Setenv("NO_TTY", "")
	var captured bytes.Buffer
	c, err := expect.NewConsole(expect.WithStdout(&captured), expect.WithDefaultTimeout(10*time.Second))
	require.NoError(t, err)
	defer c.Close() // nolint

	done := make(chan error, 1)
	go func() {
		_, err := c.ExpectString("This is a text printed after the progress bar.")
		done <- err
	}()

	g := &Globals{Stdout: c.Tty()}
	require.NoError(t, (&Demo{Count: 3}).Run(g))
	require.NoError(t, <-done)

	out := captured.String()
	assert.Contains(t, out, "\x1b[?25l")
	assert.Contains(t, out, "\x1b[?25h")
	assert.Contains(t, out, "100% 3/3")
	assert.Contains(t, out, "Doing some computation for i=2... ")
	// plain summary is only for non-terminals
	assert.NotContains(t, out, " in 00:00:0")
}
