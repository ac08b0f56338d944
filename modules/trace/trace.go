package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antgroup/livebar/modules/term"
)

type Debuger interface {
	DbgPrint(format string, args ...any)
}

func NewDebuger(verbose bool) Debuger {
	return &debuger{verbose: verbose, w: os.Stderr}
}

type debuger struct {
	verbose bool
	w       io.Writer
}

func formatDebug(mode term.ColorMode, message string) []byte {
	var buffer bytes.Buffer
	lines := strings.Split(strings.TrimSuffix(message, "\n"), "\n")
	switch mode {
	case term.HAS_TRUECOLOR:
		for _, s := range lines {
			_, _ = buffer.WriteString("\x1b[38;2;254;225;64m* ")
			_, _ = buffer.WriteString(s)
			_, _ = buffer.WriteString("\x1b[0m\n")
		}
	case term.HAS_256COLOR:
		for _, s := range lines {
			_, _ = buffer.WriteString("\x1b[33m* ")
			_, _ = buffer.WriteString(s)
			_, _ = buffer.WriteString("\x1b[0m\n")
		}
	default:
		for _, s := range lines {
			_, _ = buffer.WriteString("* ")
			_, _ = buffer.WriteString(s)
			_ = buffer.WriteByte('\n')
		}
	}
	return buffer.Bytes()
}

func DbgPrint(format string, args ...any) {
	if !debugMode {
		return
	}
	_, _ = os.Stderr.Write(formatDebug(term.StderrMode, fmt.Sprintf(format, args...)))
}

func (d debuger) DbgPrint(format string, args ...any) {
	if !d.verbose {
		return
	}
	_, _ = d.w.Write(formatDebug(term.StderrMode, fmt.Sprintf(format, args...)))
}

var (
	_ Debuger = &debuger{}
)
