package term

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/antgroup/livebar/modules/strengthen"
	"github.com/mattn/go-isatty"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

type ColorMode int

const (
	NO_COLOR ColorMode = iota
	HAS_256COLOR
	HAS_TRUECOLOR
)

func (m ColorMode) String() string {
	switch m {
	case HAS_256COLOR:
		return "256color"
	case HAS_TRUECOLOR:
		return "truecolor"
	}
	return "none"
}

const (
	// DefaultWidth is used whenever the terminal size cannot be determined.
	DefaultWidth = 80
)

var (
	StderrMode ColorMode
	StdoutMode ColorMode
)

var (
	ErrUnavailable = errors.New("terminal capability unavailable")
)

func detectTermColorMode() ColorMode {
	if strengthen.SimpleAtob(os.Getenv("LIVEBAR_FORCE_TRUECOLOR"), false) {
		return HAS_TRUECOLOR
	}
	if strengthen.SimpleAtob(os.Getenv("NO_COLOR"), false) {
		return NO_COLOR
	}
	if _, ok := os.LookupEnv("WT_SESSION"); ok {
		return HAS_TRUECOLOR
	}
	colorTermEnv := os.Getenv("COLORTERM")
	termEnv := os.Getenv("TERM")
	if strings.Contains(termEnv, "24bit") ||
		strings.Contains(termEnv, "truecolor") ||
		strings.Contains(colorTermEnv, "24bit") ||
		strings.Contains(colorTermEnv, "truecolor") {
		return HAS_TRUECOLOR
	}
	if strings.Contains(termEnv, "256") || strings.Contains(colorTermEnv, "256") {
		return HAS_256COLOR
	}
	return NO_COLOR
}

func init() {
	colorMode := detectTermColorMode()
	if IsTerminal(os.Stderr.Fd()) {
		StderrMode = colorMode
	}
	if IsTerminal(os.Stdout.Fd()) {
		StdoutMode = colorMode
	}
}

func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

func IsNativeTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

func GetSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}

// StripANSI removes escape sequences from s.
func StripANSI(s string) string {
	return stripansi.Strip(s)
}

// StringWidth returns the number of columns s occupies once escape sequences
// are removed.
func StringWidth(s string) int {
	return uniseg.StringWidth(stripansi.Strip(s))
}

// Info is a snapshot of the destination capabilities taken for one redraw.
type Info struct {
	Width       int
	Interactive bool
}

type fder interface {
	Fd() uintptr
}

// Terminal wraps an output stream and emits cursor control sequences only
// when that stream is attached to a terminal.
type Terminal struct {
	w           io.Writer
	fd          uintptr
	hasFd       bool
	interactive bool
	// fixed width, 0 means query the device.
	cols int
}

// New detects the capabilities of w. Writers without a file descriptor are
// never interactive.
func New(w io.Writer) *Terminal {
	t := &Terminal{w: w}
	if f, ok := w.(fder); ok {
		t.fd = f.Fd()
		t.hasFd = true
		t.interactive = IsTerminal(t.fd)
	}
	if v, ok := os.LookupEnv("LIVEBAR_FORCE_TTY"); ok {
		t.interactive = strengthen.SimpleAtob(v, t.interactive)
	}
	if strengthen.SimpleAtob(os.Getenv("NO_TTY"), false) {
		t.interactive = false
	}
	return t
}

// NewWithSize returns an interactive terminal over w with a fixed column
// count.
func NewWithSize(w io.Writer, cols int) *Terminal {
	return &Terminal{w: w, interactive: true, cols: cols}
}

// Resize changes the column count of a terminal created by NewWithSize.
func (t *Terminal) Resize(cols int) {
	t.cols = cols
}

// ForceInteractive overrides the detected capability.
func (t *Terminal) ForceInteractive(interactive bool) {
	t.interactive = interactive
}

func (t *Terminal) Interactive() bool {
	return t.interactive
}

// ColorMode reports the color depth of the terminal, NO_COLOR when the
// stream is not interactive.
func (t *Terminal) ColorMode() ColorMode {
	if !t.interactive {
		return NO_COLOR
	}
	return detectTermColorMode()
}

// Width returns the current column count. The size is read again on every
// call because the terminal can be resized between frames.
func (t *Terminal) Width() (int, error) {
	if t.cols > 0 {
		return t.cols, nil
	}
	if !t.hasFd {
		return 0, fmt.Errorf("%w: no file descriptor", ErrUnavailable)
	}
	width, _, err := GetSize(int(t.fd))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if width <= 0 {
		return 0, fmt.Errorf("%w: zero columns", ErrUnavailable)
	}
	return width, nil
}

// Info returns the capability snapshot, falling back to DefaultWidth.
func (t *Terminal) Info() Info {
	width, err := t.Width()
	if err != nil {
		width = DefaultWidth
	}
	return Info{Width: width, Interactive: t.interactive}
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.w.Write(p)
}

// Writer returns the wrapped stream.
func (t *Terminal) Writer() io.Writer {
	return t.w
}

// With returns a copy of t that writes to w but keeps the capability and
// size source of t.
func (t *Terminal) With(w io.Writer) *Terminal {
	c := *t
	c.w = w
	return &c
}

func (t *Terminal) control(seq string) error {
	if !t.interactive {
		return nil
	}
	_, err := io.WriteString(t.w, seq)
	return err
}

// ClearLine returns to column 0 and erases the current line.
func (t *Terminal) ClearLine() error {
	return t.control("\r\x1b[2K")
}

func (t *Terminal) MoveUp(n int) error {
	if n <= 0 {
		return nil
	}
	return t.control(fmt.Sprintf("\x1b[%dA", n))
}

func (t *Terminal) MoveRight(n int) error {
	if n <= 0 {
		return nil
	}
	return t.control(fmt.Sprintf("\x1b[%dC", n))
}

func (t *Terminal) HideCursor() error {
	return t.control("\x1b[?25l")
}

func (t *Terminal) ShowCursor() error {
	return t.control("\x1b[?25h")
}

// Enable prepares the device for control sequences. When that fails the
// terminal is downgraded to plain output.
func (t *Terminal) Enable() error {
	if !t.interactive || !t.hasFd {
		return nil
	}
	if err := enableVirtualTerminal(t.fd); err != nil {
		t.interactive = false
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
