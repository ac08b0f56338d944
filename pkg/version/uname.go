package version

import (
	"io"
	"sync"

	"github.com/antgroup/livebar/modules/term"
)

// SystemInfo describes the host and the output stream a bar would draw on.
type SystemInfo struct {
	Name      string       `json:"name"`
	Node      string       `json:"node"`
	Release   string       `json:"release"`
	Version   string       `json:"version"`
	Machine   string       `json:"machine"`
	OS        string       `json:"os"`
	Processor string       `json:"processor"`
	Terminal  TerminalInfo `json:"terminal"`
}

// TerminalInfo is the renderer's view of an output stream.
type TerminalInfo struct {
	Interactive bool `json:"interactive"`
	// VT is true when cursor control sequences are accepted.
	VT    bool `json:"vt"`
	Width int  `json:"width"`
	// DefaultWidth is set when the size could not be read and Width is the
	// fallback.
	DefaultWidth bool   `json:"default_width"`
	Color        string `json:"color"`
}

var host = sync.OnceValues(hostInfo)

// Uname reports the host, detected once, and the current capabilities of w.
func Uname(w io.Writer) (*SystemInfo, error) {
	h, err := host()
	if err != nil {
		return nil, err
	}
	info := *h
	info.Terminal = DetectTerminal(w)
	return &info, nil
}

// DetectTerminal takes the capability snapshot the renderer would use for w.
func DetectTerminal(w io.Writer) TerminalInfo {
	t := term.New(w)
	// Enable downgrades the terminal when the console refuses VT mode
	vt := t.Enable() == nil && t.Interactive()
	width, err := t.Width()
	if err != nil {
		width = term.DefaultWidth
	}
	return TerminalInfo{
		Interactive:  t.Interactive(),
		VT:           vt,
		Width:        width,
		DefaultWidth: err != nil,
		Color:        t.ColorMode().String(),
	}
}
