package strengthen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
)

// Measurer records a CPU profile between NewMeasurer and Close.
type Measurer struct {
	path string
	fd   *os.File
}

// NewMeasurer starts profiling into the temp dir when debugMode is set. A
// profile that cannot be started leaves the measurer disabled.
func NewMeasurer(name string, debugMode bool) *Measurer {
	m := &Measurer{}
	if !debugMode {
		return m
	}
	m.path = filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d.pprof", name, os.Getpid()))
	fd, err := os.Create(m.path)
	if err != nil {
		m.path = ""
		return m
	}
	if err = pprof.StartCPUProfile(fd); err != nil {
		_ = fd.Close()
		_ = os.Remove(m.path)
		m.path = ""
		return m
	}
	m.fd = fd
	return m
}

func (m *Measurer) Path() string {
	return m.path
}

// Close stops the profile and tells w how to open it.
func (m *Measurer) Close(w io.Writer) {
	if m.fd == nil {
		return
	}
	pprof.StopCPUProfile()
	_ = m.fd.Close()
	m.fd = nil
	fmt.Fprintf(w, "Task operation completed\ngo tool pprof -http=\":8080\" %s\n", m.path)
}
