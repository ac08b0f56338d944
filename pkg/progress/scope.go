// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"io"
)

// Scope is an active progress session. Print through it (or through Writer)
// so text lands above the bar, and always Close it:
//
//	s := progress.Start(os.Stdout, 0)
//	defer s.Close()
//	fmt.Fprintln(s, "working")
//	_ = s.SetProgress(0.5)
type Scope struct {
	b      *bar
	w      *Interceptor
	closer bool
}

// Start activates a session on w. total <= 0 leaves the total unknown, the
// bar then shows a percentage only once SetProgress is called.
func Start(w io.Writer, total int64, opts ...Option) *Scope {
	b := newBar(w, total, false, opts)
	return b.scope()
}

func (b *bar) scope() *Scope {
	return &Scope{b: b, w: &Interceptor{b: b}, closer: b.begin()}
}

func (s *Scope) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Writer returns the intercepting writer bound to this session.
func (s *Scope) Writer() io.Writer {
	return s.w
}

// SetProgress reports a fraction, clamped to [0,1]. NaN is rejected with
// ErrInvalidProgress.
func (s *Scope) SetProgress(fraction float64) error {
	return s.b.setFraction(fraction)
}

// Add advances the item counter by n.
func (s *Scope) Add(n int64) {
	s.b.add(n)
}

func (s *Scope) Increment() {
	s.b.add(1)
}

// Progress returns the stored fraction.
func (s *Scope) Progress() float64 {
	return s.b.progress()
}

// Close draws the final frame and restores the destination. Teardown errors
// are logged, never returned, so Close is safe in a defer on any exit path.
func (s *Scope) Close() error {
	if s.closer {
		s.b.end()
	}
	return nil
}

var (
	_ io.WriteCloser = &Scope{}
)
