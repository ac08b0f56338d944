// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/antgroup/livebar/modules/streamio"
	"github.com/antgroup/livebar/modules/term"
)

var (
	ErrInvalidProgress = errors.New("invalid progress value")
	ErrStreamTeardown  = errors.New("restore output stream")
)

// bar is the state shared by Scope and Iterator. Every write to the
// destination happens with mu held, so a frame is never interleaved with
// client text.
type bar struct {
	mu    sync.Mutex
	opts  options
	tm    *term.Terminal
	total int64
	// sized is set when the length of the work is known, even when it is 0
	sized bool

	count       int64
	current     float64
	fractionSet bool
	counted     bool
	start       time.Time
	lastRender  time.Time
	rendered    bool
	interactive bool
	active      bool
	// painted is true while a frame is on screen below the cursor row.
	painted   bool
	lastWidth int
	// terminal columns at the last paint
	lastCols int
	// display column where the last client line stopped, 0 when it ended
	// with a line break.
	col         int
	widthLogged bool
}

// newBar creates the shared state. A total <= 0 is unknown unless sized says
// the work really has that many items.
func newBar(w io.Writer, total int64, sized bool, opts []Option) *bar {
	o := newOptions(opts)
	tm := o.terminal
	if tm == nil {
		tm = term.New(w)
	}
	if total < 0 {
		total = 0
	}
	return &bar{opts: o, tm: tm, total: total, sized: sized || total > 0}
}

func clamp(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// begin resets the state and activates interception. It returns false when
// a session is already running.
func (b *bar) begin() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active {
		return false
	}
	b.count, b.current = 0, 0
	b.fractionSet, b.counted = false, false
	b.rendered, b.painted = false, false
	b.lastWidth, b.lastCols, b.col = 0, 0, 0
	if b.sized && b.total == 0 {
		// nothing to do is done
		b.current = 1
	}
	b.start = b.opts.now()
	b.interactive = b.tm.Interactive()
	if b.interactive {
		if err := b.tm.Enable(); err != nil {
			b.opts.logger.WithError(err).Debug("progress: terminal cannot render control sequences, falling back to plain output")
			b.interactive = false
		}
	}
	b.active = true
	if b.interactive {
		b.frameLocked(true, func(t *term.Terminal, _ int) {
			_ = t.HideCursor()
		})
	}
	return true
}

func (b *bar) setFraction(fraction float64) error {
	if math.IsNaN(fraction) {
		return fmt.Errorf("%w: %v", ErrInvalidProgress, fraction)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = clamp(fraction)
	b.fractionSet = true
	b.frameLocked(false, nil)
	return nil
}

func (b *bar) add(n int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count += n
	if b.count < 0 {
		b.count = 0
	}
	b.counted = true
	if b.total > 0 {
		b.current = clamp(float64(b.count) / float64(b.total))
	}
	b.frameLocked(false, nil)
}

func (b *bar) progress() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

func (b *bar) snapshotLocked(now time.Time) *snapshot {
	elapsed := now.Sub(b.start)
	if elapsed < 0 {
		elapsed = 0
	}
	return &snapshot{
		current:     b.current,
		known:       b.sized || b.fractionSet,
		counted:     b.counted,
		count:       b.count,
		total:       b.total,
		elapsed:     elapsed,
		description: b.opts.description,
	}
}

func (b *bar) widthLocked() int {
	width, err := b.tm.Width()
	if err != nil {
		if !b.widthLogged {
			b.opts.logger.WithError(err).Debugf("progress: using default width %d", term.DefaultWidth)
			b.widthLogged = true
		}
		return term.DefaultWidth
	}
	return width
}

// eraseLocked clears the painted frame. A frame wider than the current
// terminal was wrapped over several rows after a resize, all of them are
// cleared and the cursor ends at column 0 of the first one.
func (b *bar) eraseLocked(t *term.Terminal, cols int) {
	if !b.painted {
		return
	}
	rows := 1
	if cols > 0 && b.lastWidth > cols {
		rows = (b.lastWidth + cols - 1) / cols
	}
	_ = t.ClearLine()
	for i := 1; i < rows; i++ {
		_ = t.MoveUp(1)
		_ = t.ClearLine()
	}
	b.painted = false
}

func (b *bar) paintLocked(t *term.Terminal, cols int, now time.Time) {
	frame := renderLine(b.snapshotLocked(now), &b.opts, cols, true)
	_ = t.ClearLine()
	_, _ = io.WriteString(t, frame)
	b.lastWidth = frameWidth(frame)
	b.lastCols = cols
	b.painted = true
	b.rendered = true
	b.lastRender = now
}

// frameLocked runs one throttled redraw. The first redraw of a session and
// forced redraws always happen. between runs after the erase and before the
// repaint, all of it reaches the destination in one flush.
func (b *bar) frameLocked(force bool, between func(t *term.Terminal, cols int)) {
	if !b.active || !b.interactive {
		return
	}
	now := b.opts.now()
	if !force && b.rendered && now.Sub(b.lastRender) < b.opts.interval {
		return
	}
	if err := b.writeLocked(now, between); err != nil {
		b.degradeLocked(err)
	}
}

func (b *bar) writeLocked(now time.Time, between func(t *term.Terminal, cols int)) error {
	w := streamio.GetBufferWriter(b.tm.Writer())
	defer streamio.PutBufferWriter(w)
	t := b.tm.With(w)
	cols := b.widthLocked()
	if b.lastCols != 0 && b.lastCols != cols {
		b.opts.logger.Debugf("progress: terminal resized from %d to %d columns", b.lastCols, cols)
	}
	b.eraseLocked(t, cols)
	if between != nil {
		between(t, cols)
	}
	b.paintLocked(t, cols, now)
	return w.Flush()
}

// degradeLocked switches the session to plain output after the destination
// failed, the wrapped computation keeps running.
func (b *bar) degradeLocked(err error) {
	b.opts.logger.WithError(err).Warn("progress: terminal write failed, disabling live rendering")
	b.interactive = false
	b.painted = false
}

// end performs the final redraw and restores the destination. It is safe to
// call more than once.
func (b *bar) end() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.active {
		return
	}
	defer func() {
		b.active = false
		b.col = 0
	}()
	now := b.opts.now()
	if !b.interactive {
		if !b.opts.summary {
			return
		}
		line := renderSummary(b.snapshotLocked(now))
		if err := streamio.WriteAll(b.tm.Writer(), []byte(line), []byte("\n")); err != nil {
			b.opts.logger.WithError(fmt.Errorf("%w: %v", ErrStreamTeardown, err)).Warn("progress: write summary")
		}
		return
	}
	w := streamio.GetBufferWriter(b.tm.Writer())
	defer streamio.PutBufferWriter(w)
	t := b.tm.With(w)
	cols := b.widthLocked()
	b.eraseLocked(t, cols)
	b.paintLocked(t, cols, now)
	_ = w.WriteByte('\n')
	_ = t.ShowCursor()
	b.painted = false
	if err := flush(w); err != nil {
		b.opts.logger.WithError(err).Warn("progress: output stream was not restored cleanly")
	}
}

func flush(w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrStreamTeardown, err)
	}
	return nil
}
