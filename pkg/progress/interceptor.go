// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"bytes"
	"io"

	"github.com/antgroup/livebar/modules/term"
)

// Interceptor is the writer client code prints through while a bar is
// active. Each write erases the bar, forwards the text as permanent
// scroll-back and paints the bar again below it. Outside of a session, or
// when the destination is not a terminal, writes pass through untouched.
type Interceptor struct {
	b *bar
}

func (i *Interceptor) Write(p []byte) (int, error) {
	b := i.b
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.active || !b.interactive {
		return b.tm.Writer().Write(p)
	}
	if len(p) == 0 {
		return 0, nil
	}
	err := b.writeLocked(b.opts.now(), func(t *term.Terminal, cols int) {
		if b.col >= cols {
			// a narrower terminal reflowed the unfinished line, the text
			// continues on a row of its own
			b.col = 0
		}
		if b.col > 0 {
			// resume the unfinished line above the bar
			_ = t.MoveUp(1)
			_ = t.MoveRight(b.col)
		}
		_, _ = t.Write(p)
		if p[len(p)-1] != '\n' {
			_, _ = io.WriteString(t, "\n")
		}
		b.col = advanceColumn(b.col, p, cols)
	})
	if err != nil {
		b.degradeLocked(err)
		return 0, err
	}
	return len(p), nil
}

// advanceColumn returns the column the cursor would stand on after writing p
// from col, wrapping at cols. A line that exactly fills the terminal counts
// as finished.
func advanceColumn(col int, p []byte, cols int) int {
	if i := bytes.LastIndexAny(p, "\r\n"); i >= 0 {
		col = 0
		p = p[i+1:]
	}
	col += term.StringWidth(string(p))
	if cols > 0 {
		col %= cols
	}
	return col
}

var (
	_ io.Writer = &Interceptor{}
)
