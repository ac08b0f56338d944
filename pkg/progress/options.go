// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"time"

	"github.com/antgroup/livebar/modules/term"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMinRedrawInterval = 100 * time.Millisecond
	// MinBarWidth is the narrowest bar kept before optional segments are dropped.
	MinBarWidth = 10
)

// Glyphs are the characters the bar is drawn with.
type Glyphs struct {
	Fill  rune
	Empty rune
	Left  rune
	Right rune
	// Color is an ansi style (for example "cyan" or "green+b") applied to the
	// filled segment on interactive terminals.
	Color string
}

func DefaultGlyphs() Glyphs {
	return Glyphs{Fill: '█', Empty: ' ', Left: '[', Right: ']'}
}

type options struct {
	glyphs      Glyphs
	showETA     bool
	interval    time.Duration
	smooth      bool
	summary     bool
	description string
	terminal    *term.Terminal
	now         func() time.Time
	logger      logrus.FieldLogger
}

type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		glyphs:   DefaultGlyphs(),
		showETA:  true,
		interval: DefaultMinRedrawInterval,
		summary:  true,
		now:      time.Now,
		logger:   logrus.StandardLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithGlyphs(g Glyphs) Option {
	return func(o *options) {
		o.glyphs = g
	}
}

func WithFill(r rune) Option {
	return func(o *options) {
		o.glyphs.Fill = r
	}
}

func WithEmpty(r rune) Option {
	return func(o *options) {
		o.glyphs.Empty = r
	}
}

func WithBrackets(left, right rune) Option {
	return func(o *options) {
		o.glyphs.Left = left
		o.glyphs.Right = right
	}
}

func WithColor(style string) Option {
	return func(o *options) {
		o.glyphs.Color = style
	}
}

func WithoutETA() Option {
	return func(o *options) {
		o.showETA = false
	}
}

// WithMinRedrawInterval sets the throttle between two redraws. Zero redraws
// on every update.
func WithMinRedrawInterval(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.interval = d
		}
	}
}

// WithSmooth draws the partially filled cell with eighth blocks. It only
// applies to the default fill glyph.
func WithSmooth() Option {
	return func(o *options) {
		o.smooth = true
	}
}

// WithoutSummary suppresses the plain line printed on close when the output
// is not a terminal.
func WithoutSummary() Option {
	return func(o *options) {
		o.summary = false
	}
}

func WithDescription(description string) Option {
	return func(o *options) {
		o.description = description
	}
}

// WithTerminal replaces the terminal detected from the output writer.
func WithTerminal(t *term.Terminal) Option {
	return func(o *options) {
		o.terminal = t
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
