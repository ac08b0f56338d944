// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/antgroup/livebar/modules/strengthen"
	"github.com/antgroup/livebar/modules/term"
	"github.com/mgutz/ansi"
	"github.com/rivo/uniseg"
)

// snapshot is the part of the state a frame is computed from.
type snapshot struct {
	current     float64
	known       bool
	counted     bool
	count       int64
	total       int64
	elapsed     time.Duration
	description string
}

func (s *snapshot) percent() int {
	// epsilon keeps 0.29*100 from flooring to 28
	return int(math.Floor(s.current*100 + 1e-9))
}

func (s *snapshot) eta() (time.Duration, bool) {
	if s.current <= 0 {
		return 0, false
	}
	remaining := float64(s.elapsed) * (1/s.current - 1)
	// beyond time.Duration range the estimate is meaningless
	if math.IsInf(remaining, 0) || remaining >= math.MaxInt64 {
		return 0, false
	}
	return time.Duration(remaining), true
}

func (s *snapshot) rate() string {
	if !s.counted || s.count <= 0 || s.elapsed <= 0 {
		return ""
	}
	speed := float64(s.count) / s.elapsed.Seconds()
	if speed >= 1 {
		return fmt.Sprintf(" %.2f it/s", speed)
	}
	return fmt.Sprintf(" %.2f s/it", 1/speed)
}

func glyphWidth(r rune) int {
	if w := uniseg.StringWidth(string(r)); w > 0 {
		return w
	}
	return 1
}

// slider draws barWidth columns, filled = round(barWidth * fraction).
func slider(g *Glyphs, barWidth int, fraction float64, smooth, color bool) string {
	if barWidth <= 0 {
		return ""
	}
	var filled string
	used := 0
	if smooth && g.Fill == '█' {
		exact := float64(barWidth) * fraction
		full := int(math.Floor(exact))
		filled = strings.Repeat("█", full)
		used = full
		if partial := int((exact - float64(full)) * 8); partial > 0 && full < barWidth {
			filled += string(rune(0x2590 - partial))
			used++
		}
	} else {
		fw := glyphWidth(g.Fill)
		n := int(math.Round(float64(barWidth)*fraction)) / fw
		filled = strings.Repeat(string(g.Fill), n)
		used = n * fw
	}
	if color && len(g.Color) != 0 && len(filled) != 0 {
		filled = ansi.Color(filled, g.Color)
	}
	ew := glyphWidth(g.Empty)
	n := (barWidth - used) / ew
	return filled + strings.Repeat(string(g.Empty), n) + strings.Repeat(" ", barWidth-used-n*ew)
}

type segment struct {
	text     string
	optional bool
}

func segmentsWidth(segs []segment) int {
	w := 0
	for _, s := range segs {
		w += uniseg.StringWidth(s.text)
	}
	return w
}

func joinSegments(segs []segment) string {
	var b strings.Builder
	for _, s := range segs {
		_, _ = b.WriteString(s.text)
	}
	return b.String()
}

// dropOptional removes the last optional, non empty segment.
func dropOptional(segs []segment) ([]segment, bool) {
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i].optional && len(segs[i].text) != 0 {
			out := make([]segment, 0, len(segs))
			out = append(out, segs[:i]...)
			return append(out, segs[i+1:]...), true
		}
	}
	return segs, false
}

func describe(description string) string {
	if len(description) == 0 {
		return ""
	}
	return description + " "
}

// renderLine computes one frame of width columns. The layout is
//
//	description [████      ]  42% 5/12 2.31 it/s ETA 00:00:03
//
// and optional segments are dropped from the right (count, rate, ETA,
// description) until the bar is at least MinBarWidth wide.
func renderLine(s *snapshot, o *options, width int, color bool) string {
	if !s.known {
		return renderIndeterminate(s, o, width)
	}
	percent := fmt.Sprintf(" %3d%%", s.percent())
	var count, eta string
	if s.counted && s.total > 0 {
		count = fmt.Sprintf(" %d/%d", s.count, s.total)
	}
	if o.showETA {
		eta = " ETA --:--:--"
		if d, ok := s.eta(); ok {
			eta = " ETA " + strengthen.FormatClock(d)
		}
	}
	// order matters: dropOptional removes from the right.
	head := segment{text: describe(s.description), optional: true}
	tail := []segment{
		{text: percent},
		{text: eta, optional: true},
		{text: s.rate(), optional: true},
		{text: count, optional: true},
	}
	decorations := glyphWidth(o.glyphs.Left) + glyphWidth(o.glyphs.Right)
	for {
		available := width - decorations - head.width() - segmentsWidth(tail)
		if available >= MinBarWidth {
			return layoutLine(head, tail, o, available, s.current, color)
		}
		var ok bool
		if tail, ok = dropOptional(tail); ok {
			continue
		}
		if len(head.text) != 0 {
			head.text = ""
			continue
		}
		if available >= 0 {
			return layoutLine(head, tail, o, available, s.current, color)
		}
		return strings.TrimSpace(percent)
	}
}

func (s segment) width() int {
	return uniseg.StringWidth(s.text)
}

func layoutLine(head segment, tail []segment, o *options, barWidth int, fraction float64, color bool) string {
	// tail was built right to left for dropping, print it in reading order:
	// percent, count, rate, ETA.
	ordered := make([]segment, 0, len(tail))
	ordered = append(ordered, tail[0])
	for i := len(tail) - 1; i > 0; i-- {
		ordered = append(ordered, tail[i])
	}
	return strengthen.StrCat(
		head.text,
		string(o.glyphs.Left),
		slider(&o.glyphs, barWidth, fraction, o.smooth, color),
		string(o.glyphs.Right),
		joinSegments(ordered),
	)
}

// renderIndeterminate shows a spinner, the item count and the elapsed time.
func renderIndeterminate(s *snapshot, o *options, width int) string {
	segs := []segment{
		{text: describe(s.description), optional: true},
		{text: spinnerFrame(s.elapsed)},
	}
	if s.counted {
		segs = append(segs, segment{text: fmt.Sprintf(" %d it", s.count)})
	}
	segs = append(segs,
		segment{text: " elapsed " + strengthen.FormatClock(s.elapsed), optional: true},
		segment{text: s.rate(), optional: true})
	for segmentsWidth(segs) > width {
		var ok bool
		if segs, ok = dropOptional(segs); !ok {
			break
		}
	}
	return joinSegments(segs)
}

// renderSummary is the single plain line written when the output is not a
// terminal.
func renderSummary(s *snapshot) string {
	var b strings.Builder
	_, _ = b.WriteString(describe(s.description))
	switch {
	case s.known:
		fmt.Fprintf(&b, "%d%%", s.percent())
		if s.counted && s.total > 0 {
			fmt.Fprintf(&b, " %d/%d", s.count, s.total)
		}
	case s.counted:
		fmt.Fprintf(&b, "%d it", s.count)
	default:
		_, _ = b.WriteString("done")
	}
	_, _ = b.WriteString(" in ")
	_, _ = b.WriteString(strengthen.FormatClock(s.elapsed))
	return b.String()
}

// frameWidth is the number of columns a painted frame occupies.
func frameWidth(frame string) int {
	return term.StringWidth(frame)
}
