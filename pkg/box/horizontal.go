package box

import (
	"math"
	"strings"

	"github.com/wesen/textscreen/pkg/format"
	"github.com/wesen/textscreen/pkg/widget"
)

// Horizontal lays its children out left to right, separated by padding
// columns, and justifies them to fill the width it is given.
type Horizontal struct {
	Writable
	padding int
	f       format.Formatter
}

// NewHorizontal creates a Horizontal with padding spaces between
// content widgets. A nil formatter selects format.TopLeft.
func NewHorizontal(padding int, f format.Formatter) *Horizontal {
	if f == nil {
		f = format.TopLeft()
	}
	return &Horizontal{padding: max(padding, 0), f: f}
}

var cell = format.TopLeft()

// padded reports whether a padding gap precedes the i-th child.
func padded(i int, w widget.Widget) bool {
	return i > 0 && !widget.IsControl(w)
}

// Width is the sum of child widths plus the padding gaps.
func (h *Horizontal) Width() int {
	width := 0
	for i, w := range h.children {
		width += w.Width()
		if padded(i, w) {
			width += h.padding
		}
	}
	return width
}

// Height is the tallest child.
func (h *Horizontal) Height() int {
	height := 0
	for _, w := range h.children {
		height = max(height, w.Height())
	}
	return height
}

// Format renders the children side by side at the given size.
func (h *Horizontal) Format(width, height int) []string {
	if height < 0 {
		height = h.Height()
	}
	if width < 0 {
		width = h.Width()
	}

	widths := h.justify(width)
	gap := strings.Repeat(" ", h.padding)
	rows := make([]strings.Builder, height)

	for i, w := range h.children {
		if padded(i, w) {
			for j := range rows {
				rows[j].WriteString(gap)
			}
		}
		cw := widths[i]
		if cw == widget.Auto {
			cw = w.Width()
		}
		// Pad the child to its cell so later columns line up.
		block := cell.Format(w.Format(widths[i], height), cw, height)
		for j, li := range block {
			if j >= height {
				break
			}
			rows[j].WriteString(li)
		}
	}

	lines := make([]string, height)
	for j := range rows {
		lines[j] = rows[j].String()
	}
	return h.f.Format(lines, width, height)
}

// justify assigns a width to each child so the row fills width. Controls
// keep widget.Auto. A row ending in a hard break is not justified.
//
// Each adjustment is rounded against the slack still left, so the
// assigned widths always add up to width exactly.
func (h *Horizontal) justify(width int) []int {
	widths := make([]int, len(h.children))
	for i := range widths {
		widths[i] = widget.Auto
	}
	if len(h.children) == 0 || widget.IsHardBreak(h.At(-1)) {
		return widths
	}

	natural := h.Width()
	slack := width - natural
	pos := 0
	for i, w := range h.children {
		if widget.IsControl(w) {
			continue
		}
		if i > 0 {
			pos += h.padding
		}

		cw := w.Width()
		adj := 0
		if remaining := natural - pos; remaining != 0 {
			adj = int(math.RoundToEven(float64(slack) * float64(cw) / float64(remaining)))
		}
		widths[i] = max(cw+adj, 0)

		slack -= adj
		pos += cw
	}
	return widths
}
