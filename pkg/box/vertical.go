package box

import (
	"github.com/wesen/textscreen/pkg/format"
	"github.com/wesen/textscreen/pkg/widget"
)

// Vertical stacks its children top to bottom, each at the full width.
type Vertical struct {
	Writable
	padding int
	f       format.Formatter
}

// NewVertical creates a Vertical with padding blank rows after each
// content widget but the first. A nil formatter selects format.TopLeft.
func NewVertical(padding int, f format.Formatter) *Vertical {
	if f == nil {
		f = format.TopLeft()
	}
	return &Vertical{padding: max(padding, 0), f: f}
}

// Width is the widest child.
func (v *Vertical) Width() int {
	width := 0
	for _, w := range v.children {
		width = max(width, w.Width())
	}
	return width
}

// Height is the sum of child heights plus the padding rows.
func (v *Vertical) Height() int {
	height := 0
	for i, w := range v.children {
		height += w.Height()
		if padded(i, w) {
			height += v.padding
		}
	}
	return height
}

// Format renders the children stacked at the given size.
func (v *Vertical) Format(width, height int) []string {
	if width < 0 {
		width = v.Width()
	}
	if height < 0 {
		height = v.Height()
	}

	blank := format.Repeat(" ", width)
	var lines []string
	for i, w := range v.children {
		lines = append(lines, w.Format(width, widget.Auto)...)
		if padded(i, w) {
			for range v.padding {
				lines = append(lines, blank)
			}
		}
	}
	return v.f.Format(lines, width, height)
}

// Text is a Vertical without padding: one line widget per written line.
type Text struct {
	Vertical
}

// NewText creates a Text box. A nil formatter selects format.TopLeft.
func NewText(f format.Formatter) *Text {
	return &Text{Vertical: *NewVertical(0, f)}
}
