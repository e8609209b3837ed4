// Package widget defines the unit of layout: something that reports a
// natural size and renders itself into a block of text lines at an
// assigned size.
package widget

import (
	"strings"

	"github.com/wesen/textscreen/pkg/format"
)

// Auto asks a widget to render at its natural width or height.
const Auto = -1

// Widget is a rectangular block of text.
type Widget interface {
	// Width is the natural width in runes.
	Width() int
	// Height is the natural height in lines.
	Height() int
	// Format renders the widget. Pass Auto for either dimension to use
	// the natural size.
	Format(width, height int) []string
}

// DefaultFormatter wraps text at the assigned width, capped at the
// terminal width. Padding to the full cell is left to the enclosing box
// so that the box's alignment applies.
func DefaultFormatter() format.Formatter {
	return format.Paragraph(nil)
}

// String is a widget holding literal text. Newlines split it into lines.
type String struct {
	text string
	f    format.Formatter
}

// NewString creates a String rendered with DefaultFormatter.
func NewString(text string) *String {
	return NewStringWith(text, nil)
}

// NewStringWith creates a String with a custom formatter. A nil
// formatter selects DefaultFormatter.
func NewStringWith(text string, f format.Formatter) *String {
	if f == nil {
		f = DefaultFormatter()
	}
	return &String{text: text, f: f}
}

// Text returns the literal text.
func (s *String) Text() string { return s.text }

func (s *String) lines() []string {
	return strings.Split(s.text, "\n")
}

// Width is the widest line after unconstrained formatting.
func (s *String) Width() int {
	w := 0
	for _, li := range s.f.Format(s.lines(), 0, 0) {
		w = max(w, format.Len(li))
	}
	return w
}

// Height is the line count after unconstrained formatting.
func (s *String) Height() int {
	return len(s.f.Format(s.lines(), 0, 0))
}

// Format renders the text at the given size.
func (s *String) Format(width, height int) []string {
	if width < 0 {
		width = s.Width()
	}
	if height < 0 {
		height = s.Height()
	}
	return s.f.Format(s.lines(), width, height)
}
