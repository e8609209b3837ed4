package widget

import (
	"strings"

	"github.com/wesen/textscreen/pkg/format"
)

// Control is a zero-content widget used as a layout hint. Boxes never
// resize controls and never put padding in front of them.
type Control interface {
	Widget
	control()
}

// Break ends a row inside a flex box.
type Break interface {
	Control
	breakRow()
}

type controlBase struct{}

func (controlBase) control()                 {}
func (controlBase) Width() int               { return 0 }
func (controlBase) Height() int              { return 0 }
func (controlBase) Format(_, _ int) []string { return nil }

// SoftBreak ends a row and lets the row be justified to the full width.
type SoftBreak struct{ controlBase }

func (SoftBreak) breakRow() {}

// HardBreak ends a row and keeps it left-packed.
type HardBreak struct{ controlBase }

func (HardBreak) breakRow() {}

// IsControl reports whether w is a control widget.
func IsControl(w Widget) bool {
	_, ok := w.(Control)
	return ok
}

// IsBreak reports whether w is a soft or hard break.
func IsBreak(w Widget) bool {
	_, ok := w.(Break)
	return ok
}

// IsHardBreak reports whether w is a hard break.
func IsHardBreak(w Widget) bool {
	switch w.(type) {
	case HardBreak, *HardBreak:
		return true
	}
	return false
}

// Fill is a solid field of a repeated string. It has no natural size of
// its own and takes whatever size it is given.
type Fill struct {
	controlBase
	f format.Formatter
}

// NewFill creates a Fill of the given string. An empty string fills
// with '*'.
func NewFill(fill string) *Fill {
	if fill == "" {
		fill = "*"
	}
	return &Fill{f: format.Top(format.Left(nil, fill), fill)}
}

func (f *Fill) fill(natW, natH, width, height int) []string {
	if width < 0 {
		width = natW
	}
	if height < 0 {
		height = natH
	}
	return f.f.Format(nil, width, height)
}

// Format renders a width x height block of the fill string.
func (f *Fill) Format(width, height int) []string {
	return f.fill(0, 0, width, height)
}

// HRule is a horizontal line. Its height is the number of lines in the
// rule text.
type HRule struct {
	Fill
	rule string
}

// NewHRule creates a horizontal rule. An empty rule selects "-".
func NewHRule(rule string) *HRule {
	if rule == "" {
		rule = "-"
	}
	return &HRule{Fill: *NewFill(rule), rule: rule}
}

// Height is the number of lines in the rule text.
func (r *HRule) Height() int { return strings.Count(r.rule, "\n") + 1 }

// Format renders the rule across the given width.
func (r *HRule) Format(width, height int) []string {
	return r.fill(r.Width(), r.Height(), width, height)
}

// VRule is a vertical line. Its width is the rune length of the rule text.
type VRule struct {
	Fill
	rule string
}

// NewVRule creates a vertical rule. An empty rule selects "|".
func NewVRule(rule string) *VRule {
	if rule == "" {
		rule = "|"
	}
	return &VRule{Fill: *NewFill(rule), rule: rule}
}

// Width is the rune length of the rule text.
func (r *VRule) Width() int { return format.Len(r.rule) }

// Format renders the rule down the given height.
func (r *VRule) Format(width, height int) []string {
	return r.fill(r.Width(), r.Height(), width, height)
}
