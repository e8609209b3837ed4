package box

import (
	"github.com/wesen/textscreen/internal/log"
	"github.com/wesen/textscreen/pkg/format"
	"github.com/wesen/textscreen/pkg/termwidth"
	"github.com/wesen/textscreen/pkg/widget"
)

// Flex collects widgets and, when closed, packs them greedily into rows
// no wider than a maximum width. The packed rows drive rendering; the
// flat child list stays available for inspection.
type Flex struct {
	Writable
	maxWidth int
	hpadding int
	vpadding int
	f        format.Formatter

	rows *Vertical
}

// NewFlex creates a Flex. A non-positive maxWidth selects the terminal
// width at the time the box is closed. A nil formatter selects
// format.TopLeft.
func NewFlex(maxWidth int, f format.Formatter, hpadding, vpadding int) *Flex {
	if f == nil {
		f = format.TopLeft()
	}
	return &Flex{maxWidth: maxWidth, hpadding: hpadding, vpadding: vpadding, f: f}
}

// MaxWidth returns the configured maximum row width.
func (x *Flex) MaxWidth() int { return x.maxWidth }

// Rows returns the packed rows, or nil before Close.
func (x *Flex) Rows() *Vertical { return x.rows }

// Close closes the children, then packs them into rows.
func (x *Flex) Close() error {
	if x.closed {
		return nil
	}
	err := x.Writable.Close()
	x.pack()
	return err
}

func (x *Flex) pack() {
	limit := x.maxWidth
	if limit <= 0 {
		limit = termwidth.Columns()
	}

	col := NewVertical(x.vpadding, x.f)
	row := NewHorizontal(x.hpadding, x.f)
	commit := func() {
		_ = col.Add(row)
		row = NewHorizontal(x.hpadding, x.f)
	}

	for _, w := range x.children {
		_ = row.Add(w)
		switch {
		case widget.IsBreak(w):
			commit()
		case row.Width() > limit:
			// Too wide: move w to a fresh row. A widget wider than the
			// limit still gets a row of its own, and no empty row is
			// committed ahead of it.
			_ = row.Remove(w)
			if row.Len() > 0 {
				commit()
			}
			_ = row.Add(w)
		}
	}
	if row.Len() > 0 {
		_ = row.HardBreak()
		commit()
	}

	_ = col.Close()
	x.rows = col
	log.Debug("flex: packed %d widgets into %d rows (limit %d)", x.Len(), col.Len(), limit)
}

// Width is the width of the packed rows; zero before Close.
func (x *Flex) Width() int {
	if x.rows == nil {
		return 0
	}
	return x.rows.Width()
}

// Height is the height of the packed rows; zero before Close.
func (x *Flex) Height() int {
	if x.rows == nil {
		return 0
	}
	return x.rows.Height()
}

// Format renders the packed rows; nothing before Close.
func (x *Flex) Format(width, height int) []string {
	if x.rows == nil {
		return nil
	}
	return x.rows.Format(width, height)
}
