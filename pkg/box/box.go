// Package box composes widgets into larger widgets.
//
// Every box computes a natural size bottom-up from its children and,
// when formatted, distributes the size it is assigned back down. Boxes
// are mutable until closed; closing freezes a box and every still open
// box inside it.
package box

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/wesen/textscreen/pkg/widget"
)

var (
	// ErrLocked is returned when a closed box is modified.
	ErrLocked = errors.New("box is closed")
	// ErrInvalidAlignment is returned for a table alignment code other
	// than l, r or c.
	ErrInvalidAlignment = errors.New("invalid alignment code")
	// ErrColumnCount is returned when a table row has more values than
	// the table has columns.
	ErrColumnCount = errors.New("too many values for table columns")
	// ErrNotWritable is returned when text is written to a box that
	// does not accept text.
	ErrNotWritable = errors.New("box does not accept text")
	// ErrNotFound is returned when removing a widget that is not a child.
	ErrNotFound = errors.New("widget not in box")
)

// Container is a widget holding an ordered list of child widgets.
type Container interface {
	widget.Widget
	io.Closer

	Add(w widget.Widget) error
	Remove(w widget.Widget) error
	Len() int
	At(i int) widget.Widget
	Children() []widget.Widget

	SoftBreak() error
	HardBreak() error
	HRule(rule string) error
	VRule(rule string) error
}

// Writer is a Container that turns written text into line widgets.
type Writer interface {
	Container
	io.Writer
	io.StringWriter

	Print(values ...any) error
	Println(values ...any) error
}

// Box is an ordered, closable list of widgets. A bare Box has no layout
// of its own; Horizontal, Vertical and Flex give it one.
type Box struct {
	children []widget.Widget
	closed   bool
}

// Add appends w.
func (b *Box) Add(w widget.Widget) error {
	if b.closed {
		return fmt.Errorf("adding %T: %w", w, ErrLocked)
	}
	b.children = append(b.children, w)
	return nil
}

// Remove deletes the first occurrence of w.
func (b *Box) Remove(w widget.Widget) error {
	if b.closed {
		return fmt.Errorf("removing %T: %w", w, ErrLocked)
	}
	i := slices.Index(b.children, w)
	if i < 0 {
		return fmt.Errorf("removing %T: %w", w, ErrNotFound)
	}
	b.children = slices.Delete(b.children, i, i+1)
	return nil
}

// Len returns the number of children.
func (b *Box) Len() int { return len(b.children) }

// At returns the i-th child. Negative indexes count from the end.
func (b *Box) At(i int) widget.Widget {
	if i < 0 {
		i += len(b.children)
	}
	return b.children[i]
}

// Children returns a snapshot of the children in render order.
func (b *Box) Children() []widget.Widget {
	return slices.Clone(b.children)
}

// Closed reports whether the box has been closed.
func (b *Box) Closed() bool { return b.closed }

// Close closes every open child that is an io.Closer, then locks the
// box. Closing a closed box is a no-op.
func (b *Box) Close() error {
	if b.closed {
		return nil
	}
	var errs []error
	for _, w := range b.children {
		if c, ok := w.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	b.closed = true
	return errors.Join(errs...)
}

// SoftBreak appends a soft break.
func (b *Box) SoftBreak() error { return b.Add(widget.SoftBreak{}) }

// HardBreak appends a hard break.
func (b *Box) HardBreak() error { return b.Add(widget.HardBreak{}) }

// HRule appends a horizontal rule. An empty rule selects "-".
func (b *Box) HRule(rule string) error { return b.Add(widget.NewHRule(rule)) }

// VRule appends a vertical rule. An empty rule selects "|".
func (b *Box) VRule(rule string) error { return b.Add(widget.NewVRule(rule)) }

// Width is zero for a bare Box.
func (b *Box) Width() int { return 0 }

// Height is zero for a bare Box.
func (b *Box) Height() int { return 0 }

// Format renders nothing for a bare Box.
func (b *Box) Format(_, _ int) []string { return nil }

// Use runs fn with c and closes c on every exit path, including a
// panic inside fn. Errors from fn and Close are joined.
func Use[C io.Closer](c C, fn func(C) error) (err error) {
	defer func() {
		if cerr := c.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(c)
}

// Draw appends w to c and returns it for further use.
func Draw[W widget.Widget](c Container, w W) (W, error) {
	return w, c.Add(w)
}

// DrawText appends a new left-aligned Text box to c.
func DrawText(c Container) (*Text, error) {
	return Draw(c, NewText(nil))
}

// DrawTable appends a new Table with the given alignment codes to c.
func DrawTable(c Container, alignment string) (*Table, error) {
	t, err := NewTable(alignment)
	if err != nil {
		return nil, err
	}
	return Draw(c, t)
}
