package box

import (
	"fmt"

	"github.com/wesen/textscreen/pkg/format"
	"github.com/wesen/textscreen/pkg/widget"
)

// Titled decorates a Container with a centered title row drawn in a
// rule string:
//
//	------- Title -------
//
// Structural operations go straight to the content, so the title never
// shows up in Len, At or Children.
type Titled struct {
	title   string
	rule    string
	content Container
	frame   *Vertical
}

// NewTitled wraps content. An empty rule selects "-".
func NewTitled(title string, content Container, rule string) *Titled {
	if rule == "" {
		rule = "-"
	}
	heading := widget.NewStringWith(
		fmt.Sprintf("%s %s %s", rule, title, rule),
		format.Center(nil, rule),
	)
	frame := NewVertical(0, nil)
	frame.children = []widget.Widget{heading, content}
	return &Titled{title: title, rule: rule, content: content, frame: frame}
}

// Title returns the undecorated title.
func (t *Titled) Title() string { return t.title }

// Content returns the wrapped container.
func (t *Titled) Content() Container { return t.content }

// Close closes the content.
func (t *Titled) Close() error { return t.frame.Close() }

// Closed reports whether the box has been closed.
func (t *Titled) Closed() bool { return t.frame.Closed() }

// Width is the wider of the title row and the content.
func (t *Titled) Width() int { return t.frame.Width() }

// Height is the content height plus the title row.
func (t *Titled) Height() int { return t.frame.Height() }

// Format renders the title row above the content.
func (t *Titled) Format(width, height int) []string { return t.frame.Format(width, height) }

// Structural operations forward to the content.

func (t *Titled) Add(w widget.Widget) error    { return t.content.Add(w) }
func (t *Titled) Remove(w widget.Widget) error { return t.content.Remove(w) }
func (t *Titled) Len() int                     { return t.content.Len() }
func (t *Titled) At(i int) widget.Widget       { return t.content.At(i) }
func (t *Titled) Children() []widget.Widget    { return t.content.Children() }
func (t *Titled) SoftBreak() error             { return t.content.SoftBreak() }
func (t *Titled) HardBreak() error             { return t.content.HardBreak() }
func (t *Titled) HRule(rule string) error      { return t.content.HRule(rule) }
func (t *Titled) VRule(rule string) error      { return t.content.VRule(rule) }

func (t *Titled) writer() (Writer, error) {
	w, ok := t.content.(Writer)
	if !ok {
		return nil, fmt.Errorf("writing to %T: %w", t.content, ErrNotWritable)
	}
	return w, nil
}

// Write forwards to the content.
func (t *Titled) Write(p []byte) (int, error) {
	w, err := t.writer()
	if err != nil {
		return 0, err
	}
	return w.Write(p)
}

// WriteString forwards to the content.
func (t *Titled) WriteString(s string) (int, error) {
	w, err := t.writer()
	if err != nil {
		return 0, err
	}
	return w.WriteString(s)
}

// Print forwards to the content.
func (t *Titled) Print(values ...any) error {
	w, err := t.writer()
	if err != nil {
		return err
	}
	return w.Print(values...)
}

// Println forwards to the content.
func (t *Titled) Println(values ...any) error {
	w, err := t.writer()
	if err != nil {
		return err
	}
	return w.Println(values...)
}
