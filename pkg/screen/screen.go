// Package screen is the root of a text report: a titled Flex box with a
// console area on top and titled sections packed below it.
//
//	s := screen.New("Report", os.Stdout)
//	s.Println("Some description goes here.")
//	sec, _ := s.DrawText("Totals")
//	sec.Println("42 items")
//	err := s.Close()
//
// Nothing is written to the sink until Close.
package screen

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/wesen/textscreen/internal/log"
	"github.com/wesen/textscreen/pkg/box"
	"github.com/wesen/textscreen/pkg/cellbuf"
	"github.com/wesen/textscreen/pkg/drawutil"
	"github.com/wesen/textscreen/pkg/widget"
)

type options struct {
	width       int
	hpadding    int
	vpadding    int
	rule        string
	sectionRule string
	styles      map[cellbuf.StyleKey]lipgloss.Style
}

// Option configures a Screen.
type Option func(*options)

// WithWidth sets the maximum row width of the section area. Zero or
// less uses the terminal width.
func WithWidth(cols int) Option {
	return func(o *options) { o.width = cols }
}

// WithPadding sets the spacing between sections: h columns between
// sections in a row and v blank lines between rows.
func WithPadding(h, v int) Option {
	return func(o *options) { o.hpadding, o.vpadding = h, v }
}

// WithRule sets the rule string around the screen title.
func WithRule(rule string) Option {
	return func(o *options) { o.rule = rule }
}

// WithSectionRule sets the rule string around section titles.
func WithSectionRule(rule string) Option {
	return func(o *options) { o.sectionRule = rule }
}

// WithStyles renders the output through lipgloss. Without it the output
// is plain text.
func WithStyles(styles map[cellbuf.StyleKey]lipgloss.Style) Option {
	return func(o *options) { o.styles = styles }
}

// Screen collects console text and sections and writes the laid out
// report to its sink when closed.
type Screen struct {
	sink        io.Writer
	sectionRule string
	styles      map[cellbuf.StyleKey]lipgloss.Style

	console *box.Text
	flex    *box.Flex
	root    *box.Titled

	closed bool
	lines  []string
}

// New creates a Screen that writes to sink on Close.
func New(title string, sink io.Writer, opts ...Option) *Screen {
	o := options{hpadding: 1, vpadding: 1, rule: "=", sectionRule: "-"}
	for _, opt := range opts {
		opt(&o)
	}

	console := box.NewText(nil)
	flex := box.NewFlex(o.width, nil, o.hpadding, o.vpadding)
	// A fresh box is never locked.
	_ = flex.Add(console)
	_ = flex.HardBreak()

	return &Screen{
		sink:        sink,
		sectionRule: o.sectionRule,
		styles:      o.styles,
		console:     console,
		flex:        flex,
		root:        box.NewTitled(title, flex, o.rule),
	}
}

// Console returns the text area that Print and Println write to.
func (s *Screen) Console() *box.Text { return s.console }

// Write writes p to the console.
func (s *Screen) Write(p []byte) (int, error) { return s.console.Write(p) }

// Print writes values to the console without ending the line.
func (s *Screen) Print(values ...any) error { return s.console.Print(values...) }

// Println writes each value to the console as its own line.
func (s *Screen) Println(values ...any) error { return s.console.Println(values...) }

// Section titles c and appends it to the section area.
func (s *Screen) Section(title string, c box.Container) (*box.Titled, error) {
	return box.Draw(s.flex, box.NewTitled(title, c, s.sectionRule))
}

// DrawText appends a titled, left-aligned text section.
func (s *Screen) DrawText(title string) (*box.Titled, error) {
	return s.Section(title, box.NewText(nil))
}

// DrawTable appends a titled table section with the given alignment
// codes.
func (s *Screen) DrawTable(title, alignment string) (*box.Titled, error) {
	t, err := box.NewTable(alignment)
	if err != nil {
		return nil, err
	}
	return s.Section(title, t)
}

// SoftBreak ends the current row of sections and justifies it.
func (s *Screen) SoftBreak() error { return s.flex.SoftBreak() }

// HardBreak ends the current row of sections without justifying it.
func (s *Screen) HardBreak() error { return s.flex.HardBreak() }

// Closed reports whether the screen has been closed.
func (s *Screen) Closed() bool { return s.closed }

// Lines returns the rendered rows, or nil before Close.
func (s *Screen) Lines() []string { return s.lines }

// Close closes every open box, lays out the report and writes it to the
// sink one line at a time. Closing twice is a no-op.
func (s *Screen) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.root.Close(); err != nil {
		return fmt.Errorf("closing screen: %w", err)
	}

	buf := drawutil.Grid(s.root.Format(widget.Auto, widget.Auto), cellbuf.StyleBody)
	buf.SetRowStyle(0, cellbuf.StyleTitle)
	s.lines = buf.Lines(s.styles)
	log.Debug("screen %q: %d lines, %d columns", s.root.Title(), buf.H, buf.W)

	if s.sink == nil {
		return nil
	}
	for _, line := range s.lines {
		if _, err := io.WriteString(s.sink, line+"\n"); err != nil {
			return fmt.Errorf("writing screen: %w", err)
		}
	}
	return nil
}
