// Package cellbuf holds a rendered screen as a fixed-size grid of runes,
// each tagged with a StyleKey.
//
// The grid itself knows nothing about colors. Callers that want styled
// output pass a map[StyleKey]lipgloss.Style to Lines or Render; without
// one the grid renders as plain text.
//
// All runes are assumed to be single-width.
package cellbuf

// StyleKey identifies a visual style. The caller maps keys to
// lipgloss.Style values at render time.
type StyleKey int

// Style keys assigned by the screen renderer.
const (
	StyleBody StyleKey = iota
	StyleTitle
)

// Cell is a single character in the grid with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New creates a Buffer of the given size, filled with spaces in the
// given default style. Negative sizes are clamped to zero.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: defaultStyle}
		}
		b.Cells[y] = row
	}
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes a single character at (x, y). Out-of-bounds writes are
// ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s starting at (x, y), one cell per rune. Runes that
// fall outside the buffer are skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// SetRowStyle retags every cell of row y without touching its runes.
func (b *Buffer) SetRowStyle(y int, style StyleKey) {
	if y < 0 || y >= b.H {
		return
	}
	for x := range b.Cells[y] {
		b.Cells[y][x].Style = style
	}
}

// Row returns the runes of row y as a string, or "" when y is out of
// range.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.H {
		return ""
	}
	rs := make([]rune, b.W)
	for x, c := range b.Cells[y] {
		rs[x] = c.Ch
	}
	return string(rs)
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}
