// Package drawutil copies rendered text blocks into a cellbuf.Buffer.
package drawutil

import (
	"github.com/wesen/textscreen/pkg/cellbuf"
	"github.com/wesen/textscreen/pkg/format"
)

// Blit writes lines into buf with the top-left corner at (x, y). Each
// line lands on its own row; cells outside the buffer are clipped.
func Blit(buf *cellbuf.Buffer, x, y int, lines []string, style cellbuf.StyleKey) {
	for i, li := range lines {
		buf.SetString(x, y+i, li, style)
	}
}

// Extent returns the width in runes of the widest line and the number
// of lines.
func Extent(lines []string) (w, h int) {
	for _, li := range lines {
		w = max(w, format.Len(li))
	}
	return w, len(lines)
}

// Grid allocates a buffer exactly large enough for lines and blits them
// at the origin.
func Grid(lines []string, style cellbuf.StyleKey) *cellbuf.Buffer {
	w, h := Extent(lines)
	buf := cellbuf.New(w, h, style)
	Blit(buf, 0, 0, lines, style)
	return buf
}
