package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Lines renders each row of the buffer.
//
// With an empty styles map the rows are returned as plain text. Otherwise
// consecutive cells sharing a StyleKey are merged into a run and rendered
// with a single Style.Render call; runs whose key has no entry in styles
// are emitted unstyled.
func (b *Buffer) Lines(styles map[StyleKey]lipgloss.Style) []string {
	lines := make([]string, b.H)
	if b.W == 0 {
		return lines
	}
	for y := range b.H {
		if len(styles) == 0 {
			lines[y] = b.Row(y)
			continue
		}
		lines[y] = b.styledRow(y, styles)
	}
	return lines
}

func (b *Buffer) styledRow(y int, styles map[StyleKey]lipgloss.Style) string {
	var sb strings.Builder
	row := b.Cells[y]

	runStart := 0
	runStyle := row[0].Style
	for x := 1; x <= b.W; x++ {
		// Sentinel past the end flushes the last run.
		cur := StyleKey(-1)
		if x < b.W {
			cur = row[x].Style
		}
		if cur == runStyle {
			continue
		}

		chunk := make([]rune, x-runStart)
		for i := runStart; i < x; i++ {
			chunk[i-runStart] = row[i].Ch
		}
		if s, ok := styles[runStyle]; ok {
			sb.WriteString(s.Render(string(chunk)))
		} else {
			sb.WriteString(string(chunk))
		}
		runStart = x
		runStyle = cur
	}
	return sb.String()
}

// Render joins Lines with "\n". An empty buffer renders as "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}
	return strings.Join(b.Lines(styles), "\n")
}
