package format

import "github.com/wesen/textscreen/pkg/termwidth"

// paragraph re-chunks lines into slices no wider than the wrap width.
type paragraph struct {
	parent  Formatter
	columns func() int
}

// Paragraph wraps lines at the target width, capped at the terminal's
// usable width. Without a target width it wraps at the terminal width.
func Paragraph(parent Formatter) Formatter {
	return ParagraphWithColumns(parent, termwidth.Columns)
}

// ParagraphWithColumns is Paragraph with an explicit column provider.
func ParagraphWithColumns(parent Formatter, columns func() int) Formatter {
	if columns == nil {
		columns = termwidth.Columns
	}
	return &paragraph{parent: orIdentity(parent), columns: columns}
}

func (f *paragraph) Format(lines []string, width, height int) []string {
	cols := f.columns()
	if width > 0 {
		width = min(width, cols)
	} else {
		width = cols
	}
	in := f.parent.Format(lines, width, height)

	var out []string
	for _, li := range in {
		if width <= 0 {
			if li != "" {
				out = append(out, li)
			}
			continue
		}
		r := []rune(li)
		for len(r) > 0 {
			n := min(width, len(r))
			out = append(out, string(r[:n]))
			r = r[n:]
		}
	}

	// Paragraphs never have zero height.
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}
