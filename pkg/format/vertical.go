package format

type vAlign int

const (
	alignTop vAlign = iota
	alignBottom
	alignMiddle
)

// vpad adds blank rows until the block reaches the target height.
type vpad struct {
	parent Formatter
	align  vAlign
	pad    string
}

// Top appends blank rows below the content.
func Top(parent Formatter, pad string) Formatter {
	return &vpad{parent: orIdentity(parent), align: alignTop, pad: orSpace(pad)}
}

// Bottom prepends blank rows above the content.
func Bottom(parent Formatter, pad string) Formatter {
	return &vpad{parent: orIdentity(parent), align: alignBottom, pad: orSpace(pad)}
}

// Middle puts floor(blanks/2) rows above the content and the rest below.
func Middle(parent Formatter, pad string) Formatter {
	return &vpad{parent: orIdentity(parent), align: alignMiddle, pad: orSpace(pad)}
}

func (f *vpad) Format(lines []string, width, height int) []string {
	in := f.parent.Format(lines, width, height)
	blanks := height - len(in)
	if blanks <= 0 {
		return append([]string(nil), in...)
	}

	blank := Repeat(f.pad, width)
	above := 0
	switch f.align {
	case alignBottom:
		above = blanks
	case alignMiddle:
		above = blanks / 2
	}

	out := make([]string, 0, height)
	for range above {
		out = append(out, blank)
	}
	out = append(out, in...)
	for len(out) < height {
		out = append(out, blank)
	}
	return out
}
