package format

type hAlign int

const (
	alignLeft hAlign = iota
	alignRight
	alignCenter
)

// hpad pads each line to the target width.
type hpad struct {
	parent Formatter
	align  hAlign
	pad    string
}

// Left pads each line on the right so the text sits flush left.
func Left(parent Formatter, pad string) Formatter {
	return &hpad{parent: orIdentity(parent), align: alignLeft, pad: orSpace(pad)}
}

// Right pads each line on the left so the text sits flush right.
func Right(parent Formatter, pad string) Formatter {
	return &hpad{parent: orIdentity(parent), align: alignRight, pad: orSpace(pad)}
}

// Center splits the slack of each line: floor(slack/2) on the left, the
// remainder on the right.
func Center(parent Formatter, pad string) Formatter {
	return &hpad{parent: orIdentity(parent), align: alignCenter, pad: orSpace(pad)}
}

func (f *hpad) Format(lines []string, width, height int) []string {
	in := f.parent.Format(lines, width, height)
	out := make([]string, len(in))
	for i, li := range in {
		slack := width - Len(li)
		if slack <= 0 {
			out[i] = li
			continue
		}
		switch f.align {
		case alignLeft:
			out[i] = li + Repeat(f.pad, slack)
		case alignRight:
			out[i] = Repeat(f.pad, slack) + li
		case alignCenter:
			l := slack / 2
			out[i] = Repeat(f.pad, l) + li + Repeat(f.pad, slack-l)
		}
	}
	return out
}
