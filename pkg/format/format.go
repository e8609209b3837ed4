// Package format provides composable transforms over blocks of text
// lines. Each formatter wraps a parent, runs it first, then applies one
// transform of its own: horizontal padding, vertical padding, or
// paragraph wrapping.
//
// A zero width or height means "unconstrained". Lengths are counted in
// runes; display width of wide characters is not considered.
package format

import (
	"strings"
	"unicode/utf8"
)

// Formatter maps a block of lines and a target size to a new block.
// Implementations never modify the input slice.
type Formatter interface {
	Format(lines []string, width, height int) []string
}

// Func adapts a plain function to the Formatter interface.
type Func func(lines []string, width, height int) []string

// Format calls f.
func (f Func) Format(lines []string, width, height int) []string {
	return f(lines, width, height)
}

// Identity returns its input unchanged.
var Identity Formatter = Func(func(lines []string, _, _ int) []string {
	return lines
})

func orIdentity(f Formatter) Formatter {
	if f == nil {
		return Identity
	}
	return f
}

func orSpace(pad string) string {
	if pad == "" {
		return " "
	}
	return pad
}

// Len returns the length of s in runes.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Repeat repeats pad until it is exactly n runes long. A non-positive n
// yields the empty string.
func Repeat(pad string, n int) string {
	if n <= 0 || pad == "" {
		return ""
	}
	k := Len(pad)
	s := strings.Repeat(pad, (n+k-1)/k)
	if k == 1 {
		return s
	}
	return string([]rune(s)[:n])
}

// Presets used throughout the box package.

// TopLeft pads lines on the right and rows at the bottom.
func TopLeft() Formatter { return Top(Left(nil, " "), " ") }

// TopRight pads lines on the left and rows at the bottom.
func TopRight() Formatter { return Top(Right(nil, " "), " ") }

// TopCenter centers lines horizontally and pads rows at the bottom.
func TopCenter() Formatter { return Top(Center(nil, " "), " ") }
