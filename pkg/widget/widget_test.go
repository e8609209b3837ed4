package widget

import (
	"reflect"
	"testing"

	"github.com/wesen/textscreen/pkg/format"
)

func fixedCols(n int) format.Formatter {
	return format.ParagraphWithColumns(nil, func() int { return n })
}

func TestStringNaturalSize(t *testing.T) {
	s := NewStringWith("hello\nworld!", fixedCols(80))
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("expected 6x2, got %dx%d", s.Width(), s.Height())
	}

	got := s.Format(Auto, Auto)
	want := []string{"hello", "world!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestStringWrapsAtTerminal(t *testing.T) {
	s := NewStringWith("abcdefghij", fixedCols(4))
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("expected 4x3, got %dx%d", s.Width(), s.Height())
	}
}

func TestStringAssignedSize(t *testing.T) {
	s := NewStringWith("abcdefg", fixedCols(80))
	got := s.Format(5, 2)
	want := []string{"abcde", "fg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEmptyString(t *testing.T) {
	s := NewStringWith("", fixedCols(80))
	if s.Width() != 0 || s.Height() != 1 {
		t.Fatalf("expected 0x1, got %dx%d", s.Width(), s.Height())
	}
}

func TestControlClassification(t *testing.T) {
	tests := []struct {
		name                    string
		w                       Widget
		control, brk, hardBreak bool
	}{
		{"soft", SoftBreak{}, true, true, false},
		{"hard", HardBreak{}, true, true, true},
		{"hard ptr", &HardBreak{}, true, true, true},
		{"fill", NewFill("*"), true, false, false},
		{"hrule", NewHRule("-"), true, false, false},
		{"vrule", NewVRule("|"), true, false, false},
		{"string", NewString("x"), false, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if IsControl(tc.w) != tc.control {
				t.Errorf("IsControl = %v, want %v", IsControl(tc.w), tc.control)
			}
			if IsBreak(tc.w) != tc.brk {
				t.Errorf("IsBreak = %v, want %v", IsBreak(tc.w), tc.brk)
			}
			if IsHardBreak(tc.w) != tc.hardBreak {
				t.Errorf("IsHardBreak = %v, want %v", IsHardBreak(tc.w), tc.hardBreak)
			}
		})
	}
}

func TestBreaksRenderNothing(t *testing.T) {
	for _, w := range []Widget{SoftBreak{}, HardBreak{}} {
		if w.Width() != 0 || w.Height() != 0 || len(w.Format(10, 3)) != 0 {
			t.Fatalf("%T should be empty", w)
		}
	}
}

func TestFill(t *testing.T) {
	f := NewFill("#")
	if f.Width() != 0 || f.Height() != 0 {
		t.Fatalf("fill should have no natural size")
	}
	got := f.Format(3, 2)
	want := []string{"###", "###"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRules(t *testing.T) {
	h := NewHRule("=")
	if h.Width() != 0 || h.Height() != 1 {
		t.Fatalf("hrule: expected 0x1, got %dx%d", h.Width(), h.Height())
	}
	if got := h.Format(4, Auto); !reflect.DeepEqual(got, []string{"===="}) {
		t.Fatalf("hrule: got %q", got)
	}

	v := NewVRule("||")
	if v.Width() != 2 || v.Height() != 0 {
		t.Fatalf("vrule: expected 2x0, got %dx%d", v.Width(), v.Height())
	}
	if got := v.Format(Auto, 2); !reflect.DeepEqual(got, []string{"||", "||"}) {
		t.Fatalf("vrule: got %q", got)
	}
}
