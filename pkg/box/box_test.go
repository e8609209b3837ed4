package box

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/wesen/textscreen/pkg/widget"
)

// block is a solid widget of 'x' that records the width it was given.
// It always renders at its natural height.
type block struct {
	w, h     int
	assigned int
}

func newBlock(w int) *block { return &block{w: w, h: 1} }

func (b *block) Width() int  { return b.w }
func (b *block) Height() int { return b.h }

func (b *block) Format(width, _ int) []string {
	b.assigned = width
	if width < 0 {
		width = b.w
	}
	lines := make([]string, b.h)
	for i := range lines {
		lines[i] = strings.Repeat("x", width)
	}
	return lines
}

func TestAddAfterCloseFails(t *testing.T) {
	boxes := map[string]Container{
		"box":        &Box{},
		"horizontal": NewHorizontal(1, nil),
		"vertical":   NewVertical(1, nil),
		"text":       NewText(nil),
		"flex":       NewFlex(80, nil, 1, 1),
		"titled":     NewTitled("t", NewText(nil), "-"),
	}
	for name, b := range boxes {
		t.Run(name, func(t *testing.T) {
			if err := b.Add(widget.NewString("a")); err != nil {
				t.Fatalf("add before close: %v", err)
			}
			if b.Len() != 1 {
				t.Fatalf("expected len 1, got %d", b.Len())
			}
			if err := b.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}
			if err := b.Add(widget.NewString("b")); !errors.Is(err, ErrLocked) {
				t.Fatalf("expected ErrLocked, got %v", err)
			}
			if err := b.Remove(b.At(0)); !errors.Is(err, ErrLocked) {
				t.Fatalf("expected ErrLocked on remove, got %v", err)
			}
			if b.Len() != 1 {
				t.Fatalf("expected len 1 after failed add, got %d", b.Len())
			}
		})
	}
}

func TestRemove(t *testing.T) {
	b := &Box{}
	a, c := widget.NewString("a"), widget.NewString("c")
	_ = b.Add(a)
	_ = b.Add(c)

	if err := b.Remove(a); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if b.Len() != 1 || b.At(0) != widget.Widget(c) {
		t.Fatalf("unexpected children %v", b.Children())
	}
	if err := b.Remove(a); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAtNegative(t *testing.T) {
	b := &Box{}
	_ = b.Add(widget.NewString("a"))
	_ = b.HardBreak()
	if !widget.IsHardBreak(b.At(-1)) {
		t.Fatalf("expected last child to be a hard break, got %T", b.At(-1))
	}
}

func TestCloseIsIdempotentAndCascades(t *testing.T) {
	outer := NewVertical(0, nil)
	inner := NewText(nil)
	_ = outer.Add(inner)
	_ = inner.Print("pending")

	if err := outer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !inner.Closed() {
		t.Fatal("inner box should be closed by its parent")
	}
	if inner.Len() != 1 {
		t.Fatalf("expected pending text flushed, got %d children", inner.Len())
	}
	if err := outer.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestUseClosesOnError(t *testing.T) {
	b := NewText(nil)
	boom := errors.New("boom")

	err := Use(b, func(b *Text) error {
		_ = b.Print("half a line")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if !b.Closed() || b.Len() != 1 {
		t.Fatalf("expected closed box with 1 child, got closed=%v len=%d", b.Closed(), b.Len())
	}
}

func TestUseClosesOnPanic(t *testing.T) {
	b := NewText(nil)
	func() {
		defer func() { _ = recover() }()
		_ = Use(b, func(*Text) error { panic("boom") })
	}()
	if !b.Closed() {
		t.Fatal("expected box closed after panic")
	}
}

func TestDraw(t *testing.T) {
	outer := NewText(nil)
	inner, err := DrawText(outer)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if outer.Len() != 1 || outer.At(0) != widget.Widget(inner) {
		t.Fatal("drawn box should be the only child")
	}

	_ = outer.Close()
	if _, err := DrawText(outer); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	b := NewVertical(1, nil)
	_ = b.Println("alpha", "beta", "gamma")
	h, _ := Draw(b, NewHorizontal(1, nil))
	_ = h.Print("x")
	_ = h.SoftBreak()
	_ = b.Close()

	first := b.Format(20, 10)
	second := b.Format(20, 10)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("format not idempotent:\n%q\n%q", first, second)
	}
}
