package box

import (
	"fmt"
	"strings"

	"github.com/wesen/textscreen/pkg/widget"
)

// Writable is a Box that accepts text. Each complete line written
// becomes a widget.String child at once; a trailing partial line waits
// in a buffer until more text or Close arrives.
type Writable struct {
	Box
	buf string
}

// WriteString appends s, committing every newline-terminated segment.
func (b *Writable) WriteString(s string) (int, error) {
	if b.closed {
		return 0, fmt.Errorf("writing: %w", ErrLocked)
	}
	b.buf += s
	segs := strings.Split(b.buf, "\n")
	b.buf = segs[len(segs)-1]
	for _, seg := range segs[:len(segs)-1] {
		if err := b.Add(widget.NewString(seg)); err != nil {
			return 0, err
		}
	}
	return len(s), nil
}

// Write implements io.Writer.
func (b *Writable) Write(p []byte) (int, error) {
	return b.WriteString(string(p))
}

// Print writes the text form of each value, without separators.
func (b *Writable) Print(values ...any) error {
	for _, v := range values {
		if _, err := b.WriteString(fmt.Sprint(v)); err != nil {
			return err
		}
	}
	return nil
}

// Println writes each value on a line of its own. With no values it
// writes a single newline.
func (b *Writable) Println(values ...any) error {
	if len(values) == 0 {
		_, err := b.WriteString("\n")
		return err
	}
	for _, v := range values {
		if _, err := b.WriteString(fmt.Sprint(v) + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Pending returns the buffered partial line.
func (b *Writable) Pending() string { return b.buf }

// Close commits any pending text, then closes the box.
func (b *Writable) Close() error {
	if b.closed {
		return nil
	}
	if b.buf != "" {
		if _, err := b.WriteString("\n"); err != nil {
			return err
		}
	}
	return b.Box.Close()
}
