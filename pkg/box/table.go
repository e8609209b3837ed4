package box

import (
	"fmt"

	"github.com/wesen/textscreen/pkg/format"
)

// Table is a row of column-aligned Text boxes. Values written to the
// table are spread across the columns by position.
type Table struct {
	Horizontal
	columns []*Text
}

// NewTable creates a table with one column per alignment code: 'l'
// (left), 'r' (right) or 'c' (center).
func NewTable(alignment string) (*Table, error) {
	t := &Table{Horizontal: *NewHorizontal(1, format.TopCenter())}
	for _, code := range alignment {
		var f format.Formatter
		switch code {
		case 'l':
			f = format.TopLeft()
		case 'r':
			f = format.TopRight()
		case 'c':
			f = format.TopCenter()
		default:
			return nil, fmt.Errorf("%q: %w", code, ErrInvalidAlignment)
		}
		col := NewText(f)
		t.columns = append(t.columns, col)
		t.children = append(t.children, col)
	}
	return t, nil
}

// Columns returns the number of columns.
func (t *Table) Columns() int { return len(t.columns) }

// Column returns the i-th column.
func (t *Table) Column(i int) *Text { return t.columns[i] }

func (t *Table) fan(values []any, write func(c *Text, v any) error) error {
	if t.closed {
		return fmt.Errorf("writing: %w", ErrLocked)
	}
	if len(values) > len(t.columns) {
		return fmt.Errorf("%d values, %d columns: %w", len(values), len(t.columns), ErrColumnCount)
	}
	for i, v := range values {
		if err := write(t.columns[i], v); err != nil {
			return err
		}
	}
	return nil
}

// Print writes values[i] into column i.
func (t *Table) Print(values ...any) error {
	return t.fan(values, func(c *Text, v any) error { return c.Print(v) })
}

// Println writes values[i] into column i as a complete line.
func (t *Table) Println(values ...any) error {
	return t.fan(values, func(c *Text, v any) error { return c.Println(v) })
}

// WriteString writes s into the first column.
func (t *Table) WriteString(s string) (int, error) {
	if err := t.Print(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// Write writes p into the first column.
func (t *Table) Write(p []byte) (int, error) {
	return t.WriteString(string(p))
}

// HRule adds the rule to every column so the rules line up.
func (t *Table) HRule(rule string) error {
	if t.closed {
		return fmt.Errorf("adding rule: %w", ErrLocked)
	}
	for _, c := range t.columns {
		if err := c.HRule(rule); err != nil {
			return err
		}
	}
	return nil
}
