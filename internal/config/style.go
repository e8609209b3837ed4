package config

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/wesen/textscreen/pkg/cellbuf"
)

var styleKeys = map[string]cellbuf.StyleKey{
	"body":  cellbuf.StyleBody,
	"title": cellbuf.StyleTitle,
}

// StyleSpec describes a lipgloss style in config form. Colors are any
// value lipgloss.Color accepts, e.g. "#ff8800" or "12".
type StyleSpec struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Bold       bool   `yaml:"bold"`
}

// Style builds the lipgloss style.
func (s StyleSpec) Style() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(s.Bold)
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	return st
}

// StyleMap maps the configured styles to cellbuf style keys. It returns
// nil when no styles are configured.
func (s *Settings) StyleMap() (map[cellbuf.StyleKey]lipgloss.Style, error) {
	if len(s.Styles) == 0 {
		return nil, nil
	}
	out := make(map[cellbuf.StyleKey]lipgloss.Style, len(s.Styles))
	for name, spec := range s.Styles {
		key, ok := styleKeys[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownStyle)
		}
		out[key] = spec.Style()
	}
	return out, nil
}
