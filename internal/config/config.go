// Package config loads screen settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wesen/textscreen/pkg/screen"
)

// WidthEnv overrides Settings.Width when set.
const WidthEnv = "TEXTSCREEN_WIDTH"

// ErrUnknownStyle is returned for a style entry that names no style key.
var ErrUnknownStyle = errors.New("unknown style")

// Settings controls how a screen is laid out and rendered.
type Settings struct {
	Title       string               `yaml:"title"`
	Width       int                  `yaml:"width"` // 0: terminal width
	HPadding    int                  `yaml:"hpadding"`
	VPadding    int                  `yaml:"vpadding"`
	ScreenRule  string               `yaml:"screen_rule"`
	SectionRule string               `yaml:"section_rule"`
	Styles      map[string]StyleSpec `yaml:"styles"` // "title" or "body"
}

// Defaults returns the settings used when no file is present.
func Defaults() Settings {
	return Settings{
		Title:       "Example Output",
		HPadding:    1,
		VPadding:    1,
		ScreenRule:  "=",
		SectionRule: "-",
	}
}

// Load reads settings from path on top of Defaults. A missing file
// yields the defaults.
func Load(path string) (*Settings, error) {
	s := Defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	ResolveEnvVars(&s)
	if _, err := s.StyleMap(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return &s, nil
}

// ApplyEnv applies environment overrides to s.
func ApplyEnv(s *Settings) error {
	v := os.Getenv(WidthEnv)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", WidthEnv, err)
	}
	s.Width = n
	return nil
}

// Options converts s into screen options.
func (s *Settings) Options() ([]screen.Option, error) {
	opts := []screen.Option{
		screen.WithWidth(s.Width),
		screen.WithPadding(s.HPadding, s.VPadding),
		screen.WithRule(s.ScreenRule),
		screen.WithSectionRule(s.SectionRule),
	}
	styles, err := s.StyleMap()
	if err != nil {
		return nil, err
	}
	if len(styles) > 0 {
		opts = append(opts, screen.WithStyles(styles))
	}
	return opts, nil
}
