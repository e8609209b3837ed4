package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in the string fields of s.
func ResolveEnvVars(s *Settings) {
	s.Title = expandEnv(s.Title)
	s.ScreenRule = expandEnv(s.ScreenRule)
	s.SectionRule = expandEnv(s.SectionRule)

	for k, spec := range s.Styles {
		spec.Foreground = expandEnv(spec.Foreground)
		spec.Background = expandEnv(spec.Background)
		s.Styles[k] = spec
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}
