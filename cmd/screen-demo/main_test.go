package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunReport(t *testing.T) {
	dir := t.TempDir()
	args := cliArgs{
		config: filepath.Join(dir, "missing.yaml"),
		env:    filepath.Join(dir, "missing.env"),
		width:  100,
	}

	var out bytes.Buffer
	if err := run(args, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if !strings.Contains(lines[0], "= Example Output =") {
		t.Fatalf("unexpected title row %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Some description goes here.") {
		t.Fatalf("unexpected console row %q", lines[1])
	}
	for _, want := range []string{"My First Box", "My Eighth Box", "John Q. Public", "Public"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output is missing %q", want)
		}
	}
	for i, li := range lines {
		if n := len([]rune(li)); n > 100 {
			t.Errorf("line %d is %d columns wide", i, n)
		}
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Error("unstyled run should not emit escape sequences")
	}
}

func TestRunConfigFromDotenv(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "screen.yaml")
	env := filepath.Join(dir, ".env")
	if err := os.WriteFile(cfg, []byte("title: \"${DEMO_TITLE}\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(env, []byte("DEMO_TITLE=Quarterly\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("DEMO_TITLE") })

	var out bytes.Buffer
	if err := run(cliArgs{config: cfg, env: env, width: 100}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if first, _, _ := strings.Cut(out.String(), "\n"); !strings.Contains(first, "= Quarterly =") {
		t.Fatalf("expected title from .env, got %q", first)
	}
}

func TestRunStyled(t *testing.T) {
	dir := t.TempDir()
	args := cliArgs{
		config: filepath.Join(dir, "missing.yaml"),
		env:    filepath.Join(dir, "missing.env"),
		width:  100,
		style:  true,
	}
	var out bytes.Buffer
	if err := run(args, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "\x1b[") {
		t.Fatal("styled run should emit escape sequences")
	}
}

func TestRunBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "screen.yaml")
	if err := os.WriteFile(cfg, []byte("styles:\n  footer: {bold: true}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := run(cliArgs{config: cfg, env: filepath.Join(dir, "x.env")}, &out); err == nil {
		t.Fatal("expected an error for an unknown style")
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be written on error, got %q", out.String())
	}
}
