package suite

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistry_LoadFile(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		r := NewRegistry()
		if err := r.LoadFile(filepath.Join(t.TempDir(), "suites.toml")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(r.Names()) != 2 {
			t.Errorf("expected built-ins only, got %v", r.Names())
		}
	})

	t.Run("adds custom suite", func(t *testing.T) {
		path := writeSuitesFile(t, `
[[suite]]
name = "integration"
description = "Integration tests against a live database"

[[suite.step]]
name = "it"
command = "pytest"
args = ["tests/integration"]
env = ["INTEGRATION=1"]
`)
		r := NewRegistry()
		if err := r.LoadFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s, ok := r.Get("integration")
		if !ok {
			t.Fatal("integration suite not loaded")
		}
		if s.Description != "Integration tests against a live database" {
			t.Errorf("unexpected description: %s", s.Description)
		}
		if len(s.Steps) != 1 || s.Steps[0].Command != "pytest" {
			t.Fatalf("unexpected steps: %+v", s.Steps)
		}
		if len(s.Steps[0].Env) != 1 || s.Steps[0].Env[0] != "INTEGRATION=1" {
			t.Errorf("unexpected step env: %v", s.Steps[0].Env)
		}
	})

	t.Run("overrides built-in suite", func(t *testing.T) {
		path := writeSuitesFile(t, `
[[suite]]
name = "static"

[[suite.step]]
name = "lint"
command = "ruff"
args = ["check", "."]
`)
		r := NewRegistry()
		if err := r.LoadFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s, _ := r.Get("static")
		if len(s.Steps) != 1 || s.Steps[0].Command != "ruff" {
			t.Errorf("expected overridden static suite, got %+v", s.Steps)
		}
	})

	t.Run("hooks are loaded", func(t *testing.T) {
		path := writeSuitesFile(t, `
[[suite]]
name = "unit"

[[suite.step]]
name = "tests"
command = "pytest"
args = ["--cov", "myia"]

[[suite.hook]]
name = "coverage-upload"
command = "codecov"
args = ["--required"]
`)
		r := NewRegistry()
		if err := r.LoadFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s, _ := r.Get("unit")
		if !s.HasHooks() {
			t.Fatal("expected hook on unit suite")
		}
		if s.Hooks[0].Command != "codecov" {
			t.Errorf("unexpected hook: %+v", s.Hooks[0])
		}
	})

	t.Run("invalid suite is rejected", func(t *testing.T) {
		path := writeSuitesFile(t, `
[[suite]]
name = "broken"
`)
		r := NewRegistry()
		if err := r.LoadFile(path); err == nil {
			t.Error("expected error for suite with no steps")
		}
	})

	t.Run("malformed toml is rejected", func(t *testing.T) {
		path := writeSuitesFile(t, `[[suite] name = `)
		r := NewRegistry()
		if err := r.LoadFile(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

// writeSuitesFile writes a suites.toml into a temp dir and returns its path
func writeSuitesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suites.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write suites file: %v", err)
	}
	return path
}
