package suite

import (
	"strings"
	"testing"

	"csr/internal/domain"
)

func TestRegistry_Select(t *testing.T) {
	tests := []struct {
		name      string
		flagValue string
		envValue  string
		expected  string // Expected suite name, empty means error
		errPart   string // Substring expected in the error
	}{
		{
			name:     "env selects static",
			envValue: "static",
			expected: "static",
		},
		{
			name:     "env selects unit",
			envValue: "unit",
			expected: "unit",
		},
		{
			name:      "flag wins over env",
			flagValue: "static",
			envValue:  "unit",
			expected:  "static",
		},
		{
			name:    "nothing selected",
			errPart: "no suite selected",
		},
		{
			name:     "unknown env value",
			envValue: "integration",
			errPart:  `unknown suite "integration"`,
		},
		{
			name:      "unknown flag value",
			flagValue: "nope",
			envValue:  "unit",
			errPart:   `unknown suite "nope"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			s, err := r.Select(tt.flagValue, tt.envValue, "TEST_SUITE")
			if tt.errPart != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got suite %q", tt.errPart, s.Name)
				}
				if !strings.Contains(err.Error(), tt.errPart) {
					t.Errorf("expected error containing %q, got %q", tt.errPart, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Name != tt.expected {
				t.Errorf("expected suite %s, got %s", tt.expected, s.Name)
			}
		})
	}
}

func TestRegistry_SelectErrorListsSuites(t *testing.T) {
	r := NewRegistry()
	_, err := r.Select("", "", "TEST_SUITE")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, name := range []string{"static", "unit", "TEST_SUITE"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("expected error to mention %q, got %q", name, err.Error())
		}
	}
}

func TestBuiltinSuites(t *testing.T) {
	r := NewRegistry()

	t.Run("static has lint and docstyle", func(t *testing.T) {
		s, ok := r.Get("static")
		if !ok {
			t.Fatal("static suite not registered")
		}
		if len(s.Steps) != 2 {
			t.Fatalf("expected 2 steps, got %d", len(s.Steps))
		}
		if s.Steps[0].Name != "lint" || s.Steps[1].Name != "docstyle" {
			t.Errorf("expected lint then docstyle, got %s then %s", s.Steps[0].Name, s.Steps[1].Name)
		}
		if s.HasHooks() {
			t.Error("static suite should have no hooks")
		}
	})

	t.Run("unit has coverage upload hook", func(t *testing.T) {
		s, ok := r.Get("unit")
		if !ok {
			t.Fatal("unit suite not registered")
		}
		if len(s.Steps) != 1 {
			t.Fatalf("expected 1 step, got %d", len(s.Steps))
		}
		if !s.HasHooks() {
			t.Fatal("unit suite should have a hook")
		}
		if s.Hooks[0].Name != "coverage-upload" {
			t.Errorf("expected coverage-upload hook, got %s", s.Hooks[0].Name)
		}
	})
}

func TestRegistry_Add(t *testing.T) {
	tests := []struct {
		name    string
		suite   domain.Suite
		wantErr bool
	}{
		{
			name: "valid suite",
			suite: domain.Suite{
				Name:  "integration",
				Steps: []domain.Step{{Name: "it", Command: "pytest", Args: []string{"tests/it"}}},
			},
		},
		{
			name:    "no name",
			suite:   domain.Suite{Steps: []domain.Step{{Name: "x", Command: "true"}}},
			wantErr: true,
		},
		{
			name:    "no steps",
			suite:   domain.Suite{Name: "empty"},
			wantErr: true,
		},
		{
			name: "step without command",
			suite: domain.Suite{
				Name:  "bad",
				Steps: []domain.Step{{Name: "x"}},
			},
			wantErr: true,
		},
		{
			name: "hook without command",
			suite: domain.Suite{
				Name:  "bad-hook",
				Steps: []domain.Step{{Name: "x", Command: "true"}},
				Hooks: []domain.Step{{Name: "h"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Add(tt.suite)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	if len(names) != 2 {
		t.Fatalf("expected 2 built-in suites, got %d", len(names))
	}
	// Sorted order
	if names[0] != "static" || names[1] != "unit" {
		t.Errorf("expected [static unit], got %v", names)
	}
}
