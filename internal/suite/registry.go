package suite

import (
	"fmt"
	"sort"
	"strings"

	"csr/internal/domain"
)

// Registry holds the suites available to run, keyed by name
type Registry struct {
	suites map[string]domain.Suite
}

// NewRegistry creates a Registry pre-populated with the built-in suites
func NewRegistry() *Registry {
	r := &Registry{suites: make(map[string]domain.Suite)}
	for _, s := range builtinSuites() {
		r.suites[s.Name] = s
	}
	return r
}

// builtinSuites returns the two suites every project gets without a suites file:
// static analysis (lint + docstyle) and unit tests with coverage plus upload hook.
func builtinSuites() []domain.Suite {
	return []domain.Suite{
		{
			Name:        "static",
			Description: "Static analysis: lint and docstring style checks",
			Steps: []domain.Step{
				{Name: "lint", Command: "flake8", Args: []string{"."}},
				{Name: "docstyle", Command: "pydocstyle", Args: []string{"."}},
			},
		},
		{
			Name:        "unit",
			Description: "Unit tests with coverage collection",
			Steps: []domain.Step{
				{Name: "tests", Command: "pytest", Args: []string{"--cov", "."}},
			},
			Hooks: []domain.Step{
				{Name: "coverage-upload", Command: "codecov"},
			},
		},
	}
}

// Add registers a suite, replacing any existing suite with the same name
func (r *Registry) Add(s domain.Suite) error {
	if err := validate(s); err != nil {
		return err
	}
	r.suites[s.Name] = s
	return nil
}

// Get returns the suite with the given name
func (r *Registry) Get(name string) (domain.Suite, bool) {
	s, ok := r.suites[name]
	return s, ok
}

// Names returns all registered suite names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.suites))
	for name := range r.suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered suites ordered by name
func (r *Registry) All() []domain.Suite {
	suites := make([]domain.Suite, 0, len(r.suites))
	for _, name := range r.Names() {
		suites = append(suites, r.suites[name])
	}
	return suites
}

// Select resolves which suite to run. The --suite flag wins over the selector
// environment variable; an unset or unknown selector is a hard error so a
// misconfigured CI job fails instead of silently running nothing.
func (r *Registry) Select(flagValue, envValue, envName string) (domain.Suite, error) {
	name := flagValue
	source := "--suite flag"
	if name == "" {
		name = envValue
		source = envName + " environment variable"
	}
	if name == "" {
		return domain.Suite{}, fmt.Errorf("no suite selected: set %s or pass --suite (known suites: %s)",
			envName, strings.Join(r.Names(), ", "))
	}
	s, ok := r.suites[name]
	if !ok {
		return domain.Suite{}, fmt.Errorf("unknown suite %q from %s (known suites: %s)",
			name, source, strings.Join(r.Names(), ", "))
	}
	return s, nil
}

// validate checks that a suite is runnable
func validate(s domain.Suite) error {
	if s.Name == "" {
		return fmt.Errorf("suite has no name")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("suite %q has no steps", s.Name)
	}
	for _, step := range append(append([]domain.Step{}, s.Steps...), s.Hooks...) {
		if step.Name == "" {
			return fmt.Errorf("suite %q has a step with no name", s.Name)
		}
		if step.Command == "" {
			return fmt.Errorf("suite %q step %q has no command", s.Name, step.Name)
		}
	}
	return nil
}
