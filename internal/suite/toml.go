package suite

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"csr/internal/domain"
)

// suitesFile mirrors the TOML suite-definition file
type suitesFile struct {
	Suites []suiteDef `toml:"suite"`
}

type suiteDef struct {
	Name        string    `toml:"name"`
	Description string    `toml:"description"`
	Steps       []stepDef `toml:"step"`
	Hooks       []stepDef `toml:"hook"`
}

type stepDef struct {
	Name    string   `toml:"name"`
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	Env     []string `toml:"env"`
}

// LoadFile merges suite definitions from a TOML file into the registry.
// Definitions with a built-in name override the built-in. A missing file is
// not an error; projects without custom suites just use the built-ins.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read suites file: %w", err)
	}

	var file suitesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse suites file %s: %w", path, err)
	}

	for _, def := range file.Suites {
		if err := r.Add(def.toSuite()); err != nil {
			return fmt.Errorf("suites file %s: %w", path, err)
		}
	}
	return nil
}

// toSuite converts a file definition to a domain suite
func (d suiteDef) toSuite() domain.Suite {
	s := domain.Suite{
		Name:        d.Name,
		Description: d.Description,
	}
	for _, st := range d.Steps {
		s.Steps = append(s.Steps, st.toStep())
	}
	for _, h := range d.Hooks {
		s.Hooks = append(s.Hooks, h.toStep())
	}
	return s
}

func (d stepDef) toStep() domain.Step {
	return domain.Step{
		Name:    d.Name,
		Command: d.Command,
		Args:    d.Args,
		Env:     d.Env,
	}
}
