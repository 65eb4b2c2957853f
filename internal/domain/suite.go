package domain

// Step is one external command a suite runs
type Step struct {
	Name    string   // Short step name, e.g. "lint"
	Command string   // Executable to invoke
	Args    []string // Arguments passed to the command
	Env     []string // Extra KEY=VALUE pairs appended to the environment
}

// Suite is a named, ordered list of verification steps
type Suite struct {
	Name        string // Selector value, e.g. "static" or "unit"
	Description string // One-line description shown by list
	Steps       []Step // Main steps, run in order, fail-fast
	Hooks       []Step // Post-success hooks, run only if every step passed
}

// HasHooks reports whether the suite defines post-success hooks
func (s Suite) HasHooks() bool {
	return len(s.Hooks) > 0
}
