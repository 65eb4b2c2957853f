package suite

import (
	"path/filepath"
	"strings"

	"csr/internal/domain"
)

// FilterSteps narrows a suite's main steps by name pattern using wildcard matching.
// Supports patterns like "lint" or "*style*". Hooks are never filtered; they run
// or not based on the outcome of whatever steps remain.
func FilterSteps(s domain.Suite, pattern string) domain.Suite {
	if pattern == "" {
		return s
	}

	var kept []domain.Step
	for _, step := range s.Steps {
		if matchName(step.Name, pattern) {
			kept = append(kept, step)
		}
	}
	s.Steps = kept
	return s
}

// matchName matches a step name against a pattern with * and ? wildcards,
// falling back to substring checks for loose patterns.
func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		parts := strings.Split(pattern, "*")
		hasNonEmptyPart := false
		for _, part := range parts {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
