package domain

import "time"

// StepStatus is the outcome of a single step
type StepStatus string

const (
	StepPassed  StepStatus = "passed"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped" // Never executed because an earlier step failed
)

// StepResult represents the result of executing one step
type StepResult struct {
	Step     Step          // The step that was executed
	Status   StepStatus    // Outcome
	ExitCode int           // Process exit code; -1 when the process never started
	Output   string        // Combined stdout/stderr from the tool
	Error    error         // Error if execution failed
	Duration time.Duration // Time taken to execute
	Hook     bool          // True when this step ran in the post-success phase
}

// Failed reports whether the step ran and did not pass
func (r StepResult) Failed() bool {
	return r.Status == StepFailed
}

// RunMeta contains metadata about a suite run
type RunMeta struct {
	Suite           string  `json:"suite"`
	TotalSteps      int     `json:"total_steps"`
	PassedSteps     int     `json:"passed_steps"`
	FailedSteps     int     `json:"failed_steps"`
	SkippedSteps    int     `json:"skipped_steps"`
	HooksRun        int     `json:"hooks_run"`
	Coverage        float64 `json:"coverage,omitempty"`
	HasCoverage     bool    `json:"has_coverage,omitempty"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// StepOutcome is the persisted form of one step's result
type StepOutcome struct {
	Name            string  `json:"name"`
	Command         string  `json:"command"`
	Status          string  `json:"status"`
	ExitCode        int     `json:"exit_code"`
	DurationSeconds float64 `json:"duration_seconds"`
	Hook            bool    `json:"hook,omitempty"`
}

// RunOutput is the complete persisted structure for a suite run
type RunOutput struct {
	Meta     RunMeta       `json:"meta"`
	Steps    []StepOutcome `json:"steps"`
	Failures []StepFailure `json:"failures"`
}

// Success reports whether every step and hook of the run passed
func (o *RunOutput) Success() bool {
	return o.Meta.FailedSteps == 0 && o.Meta.SkippedSteps == 0
}

// NewRunOutput builds the persisted form of a suite run from step results
func NewRunOutput(suite string, results []StepResult, failures []StepFailure, duration time.Duration) *RunOutput {
	output := &RunOutput{
		Meta: RunMeta{
			Suite:           suite,
			TotalSteps:      len(results),
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Failures: failures,
	}
	if failures == nil {
		output.Failures = []StepFailure{}
	}

	for _, r := range results {
		switch r.Status {
		case StepPassed:
			output.Meta.PassedSteps++
		case StepFailed:
			output.Meta.FailedSteps++
		case StepSkipped:
			output.Meta.SkippedSteps++
		}
		if r.Hook {
			output.Meta.HooksRun++
		}
		output.Steps = append(output.Steps, StepOutcome{
			Name:            r.Step.Name,
			Command:         r.Step.Command,
			Status:          string(r.Status),
			ExitCode:        r.ExitCode,
			DurationSeconds: r.Duration.Seconds(),
			Hook:            r.Hook,
		})
	}
	return output
}

// SetCoverage records a parsed coverage percentage on the run
func (o *RunOutput) SetCoverage(percent float64) {
	o.Meta.Coverage = percent
	o.Meta.HasCoverage = true
}
