package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"csr/internal/config"
	"csr/internal/domain"
)

// Runner executes a single suite step
type Runner struct {
	config *config.Config
	stream io.Writer // When set, tool output is streamed here as well as captured
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// SetStream enables live streaming of tool output (the --verbose flag)
func (r *Runner) SetStream(w io.Writer) {
	r.stream = w
}

// Run executes one step of the named suite and captures its result.
// The step gets the process environment plus CI=true, CSR_SUITE and any
// step-specific variables, runs in the project directory, and is bounded
// by the configured step timeout.
func (r *Runner) Run(ctx context.Context, suiteName string, step domain.Step, hook bool) domain.StepResult {
	ctx, cancel := context.WithTimeout(ctx, r.config.StepTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, step.Command, step.Args...)
	cmd.Dir = r.config.ProjectPath

	// Set environment variables
	cmd.Env = os.Environ() // Start with current environment
	cmd.Env = append(cmd.Env, "CI=true", fmt.Sprintf("CSR_SUITE=%s", suiteName))
	cmd.Env = append(cmd.Env, step.Env...)

	var buf bytes.Buffer
	if r.stream != nil {
		w := io.MultiWriter(&buf, r.stream)
		cmd.Stdout = w
		cmd.Stderr = w
	} else {
		cmd.Stdout = &buf
		cmd.Stderr = &buf
	}

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	result := domain.StepResult{
		Step:     step,
		Status:   domain.StepPassed,
		ExitCode: 0,
		Output:   buf.String(),
		Duration: duration,
		Hook:     hook,
	}

	if err != nil {
		result.Status = domain.StepFailed
		result.ExitCode = exitCode(err)
		result.Error = err
		if ctx.Err() == context.DeadlineExceeded {
			result.Error = fmt.Errorf("step %q timed out after %s: %w", step.Name, r.config.StepTimeout, err)
		}
	}

	return result
}

// exitCode extracts the process exit code, -1 when the process never started
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
