package execution

import (
	"context"
	"fmt"
	"time"

	"csr/internal/config"
	"csr/internal/domain"
	"csr/internal/ui"
)

// Pipeline runs a suite's steps strictly in order, fail-fast, then its
// post-success hooks only when every main step passed.
type Pipeline struct {
	config   *config.Config
	runner   *Runner
	progress *ui.ProgressBar
}

// NewPipeline creates a new Pipeline
func NewPipeline(cfg *config.Config, runner *Runner) *Pipeline {
	return &Pipeline{
		config: cfg,
		runner: runner,
	}
}

// SetProgress sets the progress bar for the pipeline
func (p *Pipeline) SetProgress(progress *ui.ProgressBar) {
	p.progress = progress
}

// Execute runs the suite. The first failing step marks every later main step
// skipped; hooks run only after an all-passed main sequence and are subject
// to the same fail-fast rule. The returned error covers pipeline-level
// problems only; tool failures are reported through the results.
func (p *Pipeline) Execute(ctx context.Context, s domain.Suite, skipHooks bool) ([]domain.StepResult, time.Duration, error) {
	if len(s.Steps) == 0 {
		return nil, 0, fmt.Errorf("suite %q has no steps to run", s.Name)
	}

	startTime := time.Now()
	results := make([]domain.StepResult, 0, len(s.Steps)+len(s.Hooks))

	var passed, failed int
	failedAt := -1

	for i, step := range s.Steps {
		if failedAt >= 0 {
			results = append(results, domain.StepResult{
				Step:     step,
				Status:   domain.StepSkipped,
				ExitCode: -1,
			})
			continue
		}

		result := p.runner.Run(ctx, s.Name, step, false)
		results = append(results, result)

		if result.Failed() {
			failed++
			failedAt = i
		} else {
			passed++
		}
		if p.progress != nil {
			p.progress.Update(passed+failed, passed, failed)
		}

		if ctx.Err() != nil {
			break
		}
	}

	if failedAt < 0 && !skipHooks && ctx.Err() == nil {
		for _, hook := range s.Hooks {
			result := p.runner.Run(ctx, s.Name, hook, true)
			results = append(results, result)
			if result.Failed() {
				break
			}
		}
	}

	if p.progress != nil {
		p.progress.Finish()
	}
	return results, time.Since(startTime), ctx.Err()
}
