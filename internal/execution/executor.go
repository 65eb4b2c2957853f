package execution

import (
	"context"
	"time"

	"csr/internal/domain"
)

// Executor runs a suite and returns per-step results
type Executor interface {
	Execute(ctx context.Context, s domain.Suite, skipHooks bool) ([]domain.StepResult, time.Duration, error)
}
