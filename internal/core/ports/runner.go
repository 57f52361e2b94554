package ports

import (
	"context"

	"github.com/bmestref/pycronx/internal/core/domain"
)

// Runner executes a task's script once.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run spawns the script, waits for it and reports how it ended.
	// Failures are reported through the outcome, never as an error.
	// Cancelling ctx kills the child.
	Run(ctx context.Context, task *domain.Task) domain.RunOutcome
}

// RunnerFactory builds runners that report to a task log.
type RunnerFactory interface {
	NewRunner(log TaskLog) Runner
}
