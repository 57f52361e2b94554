package ports

import "github.com/bmestref/pycronx/internal/core/domain"

// TaskLog is the append-only, per-task log that records runs and scheduling decisions.
//
//go:generate mockgen -source=tasklog.go -destination=mocks/mock_tasklog.go -package=mocks
type TaskLog interface {
	Info(msg string)
	Warn(msg string)
	// Error writes msg at error level; err may be nil.
	Error(msg string, err error)

	// Outcome writes the structured summary line of a finished run.
	Outcome(o domain.RunOutcome)

	// Close flushes and releases the underlying file.
	Close() error
}

// TaskLogOpener opens the log of a task by label.
type TaskLogOpener interface {
	// Open creates the log directory if needed and opens <logs>/<label>.log for appending.
	Open(label string) (TaskLog, error)
}
