package ports

import (
	"context"
	"time"
)

// ProcessManager spawns and terminates detached daemon processes.
//
//go:generate mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessManager interface {
	// Spawn starts a detached process and returns its pid.
	Spawn(ctx context.Context, args []string) (int, error)

	// Owns reports whether pid is a running daemon started for the task id.
	// A pid reused by an unrelated process is not owned.
	Owns(ctx context.Context, pid int, id string) bool

	// Terminate sends SIGTERM, waits up to grace, then kills.
	// A pid that is already gone is not an error.
	Terminate(ctx context.Context, pid int, grace time.Duration) error
}
