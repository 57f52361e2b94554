package domain

import "time"

// RunStatus classifies how one execution ended.
type RunStatus int

// Run statuses.
const (
	RunSuccess RunStatus = iota
	RunNonZeroExit
	RunLaunchFailure
)

// String returns a short name for the status.
func (s RunStatus) String() string {
	switch s {
	case RunSuccess:
		return "success"
	case RunNonZeroExit:
		return "nonzero_exit"
	case RunLaunchFailure:
		return "launch_failure"
	default:
		return "unknown"
	}
}

// RunOutcome is the result of one execution of a task's script.
type RunOutcome struct {
	Status   RunStatus
	ExitCode int
	// Cause is set for launch failures.
	Cause error
	// Output is stdout and stderr interleaved in arrival order.
	Output     string
	Stdout     string
	Stderr     string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration is the wall time of the run.
func (o RunOutcome) Duration() time.Duration {
	return o.FinishedAt.Sub(o.StartedAt)
}
