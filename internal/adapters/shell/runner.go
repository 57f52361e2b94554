// Package shell provides the script runner that executes a task with its interpreter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Wait blocks on output pipes after the child is killed.
const waitDelay = 2 * time.Second

// Runner implements ports.Runner using os/exec.
type Runner struct {
	log ports.TaskLog
}

// NewRunner creates a Runner that records every run in log.
func NewRunner(log ports.TaskLog) *Runner {
	return &Runner{log: log}
}

// Factory implements ports.RunnerFactory.
type Factory struct{}

// NewRunner returns a Runner bound to log.
func (Factory) NewRunner(log ports.TaskLog) ports.Runner {
	return NewRunner(log)
}

// Run executes "interpreter script" in the script's directory and waits for it.
func (r *Runner) Run(ctx context.Context, task *domain.Task) domain.RunOutcome {
	var stdout, stderr bytes.Buffer
	combined := &syncBuffer{}

	//nolint:gosec // G204: interpreter and script are the task's own descriptor
	cmd := exec.CommandContext(ctx, task.InterpreterPath, task.ScriptPath)
	cmd.Dir = filepath.Dir(task.ScriptPath)
	cmd.Stdout = io.MultiWriter(&stdout, combined)
	cmd.Stderr = io.MultiWriter(&stderr, combined)
	cmd.WaitDelay = waitDelay

	outcome := domain.RunOutcome{StartedAt: time.Now()}
	err := cmd.Run()
	outcome.FinishedAt = time.Now()
	outcome.Stdout = stdout.String()
	outcome.Stderr = stderr.String()
	outcome.Output = combined.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		outcome.Status = domain.RunSuccess
	case ctx.Err() != nil:
		// A clean exit that races cancellation is still a success: err is nil above.
		outcome.Status = domain.RunLaunchFailure
		outcome.ExitCode = -1
		outcome.Cause = zerr.Wrap(ctx.Err(), "run interrupted")
	case errors.As(err, &exitErr) && exitErr.ExitCode() >= 0:
		outcome.Status = domain.RunNonZeroExit
		outcome.ExitCode = exitErr.ExitCode()
		outcome.Cause = zerr.With(zerr.Wrap(err, "command failed"), "exit_code", outcome.ExitCode)
	case exitErr != nil:
		outcome.Status = domain.RunLaunchFailure
		outcome.ExitCode = -1
		outcome.Cause = zerr.With(zerr.Wrap(err, "script terminated by signal"), "script", task.ScriptPath)
	default:
		outcome.Status = domain.RunLaunchFailure
		outcome.ExitCode = -1
		outcome.Cause = zerr.With(zerr.Wrap(err, "failed to start script"), "script", task.ScriptPath)
	}

	r.record(outcome)
	return outcome
}

func (r *Runner) record(o domain.RunOutcome) {
	switch o.Status {
	case domain.RunSuccess:
		if out := strings.TrimSpace(o.Output); out != "" {
			r.log.Info("Output of the script:\n" + out)
		}
		r.log.Info("The script was run successfully.")
	case domain.RunNonZeroExit:
		r.log.Error(fmt.Sprintf("Script failed with return code %d", o.ExitCode), nil)
		r.log.Error("Output: "+strings.TrimSpace(o.Stdout), nil)
		r.log.Error("Error: "+strings.TrimSpace(o.Stderr), nil)
	default:
		r.log.Error("Unexpected error running script", o.Cause)
	}
	r.log.Outcome(o)
}

// syncBuffer interleaves stdout and stderr, which os/exec copies from separate goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
