// Package daemon starts detached task daemons and terminates them by pid.
package daemon

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/shirou/gopsutil/v3/process"
	"go.trai.ch/zerr"
)

const pollInterval = 100 * time.Millisecond

// Manager implements ports.ProcessManager.
type Manager struct {
	executablePath string
	logPath        string
}

// Option configures a Manager.
type Option func(*Manager)

// WithExecutable replaces the binary that Spawn starts.
func WithExecutable(path string) Option {
	return func(m *Manager) {
		m.executablePath = path
	}
}

// NewManager creates a Manager that starts the current executable and appends
// the daemons' stdout and stderr to logPath.
func NewManager(logPath string, opts ...Option) (*Manager, error) {
	m := &Manager{logPath: logPath}
	for _, opt := range opts {
		opt(m)
	}
	if m.executablePath == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to determine executable path")
		}
		m.executablePath = exe
	}
	return m, nil
}

// Spawn starts the executable with args in a new session and returns its pid.
func (m *Manager) Spawn(_ context.Context, args []string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(m.logPath), domain.DirPerm); err != nil {
		return 0, zerr.Wrap(err, "failed to create daemon log directory")
	}

	//nolint:gosec // G304: logPath is home + domain constant
	logFile, err := os.OpenFile(m.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to open daemon log")
	}

	//nolint:gosec // G204: the executable is our own binary
	cmd := exec.Command(m.executablePath, args...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		_ = logFile.Close()
		return 0, zerr.With(zerr.Wrap(err, domain.ErrDaemonSpawnFailed.Error()), "executable", m.executablePath)
	}

	go func() {
		_ = cmd.Wait()
		_ = logFile.Close()
	}()

	return cmd.Process.Pid, nil
}

// Alive reports whether pid is running. Zombies count as gone.
func (m *Manager) Alive(ctx context.Context, pid int) bool {
	if pid <= 0 {
		return false
	}

	p, err := process.NewProcessWithContext(ctx, int32(pid)) //nolint:gosec // pids fit in int32
	if err != nil {
		return false
	}

	status, err := p.StatusWithContext(ctx)
	if err != nil {
		return false
	}
	return !slices.Contains(status, process.Zombie)
}

// Owns reports whether pid is alive and its command line carries "run --id id",
// the arguments Spawn is given for every task daemon.
func (m *Manager) Owns(ctx context.Context, pid int, id string) bool {
	if id == "" || !m.Alive(ctx, pid) {
		return false
	}

	p, err := process.NewProcessWithContext(ctx, int32(pid)) //nolint:gosec // pids fit in int32
	if err != nil {
		return false
	}
	argv, err := p.CmdlineSliceWithContext(ctx)
	if err != nil {
		return false
	}
	return hasRunID(argv, id)
}

func hasRunID(argv []string, id string) bool {
	for i := 0; i+2 < len(argv); i++ {
		if argv[i] == "run" && argv[i+1] == "--id" && argv[i+2] == id {
			return true
		}
	}
	return false
}

// Terminate sends SIGTERM, waits up to grace for the process to exit, then kills it.
func (m *Manager) Terminate(ctx context.Context, pid int, grace time.Duration) error {
	if pid <= 0 {
		return nil
	}

	p, err := process.NewProcessWithContext(ctx, int32(pid)) //nolint:gosec // pids fit in int32
	if errors.Is(err, process.ErrorProcessNotRunning) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTerminateFailed.Error()), "pid", pid)
	}

	if err := p.TerminateWithContext(ctx); err != nil {
		if !m.Alive(ctx, pid) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrTerminateFailed.Error()), "pid", pid)
	}

	if m.waitExit(ctx, pid, grace) {
		return nil
	}

	if err := p.KillWithContext(ctx); err != nil && m.Alive(ctx, pid) {
		return zerr.With(zerr.Wrap(err, domain.ErrTerminateFailed.Error()), "pid", pid)
	}
	return nil
}

// waitExit polls until pid is gone or grace elapses.
func (m *Manager) waitExit(ctx context.Context, pid int, grace time.Duration) bool {
	deadline := time.NewTimer(grace)
	defer deadline.Stop()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if !m.Alive(ctx, pid) {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-deadline.C:
			return !m.Alive(ctx, pid)
		case <-ticker.C:
		}
	}
}
