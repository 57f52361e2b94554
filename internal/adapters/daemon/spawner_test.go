package daemon_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bmestref/pycronx/internal/adapters/daemon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (*daemon.Manager, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "logs", "daemon.log")
	m, err := daemon.NewManager(logPath, daemon.WithExecutable("/bin/sh"))
	require.NoError(t, err)
	return m, logPath
}

// startChild runs a shell snippet owned by the test and reaps it on cleanup.
func startChild(t *testing.T, script string) *exec.Cmd {
	t.Helper()
	cmd := exec.Command("/bin/sh", "-c", script)
	require.NoError(t, cmd.Start())

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		<-done
	})
	return cmd
}

func TestManager_SpawnAppendsOutputToLog(t *testing.T) {
	m, logPath := newManager(t)

	pid, err := m.Spawn(context.Background(), []string{"-c", "echo spawned; echo oops >&2"})
	require.NoError(t, err)
	assert.Positive(t, pid)

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(logPath)
		return err == nil && strings.Contains(string(data), "spawned") && strings.Contains(string(data), "oops")
	}, 5*time.Second, 20*time.Millisecond)
}

func TestManager_SpawnMissingExecutable(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "daemon.log")
	m, err := daemon.NewManager(logPath, daemon.WithExecutable("/nonexistent/pycronx"))
	require.NoError(t, err)

	_, err = m.Spawn(context.Background(), []string{"run"})
	assert.ErrorContains(t, err, "failed to spawn daemon")
}

func TestManager_Alive(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	cmd := startChild(t, "sleep 30")
	assert.True(t, m.Alive(ctx, cmd.Process.Pid))
	assert.False(t, m.Alive(ctx, 0))
	assert.False(t, m.Alive(ctx, -1))
}

func TestManager_TerminateGraceful(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	cmd := startChild(t, "exec sleep 30")
	require.NoError(t, m.Terminate(ctx, cmd.Process.Pid, 5*time.Second))

	assert.Eventually(t, func() bool { return !m.Alive(ctx, cmd.Process.Pid) }, 5*time.Second, 20*time.Millisecond)
}

func TestManager_TerminateKillsAfterGrace(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	cmd := startChild(t, `trap "" TERM; exec sleep 30`)
	// Give the shell time to install the trap before signalling.
	time.Sleep(200 * time.Millisecond)

	start := time.Now()
	require.NoError(t, m.Terminate(ctx, cmd.Process.Pid, 300*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 300*time.Millisecond)

	assert.Eventually(t, func() bool { return !m.Alive(ctx, cmd.Process.Pid) }, 5*time.Second, 20*time.Millisecond)
}

func TestManager_TerminateDeadPid(t *testing.T) {
	m, _ := newManager(t)

	cmd := exec.Command("/bin/sh", "-c", "exit 0")
	require.NoError(t, cmd.Run())

	assert.NoError(t, m.Terminate(context.Background(), cmd.Process.Pid, time.Second))
}

func TestManager_Owns(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	// The trailing "true" keeps the shell from exec'ing sleep, so its argv survives.
	cmd := exec.Command("/bin/sh", "-c", "sleep 30; true", "run", "--id", "task-1")
	require.NoError(t, cmd.Start())
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})

	require.Eventually(t, func() bool { return m.Owns(ctx, cmd.Process.Pid, "task-1") }, 5*time.Second, 20*time.Millisecond)
	assert.False(t, m.Owns(ctx, cmd.Process.Pid, "task-2"))
	assert.False(t, m.Owns(ctx, cmd.Process.Pid, ""))

	other := startChild(t, "sleep 30; true")
	assert.False(t, m.Owns(ctx, other.Process.Pid, "task-1"), "a reused pid belongs to another command")
	assert.False(t, m.Owns(ctx, 0, "task-1"))
}
