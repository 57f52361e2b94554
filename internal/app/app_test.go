package app_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/bmestref/pycronx/internal/app"
	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// recordingLog is a test double for ports.TaskLog that keeps every line.
type recordingLog struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLog) Info(msg string) { r.add("INF " + msg) }
func (r *recordingLog) Warn(msg string) { r.add("WRN " + msg) }
func (r *recordingLog) Error(msg string, err error) {
	if err != nil {
		msg += ": " + err.Error()
	}
	r.add("ERR " + msg)
}
func (r *recordingLog) Outcome(o domain.RunOutcome) { r.add("OUT " + o.Status.String()) }
func (r *recordingLog) Close() error                { return nil }

func (r *recordingLog) add(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

func (r *recordingLog) count(substr string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, l := range r.lines {
		if strings.Contains(l, substr) {
			n++
		}
	}
	return n
}

type fixture struct {
	ctrl      *gomock.Controller
	logger    *mocks.MockLogger
	runners   *mocks.MockRunnerFactory
	runner    *mocks.MockRunner
	logs      *mocks.MockTaskLogOpener
	icons     *mocks.MockIconProvider
	indicator *mocks.MockStatusIndicator
	startup   *mocks.MockStartupRegistrar
	registry  *mocks.MockRegistry
	processes *mocks.MockProcessManager
	watcher   *mocks.MockFileWatcher
	log       *recordingLog
	settings  domain.Settings
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &fixture{
		ctrl:      ctrl,
		logger:    mocks.NewMockLogger(ctrl),
		runners:   mocks.NewMockRunnerFactory(ctrl),
		runner:    mocks.NewMockRunner(ctrl),
		logs:      mocks.NewMockTaskLogOpener(ctrl),
		icons:     mocks.NewMockIconProvider(ctrl),
		indicator: mocks.NewMockStatusIndicator(ctrl),
		startup:   mocks.NewMockStartupRegistrar(ctrl),
		registry:  mocks.NewMockRegistry(ctrl),
		processes: mocks.NewMockProcessManager(ctrl),
		watcher:   mocks.NewMockFileWatcher(ctrl),
		log:       &recordingLog{},
		settings:  domain.DefaultSettings(t.TempDir()),
	}
}

func (f *fixture) app(opts ...app.Option) *app.App {
	return app.New(f.settings, app.Deps{
		Logger:    f.logger,
		Runners:   f.runners,
		Logs:      f.logs,
		Icons:     f.icons,
		Indicator: f.indicator,
		Startup:   f.startup,
		Registry:  f.registry,
		Processes: f.processes,
		Watcher:   f.watcher,
	}, opts...)
}

// expectDaemon sets up the task log and a runner that always succeeds.
func (f *fixture) expectDaemon(label string) {
	f.logs.EXPECT().Open(label).Return(f.log, nil)
	f.runners.EXPECT().NewRunner(f.log).Return(f.runner)
}

// writeScript creates an executable shell script and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	script := filepath.Join(t.TempDir(), "job.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"+body+"\n"), 0o700))
	return script
}

func daemonArgs(script, icon, autostart string) []string {
	return []string{"/bin/sh", script, "every_seconds", "1", icon, autostart}
}

func success() domain.RunOutcome {
	return domain.RunOutcome{Status: domain.RunSuccess}
}

func TestApp_RunDaemon_RejectsBadInvocation(t *testing.T) {
	script := writeScript(t, "exit 0")

	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "missing arguments", args: []string{"/bin/sh", script}, errContains: "missing arguments"},
		{name: "bad autostart", args: daemonArgs(script, "none", "maybe"), errContains: "autostart flag"},
		{name: "missing script", args: daemonArgs(script+".missing", "none", "no"), errContains: "script not found"},
		{name: "missing interpreter", args: []string{"/nonexistent/sh", script, "every_seconds", "1", "none", "no"}, errContains: "interpreter not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			err := f.app().RunDaemon(t.Context(), "", tt.args)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestApp_RunDaemon_TaskLogFailure(t *testing.T) {
	f := newFixture(t)
	script := writeScript(t, "exit 0")
	f.logs.EXPECT().Open("job").Return(nil, domain.ErrTaskLogOpenFailed)

	err := f.app().RunDaemon(t.Context(), "", daemonArgs(script, "none", "no"))
	assert.ErrorIs(t, err, domain.ErrTaskLogOpenFailed)
}

func TestApp_RunDaemon_HeadlessRunsUntilCancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		script := writeScript(t, "exit 0")
		f.expectDaemon("job")
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(success()).Times(4)

		ctx, cancel := context.WithCancel(t.Context())
		errCh := make(chan error, 1)
		go func() { errCh <- f.app().RunDaemon(ctx, "", daemonArgs(script, "none", "no")) }()

		time.Sleep(3500 * time.Millisecond)
		cancel()

		require.NoError(t, <-errCh)
		assert.Equal(t, 1, f.log.count("INF Logging setup successful"))
		assert.Equal(t, 4, f.log.count("Next run scheduled at: "))
		assert.Zero(t, f.log.count("Terminating task."))
	})
}

func TestApp_RunDaemon_RegistersStartupEntry(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		script := writeScript(t, "exit 0")
		f.expectDaemon("job")
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(success()).AnyTimes()

		want := domain.StartupEntry{
			Name:        "job_startup",
			Description: "pycronx task job",
			Command: []string{
				"/opt/pycronx", "run", "--id", "fixed-id",
				"/bin/sh", script, "every_seconds", "1", "none", "yes",
			},
			WorkingDir: filepath.Dir(script),
		}
		f.startup.EXPECT().Ensure(gomock.Any(), want).Return(true, nil)

		a := f.app(
			app.WithExecutable("/opt/pycronx"),
			app.WithIDGenerator(func() string { return "fixed-id" }),
		)

		ctx, cancel := context.WithCancel(t.Context())
		errCh := make(chan error, 1)
		go func() { errCh <- a.RunDaemon(ctx, "", daemonArgs(script, "none", "yes")) }()

		synctest.Wait()
		cancel()

		require.NoError(t, <-errCh)
		assert.Equal(t, 1, f.log.count("INF Added to startup: job_startup"))
	})
}

func TestApp_RunDaemon_StartupFailureIsNotFatal(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		script := writeScript(t, "exit 0")
		f.expectDaemon("job")
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(success()).Times(2)
		f.startup.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return(false, domain.ErrStartupEntryFailed)

		ctx, cancel := context.WithCancel(t.Context())
		errCh := make(chan error, 1)
		go func() {
			errCh <- f.app(app.WithExecutable("/opt/pycronx")).RunDaemon(ctx, "id-1", daemonArgs(script, "none", "yes"))
		}()

		time.Sleep(1500 * time.Millisecond)
		cancel()

		require.NoError(t, <-errCh)
		assert.Equal(t, 1, f.log.count("ERR Failed to add to startup"))
		assert.Zero(t, f.log.count("Added to startup"))
	})
}

func TestApp_RunDaemon_ExistingStartupEntryIsKept(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		script := writeScript(t, "exit 0")
		f.expectDaemon("job")
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(success()).AnyTimes()
		f.startup.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return(false, nil)

		ctx, cancel := context.WithCancel(t.Context())
		errCh := make(chan error, 1)
		go func() {
			errCh <- f.app(app.WithExecutable("/opt/pycronx")).RunDaemon(ctx, "id-1", daemonArgs(script, "none", "yes"))
		}()

		synctest.Wait()
		cancel()

		require.NoError(t, <-errCh)
		assert.Zero(t, f.log.count("Added to startup"))
		assert.Zero(t, f.log.count("ERR "))
	})
}

func TestApp_RunDaemon_IndicatorExitStopsLoop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		script := writeScript(t, "exit 0")
		f.expectDaemon("job")
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(success()).Times(3)

		icon := &domain.Icon{Path: "/icons/jobIcon.png", Text: "Job", Color: "#336699", TextColor: "#FFFFFF"}
		f.icons.EXPECT().Generate("job").Return(icon, nil)
		f.indicator.EXPECT().Show(gomock.Any(), gomock.Any(), icon, gomock.Any()).DoAndReturn(
			func(_ context.Context, task *domain.Task, _ *domain.Icon, stop func()) error {
				assert.Equal(t, "job", task.Label())
				time.Sleep(2500 * time.Millisecond)
				stop()
				return nil
			},
		)

		err := f.app().RunDaemon(t.Context(), "id-1", daemonArgs(script, "random", "no"))

		require.NoError(t, err)
		assert.Equal(t, 1, f.log.count("INF Terminating task."))
	})
}

func TestApp_RunDaemon_IndicatorClosesWhenLoopEnds(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		script := writeScript(t, "exit 0")
		f.expectDaemon("job")
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(success()).AnyTimes()

		f.icons.EXPECT().Load("badge.png").Return(&domain.Icon{Path: "/icons/badge.png"}, nil)
		var indicatorDone bool
		f.indicator.EXPECT().Show(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ *domain.Task, _ *domain.Icon, _ func()) error {
				<-ctx.Done()
				indicatorDone = true
				return nil
			},
		)

		ctx, cancel := context.WithCancel(t.Context())
		errCh := make(chan error, 1)
		go func() { errCh <- f.app().RunDaemon(ctx, "id-1", daemonArgs(script, "badge.png", "no")) }()

		time.Sleep(2 * time.Second)
		cancel()

		require.NoError(t, <-errCh)
		assert.True(t, indicatorDone)
	})
}

func TestApp_RunDaemon_IndicatorUnavailable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		script := writeScript(t, "exit 0")
		f.expectDaemon("job")
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(success()).Times(2)

		f.icons.EXPECT().Generate("job").Return(&domain.Icon{Path: "/icons/jobIcon.png"}, nil)
		f.indicator.EXPECT().Show(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(zerr.With(domain.ErrIndicatorUnavailable, "task", "job"))
		f.logger.EXPECT().Warn("status indicator unavailable, continuing without it")

		ctx, cancel := context.WithCancel(t.Context())
		errCh := make(chan error, 1)
		go func() { errCh <- f.app().RunDaemon(ctx, "id-1", daemonArgs(script, "random", "no")) }()

		time.Sleep(1500 * time.Millisecond)
		cancel()

		require.NoError(t, <-errCh)
		assert.Equal(t, 1, f.log.count("WRN Status indicator unavailable"))
	})
}

func TestApp_RunDaemon_IconFailureRunsHeadless(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		script := writeScript(t, "exit 0")
		f.expectDaemon("job")
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(success()).Times(2)
		f.icons.EXPECT().Load("missing.png").Return(nil, zerr.With(domain.ErrIconNotFound, "path", "missing.png"))

		ctx, cancel := context.WithCancel(t.Context())
		errCh := make(chan error, 1)
		go func() { errCh <- f.app().RunDaemon(ctx, "id-1", daemonArgs(script, "missing.png", "no")) }()

		time.Sleep(1500 * time.Millisecond)
		cancel()

		require.NoError(t, <-errCh)
		assert.Equal(t, 1, f.log.count("ERR Failed to load icon: icon not found"))
	})
}

func TestApp_RunDaemon_IndicatorDisabled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.settings.Indicator = false
		script := writeScript(t, "exit 0")
		f.expectDaemon("job")
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(success()).Times(1)
		f.icons.EXPECT().Generate("job").Return(&domain.Icon{Path: "/icons/jobIcon.png"}, nil)

		ctx, cancel := context.WithCancel(t.Context())
		errCh := make(chan error, 1)
		go func() { errCh <- f.app().RunDaemon(ctx, "id-1", daemonArgs(script, "random", "no")) }()

		synctest.Wait()
		cancel()

		require.NoError(t, <-errCh)
	})
}
