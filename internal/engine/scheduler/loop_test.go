package scheduler_test

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports/mocks"
	"github.com/bmestref/pycronx/internal/engine/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
	r.add("ERR " + msg + ": " + err.Error())
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

// startTimes records when each run began, relative to t0.
type startTimes struct {
	mu     sync.Mutex
	t0     time.Time
	starts []time.Duration
}

func newStartTimes() *startTimes {
	return &startTimes{t0: time.Now()}
}

func (s *startTimes) mark() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.starts = append(s.starts, time.Since(s.t0))
}

func (s *startTimes) get() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.starts...)
}

func newTask(t *testing.T, kind string, args ...string) *domain.Task {
	t.Helper()
	s, err := domain.ParseSchedule(kind, args)
	require.NoError(t, err)
	return &domain.Task{ID: "t1", ScriptPath: "/srv/job.py", InterpreterPath: "/usr/bin/python3", Schedule: s}
}

// startLoop runs the loop in the background and returns a channel receiving its result.
func startLoop(ctx context.Context, l *scheduler.Loop, token *scheduler.StopToken) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx, token) }()
	return errCh
}

func TestLoop_IntervalRunsImmediatelyThenEveryPeriod(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)
		log := &recordingLog{}

		starts := newStartTimes()
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *domain.Task) domain.RunOutcome {
				starts.mark()
				return domain.RunOutcome{Status: domain.RunSuccess}
			},
		).Times(3)

		loop := scheduler.NewLoop(newTask(t, "every_seconds", "5"), runner, log)
		token := scheduler.NewStopToken()
		errCh := startLoop(t.Context(), loop, token)

		time.Sleep(12 * time.Second)
		synctest.Wait()

		assert.Equal(t, []time.Duration{0, 5 * time.Second, 10 * time.Second}, starts.get())
		assert.Equal(t, 3, log.count("Next run scheduled at: "))
		assert.Equal(t, 3, loop.Runs())
		assert.Equal(t, scheduler.StateIdle, loop.State())

		token.Stop()
		require.NoError(t, <-errCh)
		assert.Equal(t, scheduler.StateStopped, loop.State())
		assert.Equal(t, 1, log.count("Terminating task."))
	})
}

func TestLoop_NeverOverlapsRuns(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)

		var inFlight, maxInFlight, calls atomic.Int32
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *domain.Task) domain.RunOutcome {
				calls.Add(1)
				n := inFlight.Add(1)
				if n > maxInFlight.Load() {
					maxInFlight.Store(n)
				}
				time.Sleep(10 * time.Second)
				inFlight.Add(-1)
				return domain.RunOutcome{Status: domain.RunSuccess}
			},
		).AnyTimes()

		loop := scheduler.NewLoop(newTask(t, "every_seconds", "1"), runner, &recordingLog{})
		token := scheduler.NewStopToken()
		errCh := startLoop(t.Context(), loop, token)

		time.Sleep(5 * time.Second)
		synctest.Wait()
		assert.Equal(t, int32(1), calls.Load(), "a slow run must not be re-entered")
		assert.Equal(t, scheduler.StateRunning, loop.State())

		time.Sleep(20 * time.Second)
		synctest.Wait()

		token.Stop()
		require.NoError(t, <-errCh)
		assert.Equal(t, int32(1), maxInFlight.Load())
		assert.Equal(t, int32(3), calls.Load())
	})
}

func TestLoop_FailedRunsStillReschedule(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)
		log := &recordingLog{}

		gomock.InOrder(
			runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.RunOutcome{Status: domain.RunNonZeroExit, ExitCode: 2}),
			runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.RunOutcome{Status: domain.RunLaunchFailure}),
			runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.RunOutcome{Status: domain.RunSuccess}),
		)

		loop := scheduler.NewLoop(newTask(t, "every_seconds", "2"), runner, log)
		token := scheduler.NewStopToken()
		errCh := startLoop(t.Context(), loop, token)

		time.Sleep(5 * time.Second)
		synctest.Wait()
		token.Stop()

		require.NoError(t, <-errCh)
		assert.Equal(t, 3, log.count("Next run scheduled at: "))
	})
}

func TestLoop_StopMidRunFinishesCurrentRun(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)
		log := &recordingLog{}

		var finished atomic.Bool
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ *domain.Task) domain.RunOutcome {
				time.Sleep(10 * time.Second)
				finished.Store(ctx.Err() == nil)
				return domain.RunOutcome{Status: domain.RunSuccess}
			},
		).Times(1)

		loop := scheduler.NewLoop(newTask(t, "every_seconds", "1"), runner, log)
		token := scheduler.NewStopToken()
		start := time.Now()
		errCh := startLoop(t.Context(), loop, token)

		time.Sleep(3 * time.Second)
		token.Stop()

		require.NoError(t, <-errCh)
		assert.True(t, finished.Load(), "the in-flight run must complete")
		assert.Equal(t, 10*time.Second, time.Since(start))
		assert.Equal(t, 1, log.count("Terminating task."))
		assert.Equal(t, scheduler.StateStopped, loop.State())
	})
}

func TestLoop_ContextCancelStops(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)
		log := &recordingLog{}
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.RunOutcome{}).Times(1)

		ctx, cancel := context.WithCancel(t.Context())
		loop := scheduler.NewLoop(newTask(t, "every_minutes", "1"), runner, log)
		errCh := startLoop(ctx, loop, scheduler.NewStopToken())

		time.Sleep(30 * time.Second)
		cancel()

		require.NoError(t, <-errCh)
		assert.Zero(t, log.count("Terminating task."))
	})
}

func TestLoop_DailyAtWaitsForSlot(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		now := time.Now()
		startAt := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 50, 0, now.Location())
		time.Sleep(startAt.Sub(now))

		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)
		log := &recordingLog{}

		var ranAt atomic.Pointer[time.Time]
		var runs atomic.Int32
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *domain.Task) domain.RunOutcome {
				now := time.Now()
				ranAt.Store(&now)
				runs.Add(1)
				return domain.RunOutcome{Status: domain.RunSuccess}
			},
		).Times(1)

		loop := scheduler.NewLoop(newTask(t, "daily_at", "00:00"), runner, log)
		token := scheduler.NewStopToken()
		errCh := startLoop(t.Context(), loop, token)

		time.Sleep(9 * time.Second)
		synctest.Wait()
		assert.Zero(t, runs.Load(), "a time-of-day task must not run on start")

		time.Sleep(time.Minute)
		synctest.Wait()

		midnight := startAt.Add(10 * time.Second)
		require.Equal(t, int32(1), runs.Load())
		assert.True(t, midnight.Equal(*ranAt.Load()), "ran at %s, want %s", *ranAt.Load(), midnight)
		assert.True(t, midnight.AddDate(0, 0, 1).Equal(loop.Next()))
		assert.Equal(t, 1, log.count("Next run scheduled at: "+midnight.AddDate(0, 0, 1).Format(scheduler.NextRunLayout)))

		token.Stop()
		require.NoError(t, <-errCh)
	})
}

func TestLoop_SchedulingErrorStopsLoop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)
		log := &recordingLog{}

		task := &domain.Task{ScriptPath: "/srv/broken.py", Schedule: domain.Schedule{Kind: domain.KindUnknown}}
		loop := scheduler.NewLoop(task, runner, log)

		err := loop.Run(t.Context(), scheduler.NewStopToken())
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to compute next run")
		assert.Equal(t, 1, log.count("ERR Error in schedule evaluation"))
		assert.Equal(t, scheduler.StateStopped, loop.State())
	})
}

func TestLoop_AnchorPolicies(t *testing.T) {
	tests := []struct {
		name       string
		policy     domain.AnchorPolicy
		wantSecond time.Duration
	}{
		{name: "trigger", policy: domain.AnchorTrigger, wantSecond: 26 * time.Second},
		{name: "completion", policy: domain.AnchorCompletion, wantSecond: 35 * time.Second},
		{name: "schedule", policy: domain.AnchorSchedule, wantSecond: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				runner := mocks.NewMockRunner(ctrl)

				starts := newStartTimes()
				runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
					func(context.Context, *domain.Task) domain.RunOutcome {
						starts.mark()
						time.Sleep(25 * time.Second)
						return domain.RunOutcome{Status: domain.RunSuccess}
					},
				).Times(2)

				loop := scheduler.NewLoop(
					newTask(t, "every_seconds", "10"), runner, &recordingLog{},
					scheduler.WithAnchor(tt.policy),
				)
				token := scheduler.NewStopToken()
				errCh := startLoop(t.Context(), loop, token)

				time.Sleep(tt.wantSecond + time.Second)
				token.Stop()
				require.NoError(t, <-errCh)

				got := starts.get()
				require.Len(t, got, 2)
				assert.Equal(t, tt.wantSecond, got[1])
			})
		})
	}
}

func TestLoop_WithTick(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockRunner(ctrl)

		starts := newStartTimes()
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *domain.Task) domain.RunOutcome {
				starts.mark()
				return domain.RunOutcome{}
			},
		).Times(2)

		loop := scheduler.NewLoop(newTask(t, "every_seconds", "3"), runner, &recordingLog{},
			scheduler.WithTick(2*time.Second))
		token := scheduler.NewStopToken()
		errCh := startLoop(t.Context(), loop, token)

		time.Sleep(5 * time.Second)
		synctest.Wait()
		token.Stop()
		require.NoError(t, <-errCh)

		assert.Equal(t, []time.Duration{0, 4 * time.Second}, starts.get())
	})
}
