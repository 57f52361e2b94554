// Package scheduler drives the periodic execution of a single task.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/bmestref/pycronx/internal/engine/schedule"
	"go.trai.ch/zerr"
)

// State represents the state of a Loop.
type State int32

const (
	// StateIdle indicates the loop is waiting for the next due time.
	StateIdle State = iota
	// StateDue indicates the due time was reached and a run is about to start.
	StateDue
	// StateRunning indicates the script is executing.
	StateRunning
	// StateStopped indicates the loop has exited.
	StateStopped
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDue:
		return "Due"
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// NextRunLayout is the timestamp layout used when logging the next due time.
const NextRunLayout = "2006-01-02 15:04:05"

// Loop runs one task on its schedule. Runs never overlap.
type Loop struct {
	task   *domain.Task
	runner ports.Runner
	log    ports.TaskLog
	tick   time.Duration
	anchor domain.AnchorPolicy

	state atomic.Int32
	mu    sync.RWMutex
	next  time.Time
	runs  int
}

// Option configures a Loop.
type Option func(*Loop)

// WithTick sets how often the loop checks whether the task is due.
func WithTick(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.tick = d
		}
	}
}

// WithAnchor sets the instant interval schedules count from.
func WithAnchor(policy domain.AnchorPolicy) Option {
	return func(l *Loop) {
		if policy != "" {
			l.anchor = policy
		}
	}
}

// NewLoop creates a Loop for task.
func NewLoop(task *domain.Task, runner ports.Runner, log ports.TaskLog, opts ...Option) *Loop {
	l := &Loop{
		task:   task,
		runner: runner,
		log:    log,
		tick:   domain.DefaultTick,
		anchor: domain.AnchorTrigger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current state. It is safe to call concurrently with Run.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Next returns the current due time, or the zero time before Run starts.
func (l *Loop) Next() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.next
}

// Runs returns how many runs have completed.
func (l *Loop) Runs() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.runs
}

// Run checks the schedule, then waits one tick, until ctx is done or token is stopped.
// Stop requests are honoured between runs, never during one.
// It returns an error only when the next due time cannot be computed.
func (l *Loop) Run(ctx context.Context, token *StopToken) error {
	defer l.setState(StateStopped)

	next, err := schedule.FirstRun(l.task.Schedule, time.Now())
	if err != nil {
		return l.schedulingFailed(err)
	}
	l.setNext(next)

	// A full tick follows every check, including one that ran the script.
	timer := time.NewTimer(l.tick)
	defer timer.Stop()

	for {
		if token.Stopped() {
			l.log.Info("Terminating task.")
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		if now := time.Now(); !now.Before(next) {
			next, err = l.fire(ctx, now, next)
			if err != nil {
				return l.schedulingFailed(err)
			}
		}

		timer.Reset(l.tick)
		select {
		case <-ctx.Done():
		case <-token.Done():
		case <-timer.C:
		}
	}
}

// fire executes one run and returns the following due time.
func (l *Loop) fire(ctx context.Context, now, due time.Time) (time.Time, error) {
	l.setState(StateDue)
	l.setState(StateRunning)
	l.runner.Run(ctx, l.task)
	finished := time.Now()

	var (
		next time.Time
		err  error
	)
	switch l.anchor {
	case domain.AnchorCompletion:
		next, err = schedule.NextRun(l.task.Schedule, finished)
	case domain.AnchorSchedule:
		next, err = schedule.After(l.task.Schedule, due, finished)
	default:
		next, err = schedule.NextRun(l.task.Schedule, now)
	}
	if err != nil {
		return time.Time{}, err
	}

	l.mu.Lock()
	l.next = next
	l.runs++
	l.mu.Unlock()

	l.log.Info("Next run scheduled at: " + next.Format(NextRunLayout))
	l.setState(StateIdle)
	return next, nil
}

func (l *Loop) schedulingFailed(err error) error {
	err = zerr.With(zerr.Wrap(err, domain.ErrSchedulingFailed.Error()), "task", l.task.Label())
	l.log.Error("Error in schedule evaluation", err)
	return err
}

func (l *Loop) setState(s State) {
	l.state.Store(int32(s))
}

func (l *Loop) setNext(t time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next = t
}
