package scheduler

import (
	"context"
	"sync"
)

// StopToken is a one-shot cooperative stop signal shared by the loop and the status indicator.
type StopToken struct {
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewStopToken creates an unstopped token.
func NewStopToken() *StopToken {
	return &StopToken{stopChan: make(chan struct{})}
}

// Stop requests the loop to stop after the current run (idempotent).
func (t *StopToken) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
}

// Done returns a channel that closes when Stop is called.
func (t *StopToken) Done() <-chan struct{} {
	return t.stopChan
}

// Stopped reports whether Stop has been called.
func (t *StopToken) Stopped() bool {
	select {
	case <-t.stopChan:
		return true
	default:
		return false
	}
}

// Bind derives a context that is cancelled when either ctx is done or the token is stopped.
func (t *StopToken) Bind(ctx context.Context) (context.Context, context.CancelFunc) {
	bound, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-t.stopChan:
			cancel()
		case <-bound.Done():
		}
	}()
	return bound, cancel
}
