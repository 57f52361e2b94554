// Package watcher notifies about changes to the task registry file.
package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of file events into a single callback.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a debouncer that calls callback once events stop for window.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[string]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records an event for path and restarts the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// Stop cancels a pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = make(map[string]struct{})
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if len(d.pending) == 0 {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	paths := make([]string, 0, len(d.pending))
	for p := range d.pending {
		paths = append(paths, p)
	}
	d.pending = make(map[string]struct{})
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		d.callback(paths)
	}
}
