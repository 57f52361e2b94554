package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

// DefaultWindow is how long the watcher waits for a burst of events to settle.
const DefaultWindow = 100 * time.Millisecond

// Watcher implements ports.FileWatcher with fsnotify.
type Watcher struct {
	window time.Duration
}

// NewWatcher creates a Watcher that debounces events over window.
func NewWatcher(window time.Duration) *Watcher {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Watcher{window: window}
}

// Watch notifies after changes to path. The parent directory is watched so
// that atomic replacements and first-time creation are seen.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	path = filepath.Clean(path)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", filepath.Dir(path))
	}

	changes := make(chan struct{}, 1)
	settled := make(chan struct{}, 1)
	debouncer := NewDebouncer(w.window, func([]string) {
		select {
		case settled <- struct{}{}:
		default:
		}
	})

	go func() {
		defer close(changes)
		defer debouncer.Stop()
		defer func() { _ = fsw.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || event.Op == fsnotify.Chmod {
					continue
				}
				debouncer.Add(event.Name)
			case <-settled:
				select {
				case changes <- struct{}{}:
				default:
				}
			case _, ok := <-fsw.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return changes, nil
}
