package ports

import "context"

// FileWatcher notifies about changes to a single file.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type FileWatcher interface {
	// Watch sends on the returned channel after each burst of changes to path.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
