package watcher

import (
	"context"

	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the file watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.FileWatcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileWatcher, error) {
			return NewWatcher(DefaultWindow), nil
		},
	})
}
