package indicator

import (
	"context"

	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the status indicator Graft node.
const NodeID graft.ID = "adapter.indicator"

func init() {
	graft.Register(graft.Node[ports.StatusIndicator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StatusIndicator, error) {
			return New(), nil
		},
	})
}
