package logger

import (
	"context"

	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the graft node that provides the console logger.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
