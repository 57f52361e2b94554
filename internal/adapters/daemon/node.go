package daemon

import (
	"context"

	"github.com/bmestref/pycronx/internal/adapters/config"
	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the process manager Graft node.
const NodeID graft.ID = "adapter.daemon"

func init() {
	graft.Register(graft.Node[ports.ProcessManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ProcessManager, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(settings.Layout().DaemonLogPath())
		},
	})
}
