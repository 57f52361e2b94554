package startup

import (
	"context"

	"github.com/bmestref/pycronx/internal/adapters/config"
	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the startup registrar Graft node.
const NodeID graft.ID = "adapter.startup"

func init() {
	graft.Register(graft.Node[ports.StartupRegistrar]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.StartupRegistrar, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.Startup)
		},
	})
}
