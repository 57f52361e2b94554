package registry

import (
	"context"

	"github.com/bmestref/pycronx/internal/adapters/config"
	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the task registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Registry, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.Layout().RegistryPath()), nil
		},
	})
}
