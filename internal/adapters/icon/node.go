package icon

import (
	"context"

	"github.com/bmestref/pycronx/internal/adapters/config"
	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the icon provider Graft node.
const NodeID graft.ID = "adapter.icon"

func init() {
	graft.Register(graft.Node[ports.IconProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.IconProvider, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(settings.Layout().IconsDir()), nil
		},
	})
}
