package config

import (
	"context"

	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the settings loader Graft node.
const NodeID graft.ID = "adapter.settings_loader"

// SettingsNodeID is the unique identifier for the resolved settings Graft node.
const SettingsNodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SettingsLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (domain.Settings, error) {
			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return domain.Settings{}, err
			}
			home, err := domain.DefaultHome()
			if err != nil {
				return domain.Settings{}, zerr.Wrap(err, domain.ErrHomeUnavailable.Error())
			}
			return loader.Load(home)
		},
	})
}
