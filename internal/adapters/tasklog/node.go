package tasklog

import (
	"context"

	"github.com/bmestref/pycronx/internal/adapters/config"
	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the task log opener Graft node.
const NodeID graft.ID = "adapter.tasklog"

func init() {
	graft.Register(graft.Node[ports.TaskLogOpener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.TaskLogOpener, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(settings.Layout().LogsDir()), nil
		},
	})
}
