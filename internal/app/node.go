package app

import (
	"context"

	"github.com/bmestref/pycronx/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/bmestref/pycronx/internal/adapters/daemon"    //nolint:depguard // Wired in app layer
	"github.com/bmestref/pycronx/internal/adapters/icon"      //nolint:depguard // Wired in app layer
	"github.com/bmestref/pycronx/internal/adapters/indicator" //nolint:depguard // Wired in app layer
	"github.com/bmestref/pycronx/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/bmestref/pycronx/internal/adapters/registry"  //nolint:depguard // Wired in app layer
	"github.com/bmestref/pycronx/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/bmestref/pycronx/internal/adapters/startup"   //nolint:depguard // Wired in app layer
	"github.com/bmestref/pycronx/internal/adapters/tasklog"   //nolint:depguard // Wired in app layer
	"github.com/bmestref/pycronx/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			logger.NodeID,
			shell.NodeID,
			tasklog.NodeID,
			icon.NodeID,
			indicator.NodeID,
			startup.NodeID,
			registry.NodeID,
			daemon.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	var deps Deps
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if deps.Runners, err = graft.Dep[ports.RunnerFactory](ctx); err != nil {
		return nil, err
	}
	if deps.Logs, err = graft.Dep[ports.TaskLogOpener](ctx); err != nil {
		return nil, err
	}
	if deps.Icons, err = graft.Dep[ports.IconProvider](ctx); err != nil {
		return nil, err
	}
	if deps.Indicator, err = graft.Dep[ports.StatusIndicator](ctx); err != nil {
		return nil, err
	}
	if deps.Startup, err = graft.Dep[ports.StartupRegistrar](ctx); err != nil {
		return nil, err
	}
	if deps.Registry, err = graft.Dep[ports.Registry](ctx); err != nil {
		return nil, err
	}
	if deps.Processes, err = graft.Dep[ports.ProcessManager](ctx); err != nil {
		return nil, err
	}
	if deps.Watcher, err = graft.Dep[ports.FileWatcher](ctx); err != nil {
		return nil, err
	}

	return New(settings, deps), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
