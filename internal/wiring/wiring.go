// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/bmestref/pycronx/internal/adapters/config"
	_ "github.com/bmestref/pycronx/internal/adapters/daemon"
	_ "github.com/bmestref/pycronx/internal/adapters/icon"
	_ "github.com/bmestref/pycronx/internal/adapters/indicator"
	_ "github.com/bmestref/pycronx/internal/adapters/logger"
	_ "github.com/bmestref/pycronx/internal/adapters/registry"
	_ "github.com/bmestref/pycronx/internal/adapters/shell"
	_ "github.com/bmestref/pycronx/internal/adapters/startup"
	_ "github.com/bmestref/pycronx/internal/adapters/tasklog"
	_ "github.com/bmestref/pycronx/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/bmestref/pycronx/internal/app"
)
