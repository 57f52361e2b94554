// Package app implements the application layer for pycronx.
package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/bmestref/pycronx/internal/engine/scheduler"
	"github.com/google/uuid"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Deps groups the ports the App drives.
type Deps struct {
	Logger    ports.Logger
	Runners   ports.RunnerFactory
	Logs      ports.TaskLogOpener
	Icons     ports.IconProvider
	Indicator ports.StatusIndicator
	Startup   ports.StartupRegistrar
	Registry  ports.Registry
	Processes ports.ProcessManager
	Watcher   ports.FileWatcher
}

// App represents the main application logic: the per-task daemon and the
// manager operations around it.
type App struct {
	settings domain.Settings
	deps     Deps

	executable string
	newID      func() string
	now        func() time.Time
}

// Option configures an App.
type Option func(*App)

// WithExecutable sets the binary written into startup entries.
// By default the running executable is used.
func WithExecutable(path string) Option {
	return func(a *App) {
		a.executable = path
	}
}

// WithIDGenerator replaces the generator of task ids.
func WithIDGenerator(fn func() string) Option {
	return func(a *App) {
		if fn != nil {
			a.newID = fn
		}
	}
}

// New creates a new App instance.
func New(settings domain.Settings, deps Deps, opts ...Option) *App {
	a := &App{
		settings: settings,
		deps:     deps,
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Settings returns the settings the App was built with.
func (a *App) Settings() domain.Settings {
	return a.settings
}

// RunDaemon parses the invocation, then schedules the task until ctx is done
// or the user exits from the status indicator.
// Argument and path errors are returned before anything is scheduled.
func (a *App) RunDaemon(ctx context.Context, id string, args []string) error {
	task, err := domain.ParseTask(id, args)
	if err != nil {
		return err
	}
	if err := task.Validate(); err != nil {
		return err
	}
	if task.ID == "" {
		task.ID = a.newID()
	}

	log, err := a.deps.Logs.Open(task.Label())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := log.Close(); cerr != nil {
			a.deps.Logger.Error(zerr.Wrap(cerr, "failed to close task log"))
		}
	}()
	log.Info("Logging setup successful")

	icon := a.resolveIcon(task, log)
	if task.AutoLaunch {
		a.registerStartup(ctx, task, icon, log)
	}

	token := scheduler.NewStopToken()
	g, gctx := errgroup.WithContext(ctx)

	// The indicator lives as long as the loop.
	indicatorCtx, stopIndicator := token.Bind(gctx)
	defer stopIndicator()

	g.Go(func() error {
		defer stopIndicator()
		loop := scheduler.NewLoop(task, a.deps.Runners.NewRunner(log), log,
			scheduler.WithTick(a.settings.Tick),
			scheduler.WithAnchor(a.settings.Anchor),
		)
		return loop.Run(gctx, token)
	})

	if icon != nil && a.settings.Indicator {
		g.Go(func() error {
			if err := a.deps.Indicator.Show(indicatorCtx, task, icon, token.Stop); err != nil {
				log.Warn("Status indicator unavailable, continuing without it: " + err.Error())
				a.deps.Logger.Warn("status indicator unavailable, continuing without it")
			}
			return nil
		})
	}

	return g.Wait()
}

// resolveIcon returns nil when the task has no icon or the icon cannot be obtained.
func (a *App) resolveIcon(task *domain.Task, log ports.TaskLog) *domain.Icon {
	var (
		icon *domain.Icon
		err  error
	)
	switch task.Icon.Mode {
	case domain.IconRandom:
		icon, err = a.deps.Icons.Generate(task.Label())
	case domain.IconPath:
		icon, err = a.deps.Icons.Load(task.Icon.Path)
	default:
		return nil
	}
	if err != nil {
		log.Error("Failed to load icon", err)
		return nil
	}
	return icon
}

func (a *App) registerStartup(ctx context.Context, task *domain.Task, icon *domain.Icon, log ports.TaskLog) {
	exe, err := a.executablePath()
	if err != nil {
		log.Error("Failed to add to startup", err)
		return
	}

	entry := domain.StartupEntry{
		Name:        task.StartupEntryName(),
		Description: "pycronx task " + task.Label(),
		Command:     append([]string{exe, "run", "--id", task.ID}, task.Invocation()...),
		WorkingDir:  filepath.Dir(task.ScriptPath),
	}
	if icon != nil {
		entry.IconPath = icon.Path
	}

	created, err := a.deps.Startup.Ensure(ctx, entry)
	switch {
	case err != nil:
		log.Error("Failed to add to startup", err)
	case created:
		log.Info("Added to startup: " + entry.Name)
	}
}

func (a *App) executablePath() (string, error) {
	if a.executable != "" {
		return a.executable, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine executable path")
	}
	return exe, nil
}
