package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmestref/pycronx/internal/core/domain"
	"go.trai.ch/zerr"
)

// TaskStatus is a registry record together with the liveness of its daemon.
type TaskStatus struct {
	domain.RegistryRecord
	Alive bool
}

// Start validates the invocation, spawns a detached daemon for it and records
// the daemon in the registry.
func (a *App) Start(ctx context.Context, args []string) (domain.RegistryRecord, error) {
	task, err := domain.ParseTask(a.newID(), args)
	if err != nil {
		return domain.RegistryRecord{}, err
	}
	if err := task.Validate(); err != nil {
		return domain.RegistryRecord{}, err
	}

	pid, err := a.deps.Processes.Spawn(ctx, append([]string{"run", "--id", task.ID}, task.Invocation()...))
	if err != nil {
		return domain.RegistryRecord{}, err
	}

	rec := domain.NewRegistryRecord(task, pid, a.now())
	if err := a.deps.Registry.Put(rec); err != nil {
		// An unrecorded daemon could never be stopped through the manager.
		if terr := a.deps.Processes.Terminate(ctx, pid, a.settings.StopGrace); terr != nil {
			a.deps.Logger.Error(terr)
		}
		return domain.RegistryRecord{}, err
	}
	return rec, nil
}

// List returns every registered task with the liveness of its daemon.
func (a *App) List(ctx context.Context) ([]TaskStatus, error) {
	records, err := a.deps.Registry.List()
	if err != nil {
		return nil, err
	}

	statuses := make([]TaskStatus, 0, len(records))
	for _, rec := range records {
		statuses = append(statuses, TaskStatus{
			RegistryRecord: rec,
			Alive:          a.deps.Processes.Owns(ctx, rec.PID, rec.ID),
		})
	}
	return statuses, nil
}

// Watch calls render with the current task list, then again after every
// change to the registry file, until ctx is done.
func (a *App) Watch(ctx context.Context, render func([]TaskStatus)) error {
	path := a.deps.Registry.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrHomeUnavailable.Error())
	}

	changes, err := a.deps.Watcher.Watch(ctx, path)
	if err != nil {
		return err
	}

	statuses, err := a.List(ctx)
	if err != nil {
		return err
	}
	render(statuses)

	for range changes {
		statuses, err := a.List(ctx)
		if err != nil {
			a.deps.Logger.Error(err)
			continue
		}
		render(statuses)
	}
	return nil
}

// Stop terminates the daemon of the task, removes its startup entry when it
// has one and deletes its registry record.
// A daemon that already exited is not an error, and a pid now held by another
// process is never signalled.
func (a *App) Stop(ctx context.Context, id string) error {
	rec, err := a.deps.Registry.Get(id)
	if err != nil {
		return err
	}

	if a.deps.Processes.Owns(ctx, rec.PID, rec.ID) {
		if err := a.deps.Processes.Terminate(ctx, rec.PID, a.settings.StopGrace); err != nil {
			return zerr.With(err, "id", id)
		}
	} else {
		a.deps.Logger.Warn(fmt.Sprintf("daemon of task %s is no longer running, skipping termination", id))
	}

	if autostart, _ := domain.ParseYesNo(rec.Autostart); autostart {
		task := &domain.Task{ScriptPath: rec.Script}
		if err := a.deps.Startup.Remove(ctx, task.StartupEntryName()); err != nil {
			a.deps.Logger.Error(err)
		}
	}

	return a.deps.Registry.Delete(id)
}
