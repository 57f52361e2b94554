package startup

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/coreos/go-systemd/v22/dbus"
	"github.com/coreos/go-systemd/v22/unit"
	"github.com/kballard/go-shellquote"
	"go.trai.ch/zerr"
)

// UnitExt is the file extension of systemd service units.
const UnitExt = ".service"

// UnitManager enables and disables user units.
type UnitManager interface {
	Enable(ctx context.Context, path string) error
	Disable(ctx context.Context, unitName string) error
}

// Systemd installs systemd user services.
type Systemd struct {
	dir     string
	manager UnitManager
}

// NewSystemd creates a Systemd registrar writing units into dir, usually
// ~/.config/systemd/user.
func NewSystemd(dir string, manager UnitManager) *Systemd {
	return &Systemd{dir: dir, manager: manager}
}

// Path returns the unit file for name.
func (s *Systemd) Path(name string) string {
	return filepath.Join(s.dir, name+UnitExt)
}

// Ensure writes and enables the unit unless it already exists.
// A unit that cannot be enabled is removed again.
func (s *Systemd) Ensure(ctx context.Context, entry domain.StartupEntry) (bool, error) {
	path := s.Path(entry.Name)

	exists, err := fileExists(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStartupEntryFailed.Error()), "path", path)
	}
	if exists {
		return false, nil
	}

	data, err := io.ReadAll(unit.Serialize(UnitOptions(entry)))
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrStartupEntryFailed.Error())
	}
	if err := writeFileAtomic(path, data); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStartupEntryFailed.Error()), "path", path)
	}

	if err := s.manager.Enable(ctx, path); err != nil {
		_ = removeIfExists(path)
		return false, zerr.With(zerr.Wrap(err, domain.ErrStartupEnableFailed.Error()), "unit", entry.Name+UnitExt)
	}
	return true, nil
}

// Remove disables and deletes the unit. A unit that was never installed is ignored.
func (s *Systemd) Remove(ctx context.Context, name string) error {
	path := s.Path(name)

	exists, err := fileExists(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStartupRemoveFailed.Error()), "path", path)
	}
	if !exists {
		return nil
	}

	if err := s.manager.Disable(ctx, name+UnitExt); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStartupRemoveFailed.Error()), "unit", name+UnitExt)
	}
	if err := removeIfExists(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStartupRemoveFailed.Error()), "path", path)
	}
	return nil
}

// Exists reports whether the unit file is present.
func (s *Systemd) Exists(name string) (bool, error) {
	return fileExists(s.Path(name))
}

// UnitOptions describes entry as a user service started with the session.
func UnitOptions(entry domain.StartupEntry) []*unit.UnitOption {
	description := entry.Description
	if description == "" {
		description = entry.Name
	}

	opts := []*unit.UnitOption{
		unit.NewUnitOption("Unit", "Description", description),
		unit.NewUnitOption("Unit", "After", "default.target"),
		unit.NewUnitOption("Service", "Type", "simple"),
		unit.NewUnitOption("Service", "ExecStart", systemdExec(entry.Command)),
	}
	if entry.WorkingDir != "" {
		opts = append(opts, unit.NewUnitOption("Service", "WorkingDirectory", entry.WorkingDir))
	}
	return append(opts,
		unit.NewUnitOption("Service", "Restart", "no"),
		unit.NewUnitOption("Install", "WantedBy", "default.target"),
	)
}

// UserBus enables units through the user's systemd instance over D-Bus.
type UserBus struct{}

// NewUserBus creates a UnitManager talking to the user session bus.
func NewUserBus() *UserBus {
	return &UserBus{}
}

// Enable links the unit file into the user instance and reloads it.
func (UserBus) Enable(ctx context.Context, path string) error {
	conn, err := dbus.NewUserConnectionContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, _, err := conn.EnableUnitFilesContext(ctx, []string{path}, false, true); err != nil {
		return err
	}
	return conn.ReloadContext(ctx)
}

// Disable unlinks the unit from the user instance and reloads it.
func (UserBus) Disable(ctx context.Context, unitName string) error {
	conn, err := dbus.NewUserConnectionContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.DisableUnitFilesContext(ctx, []string{unitName}, false); err != nil {
		return err
	}
	return conn.ReloadContext(ctx)
}

// systemdExec quotes argv for ExecStart with specifiers and variables taken literally.
func systemdExec(argv []string) string {
	return strings.NewReplacer("%", "%%", "$", "$$").Replace(shellquote.Join(argv...))
}
