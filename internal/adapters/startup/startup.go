// Package startup installs auto-launch-at-login entries for task daemons.
package startup

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports"
	"go.trai.ch/zerr"
)

// New returns the registrar for backend, rooted at the user's configuration directory.
func New(backend domain.StartupBackend) (ports.StartupRegistrar, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStartupEntryFailed.Error())
	}

	switch backend {
	case domain.StartupSystemd:
		return NewSystemd(filepath.Join(configDir, "systemd", "user"), NewUserBus()), nil
	case domain.StartupXDG, "":
		return NewXDG(filepath.Join(configDir, "autostart")), nil
	default:
		return nil, zerr.With(domain.ErrInvalidSettings, "startup", string(backend))
	}
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.Mode().IsRegular(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// writeFileAtomic writes data to a temporary file in the target directory and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
