// Package config loads pycronx settings from config.yaml and the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/bmestref/pycronx/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the settings file.
const (
	EnvTick    = "PYCRONX_TICK"
	EnvStartup = "PYCRONX_STARTUP"
)

// Loader implements ports.SettingsLoader.
type Loader struct {
	fs     FileSystem
	getenv func(string) string
}

// NewLoader creates a Loader reading from the real filesystem and environment.
func NewLoader() *Loader {
	return NewLoaderWithFS(NewOSFS(), os.Getenv)
}

// NewLoaderWithFS creates a Loader with injected filesystem and environment lookups.
func NewLoaderWithFS(fsys FileSystem, getenv func(string) string) *Loader {
	return &Loader{fs: fsys, getenv: getenv}
}

// Load reads <home>/config.yaml if present, applies environment overrides and validates the result.
func (l *Loader) Load(home string) (domain.Settings, error) {
	settings := domain.DefaultSettings(home)
	path := settings.Layout().SettingsPath()

	data, err := l.fs.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return settings, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	default:
		var file SettingsFile
		if parseErr := yaml.Unmarshal(data, &file); parseErr != nil {
			err := zerr.Wrap(parseErr, domain.ErrInvalidSettings.Error())
			return settings, zerr.With(err, "path", path)
		}
		if applyErr := apply(&settings, file); applyErr != nil {
			return settings, zerr.With(applyErr, "path", path)
		}
	}

	if err := l.applyEnv(&settings); err != nil {
		return settings, err
	}
	return settings, settings.Validate()
}

func apply(s *domain.Settings, file SettingsFile) error {
	if file.Tick != "" {
		d, err := parseDuration("tick", file.Tick)
		if err != nil {
			return err
		}
		s.Tick = d
	}
	if file.StopGrace != "" {
		d, err := parseDuration("stop_grace", file.StopGrace)
		if err != nil {
			return err
		}
		s.StopGrace = d
	}
	if file.Anchor != "" {
		s.Anchor = domain.AnchorPolicy(strings.ToLower(file.Anchor))
	}
	if file.Startup != "" {
		s.Startup = domain.StartupBackend(strings.ToLower(file.Startup))
	}
	if file.Indicator != nil {
		s.Indicator = *file.Indicator
	}
	return nil
}

func (l *Loader) applyEnv(s *domain.Settings) error {
	if v := l.getenv(EnvTick); v != "" {
		d, err := parseDuration(EnvTick, v)
		if err != nil {
			return err
		}
		s.Tick = d
	}
	if v := l.getenv(EnvStartup); v != "" {
		s.Startup = domain.StartupBackend(strings.ToLower(v))
	}
	return nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrInvalidSettings.Error()), key, value)
	}
	return d, nil
}
