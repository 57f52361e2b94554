package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// AnchorPolicy chooses the instant an interval schedule counts from.
type AnchorPolicy string

// Anchor policies.
const (
	// AnchorTrigger counts from the tick at which the run was triggered.
	AnchorTrigger AnchorPolicy = "trigger"
	// AnchorCompletion counts from the instant the run returned.
	AnchorCompletion AnchorPolicy = "completion"
	// AnchorSchedule counts from the previous due time, skipping missed slots.
	AnchorSchedule AnchorPolicy = "schedule"
)

// StartupBackend selects where auto-launch entries are installed.
type StartupBackend string

// Startup backends.
const (
	StartupXDG     StartupBackend = "xdg"
	StartupSystemd StartupBackend = "systemd"
)

// Settings are the user-tunable knobs loaded from config.yaml and the environment.
type Settings struct {
	Home      string
	Tick      time.Duration
	Anchor    AnchorPolicy
	Startup   StartupBackend
	Indicator bool
	StopGrace time.Duration
}

// Default values.
const (
	DefaultTick      = time.Second
	DefaultStopGrace = 5 * time.Second
)

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings(home string) Settings {
	return Settings{
		Home:      home,
		Tick:      DefaultTick,
		Anchor:    AnchorTrigger,
		Startup:   StartupXDG,
		Indicator: true,
		StopGrace: DefaultStopGrace,
	}
}

// Layout returns the path layout rooted at the settings' home.
func (s Settings) Layout() Layout {
	return Layout{Home: s.Home}
}

// Validate rejects values the daemon cannot work with.
func (s Settings) Validate() error {
	if s.Tick <= 0 {
		return zerr.With(ErrInvalidSettings, "tick", s.Tick.String())
	}
	if s.StopGrace < 0 {
		return zerr.With(ErrInvalidSettings, "stop_grace", s.StopGrace.String())
	}
	switch s.Anchor {
	case AnchorTrigger, AnchorCompletion, AnchorSchedule:
	default:
		return zerr.With(ErrInvalidSettings, "anchor", string(s.Anchor))
	}
	switch s.Startup {
	case StartupXDG, StartupSystemd:
	default:
		return zerr.With(ErrInvalidSettings, "startup", string(s.Startup))
	}
	return nil
}

// StartupEntry describes an auto-launch entry to install.
type StartupEntry struct {
	Name        string
	Description string
	Command     []string
	WorkingDir  string
	IconPath    string
}
