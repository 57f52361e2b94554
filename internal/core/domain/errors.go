package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingArguments is returned when the invocation contract is missing positional arguments.
	ErrMissingArguments = zerr.New("missing arguments")

	// ErrUnexpectedArguments is returned when the invocation contract has trailing arguments.
	ErrUnexpectedArguments = zerr.New("unexpected arguments")

	// ErrInvalidSchedule is returned when a schedule kind or its arguments cannot be parsed.
	ErrInvalidSchedule = zerr.New("invalid schedule")

	// ErrInvalidAutostart is returned when the autostart flag is neither "yes" nor "no".
	ErrInvalidAutostart = zerr.New("autostart flag must be 'yes' or 'no'")

	// ErrInterpreterNotFound is returned when the interpreter path is not a regular file.
	ErrInterpreterNotFound = zerr.New("interpreter not found")

	// ErrScriptNotFound is returned when the script path is not a regular file.
	ErrScriptNotFound = zerr.New("script not found")

	// ErrPathNotAbsolute is returned when the interpreter or script path is relative.
	ErrPathNotAbsolute = zerr.New("path must be absolute")

	// ErrInvalidSettings is returned when the settings file or environment holds an invalid value.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrSettingsReadFailed is returned when the settings file exists but cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrHomeUnavailable is returned when the pycronx home directory cannot be resolved or created.
	ErrHomeUnavailable = zerr.New("pycronx home directory unavailable")

	// ErrTaskLogOpenFailed is returned when the per-task log file cannot be opened.
	ErrTaskLogOpenFailed = zerr.New("failed to open task log")

	// ErrSchedulingFailed is returned when the next run of a task cannot be computed.
	ErrSchedulingFailed = zerr.New("failed to compute next run")

	// ErrIconNotFound is returned when an icon file does not exist.
	ErrIconNotFound = zerr.New("icon not found")

	// ErrIconDecode is returned when an icon file cannot be decoded as an image.
	ErrIconDecode = zerr.New("failed to decode icon")

	// ErrIconWriteFailed is returned when a generated icon cannot be saved.
	ErrIconWriteFailed = zerr.New("failed to write icon")

	// ErrIndicatorUnavailable is returned when no terminal is attached for the status indicator.
	ErrIndicatorUnavailable = zerr.New("status indicator unavailable: no terminal attached")

	// ErrStartupEntryFailed is returned when an auto-launch entry cannot be written.
	ErrStartupEntryFailed = zerr.New("failed to install startup entry")

	// ErrStartupEnableFailed is returned when a written auto-launch entry cannot be enabled.
	ErrStartupEnableFailed = zerr.New("failed to enable startup entry")

	// ErrStartupRemoveFailed is returned when an auto-launch entry cannot be removed.
	ErrStartupRemoveFailed = zerr.New("failed to remove startup entry")

	// ErrRegistryReadFailed is returned when the registry file cannot be read.
	ErrRegistryReadFailed = zerr.New("failed to read task registry")

	// ErrRegistryUnmarshalFailed is returned when the registry file cannot be decoded.
	ErrRegistryUnmarshalFailed = zerr.New("failed to unmarshal task registry")

	// ErrRegistryWriteFailed is returned when the registry file cannot be written.
	ErrRegistryWriteFailed = zerr.New("failed to write task registry")

	// ErrTaskNotFound is returned when a registry lookup misses.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrDaemonSpawnFailed is returned when the daemon process cannot be started.
	ErrDaemonSpawnFailed = zerr.New("failed to spawn daemon")

	// ErrTerminateFailed is returned when a daemon process cannot be terminated.
	ErrTerminateFailed = zerr.New("failed to terminate daemon")
)
