package domain

import (
	"os"
	"path/filepath"
)

const (
	// HomeEnvVar overrides the pycronx home directory.
	HomeEnvVar = "PYCRONX_HOME"

	// HomeDirName is the name of the pycronx home directory inside the user's home.
	HomeDirName = ".pycronx"

	// LogsDirName is the name of the task log directory.
	LogsDirName = "logs"

	// IconsDirName is the name of the icon directory.
	IconsDirName = "icons"

	// RegistryFileName is the name of the task registry file.
	RegistryFileName = "tasks.json"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "config.yaml"

	// DaemonLogFileName receives the stdout and stderr of detached daemons.
	DaemonLogFileName = "daemon.log"

	// TaskLogExt is the extension of per-task log files.
	TaskLogExt = ".log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Layout resolves every path pycronx reads or writes from a single home directory.
type Layout struct {
	Home string
}

// DefaultHome returns $PYCRONX_HOME, falling back to ~/.pycronx.
func DefaultHome() (string, error) {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return filepath.Abs(home)
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userHome, HomeDirName), nil
}

// LogsDir returns the directory holding per-task logs.
func (l Layout) LogsDir() string {
	return filepath.Join(l.Home, LogsDirName)
}

// IconsDir returns the directory holding generated and user-supplied icons.
func (l Layout) IconsDir() string {
	return filepath.Join(l.Home, IconsDirName)
}

// RegistryPath returns the path of the task registry file.
func (l Layout) RegistryPath() string {
	return filepath.Join(l.Home, RegistryFileName)
}

// SettingsPath returns the path of the settings file.
func (l Layout) SettingsPath() string {
	return filepath.Join(l.Home, SettingsFileName)
}

// DaemonLogPath returns the log that detached daemons write their stdio to.
func (l Layout) DaemonLogPath() string {
	return filepath.Join(l.LogsDir(), DaemonLogFileName)
}

// TaskLogPath returns the append-only log of the task with the given label.
func (l Layout) TaskLogPath(label string) string {
	return filepath.Join(l.LogsDir(), label+TaskLogExt)
}
