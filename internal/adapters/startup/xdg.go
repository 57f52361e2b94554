package startup

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/bmestref/pycronx/internal/core/domain"
	"go.trai.ch/zerr"
)

// DesktopExt is the file extension of freedesktop autostart entries.
const DesktopExt = ".desktop"

const (
	// execReserved forces an Exec argument into double quotes.
	execReserved = " \t\n\"'\\><~|&;$*?#()`"
	// execEscaped must be backslash-escaped inside a quoted Exec argument.
	execEscaped = "\"`$\\"
)

// XDG installs freedesktop autostart entries.
type XDG struct {
	dir string
}

// NewXDG creates an XDG registrar writing into dir, usually ~/.config/autostart.
func NewXDG(dir string) *XDG {
	return &XDG{dir: dir}
}

// Path returns the entry file for name.
func (x *XDG) Path(name string) string {
	return filepath.Join(x.dir, name+DesktopExt)
}

// Ensure writes the desktop entry unless it already exists.
func (x *XDG) Ensure(_ context.Context, entry domain.StartupEntry) (bool, error) {
	path := x.Path(entry.Name)

	exists, err := fileExists(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStartupEntryFailed.Error()), "path", path)
	}
	if exists {
		return false, nil
	}

	if err := writeFileAtomic(path, []byte(RenderDesktopEntry(entry))); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStartupEntryFailed.Error()), "path", path)
	}
	return true, nil
}

// Remove deletes the desktop entry.
func (x *XDG) Remove(_ context.Context, name string) error {
	path := x.Path(name)
	if err := removeIfExists(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStartupRemoveFailed.Error()), "path", path)
	}
	return nil
}

// Exists reports whether the desktop entry file is present.
func (x *XDG) Exists(name string) (bool, error) {
	return fileExists(x.Path(name))
}

// RenderDesktopEntry renders entry as a freedesktop .desktop file.
func RenderDesktopEntry(entry domain.StartupEntry) string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Name=" + entry.Name + "\n")
	if entry.Description != "" {
		b.WriteString("Comment=" + entry.Description + "\n")
	}
	b.WriteString("Exec=" + DesktopExec(entry.Command) + "\n")
	if entry.WorkingDir != "" {
		b.WriteString("Path=" + entry.WorkingDir + "\n")
	}
	if entry.IconPath != "" {
		b.WriteString("Icon=" + entry.IconPath + "\n")
	}
	b.WriteString("Terminal=false\n")
	b.WriteString("X-GNOME-Autostart-enabled=true\n")
	return b.String()
}

// DesktopExec renders argv as the value of a desktop entry Exec key.
//
// Arguments with reserved characters are double-quoted. A backslash escape
// inside the quotes is itself escaped once more for the string value layer,
// and every percent sign is doubled so it is not read as a field code.
func DesktopExec(argv []string) string {
	args := make([]string, len(argv))
	for i, arg := range argv {
		args[i] = desktopExecArg(arg)
	}
	return strings.Join(args, " ")
}

func desktopExecArg(arg string) string {
	arg = strings.ReplaceAll(arg, "%", "%%")
	if arg != "" && !strings.ContainsAny(arg, execReserved) {
		return arg
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, r := range arg {
		if strings.ContainsRune(execEscaped, r) {
			b.WriteString(`\\`)
			if r == '\\' {
				b.WriteString(`\\`)
				continue
			}
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
