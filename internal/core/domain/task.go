package domain

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Task is the descriptor of one scheduled script. It is immutable once the daemon starts.
type Task struct {
	ID              string
	InterpreterPath string
	ScriptPath      string
	Schedule        Schedule
	Icon            IconSpec
	AutoLaunch      bool
}

// ParseTask builds a Task from the positional invocation contract:
//
//	<interpreter> <script> <kind> <arg> [<arg2>] <icon> <yes|no>
//
// The id is assigned by the caller. Paths are not checked here, see Validate.
func ParseTask(id string, args []string) (*Task, error) {
	const fixed = 3
	if len(args) < fixed {
		return nil, zerr.With(ErrMissingArguments, "got", len(args))
	}

	kind, err := ParseScheduleKind(args[2])
	if err != nil {
		return nil, err
	}

	want := fixed + kind.ArgCount() + 2
	if len(args) < want {
		err := zerr.With(ErrMissingArguments, "kind", kind.String())
		return nil, zerr.With(err, "want", want)
	}
	if len(args) > want {
		return nil, zerr.With(ErrUnexpectedArguments, "extra", strings.Join(args[want:], " "))
	}

	sched, err := ParseSchedule(args[2], args[fixed:fixed+kind.ArgCount()])
	if err != nil {
		return nil, err
	}

	autoLaunch, err := ParseYesNo(args[want-1])
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:              id,
		InterpreterPath: args[0],
		ScriptPath:      args[1],
		Schedule:        sched,
		Icon:            ParseIconSpec(args[want-2]),
		AutoLaunch:      autoLaunch,
	}, nil
}

// ParseYesNo parses the autostart flag, case-insensitively.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, zerr.With(ErrInvalidAutostart, "value", s)
	}
}

// YesNo formats b as "yes" or "no".
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Validate checks that the interpreter and script are absolute paths to regular files.
func (t *Task) Validate() error {
	if err := checkRegularFile(t.InterpreterPath, ErrInterpreterNotFound); err != nil {
		return err
	}
	return checkRegularFile(t.ScriptPath, ErrScriptNotFound)
}

func checkRegularFile(path string, notFound error) error {
	if !filepath.IsAbs(path) {
		return zerr.With(ErrPathNotAbsolute, "path", path)
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return zerr.With(notFound, "path", path)
	}
	return nil
}

// Label is the script's base name without extension.
func (t *Task) Label() string {
	base := filepath.Base(t.ScriptPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Invocation returns the positional arguments that ParseTask accepts for t.
func (t *Task) Invocation() []string {
	args := make([]string, 0, 7)
	args = append(args, t.InterpreterPath, t.ScriptPath, t.Schedule.Kind.String())
	args = append(args, t.Schedule.Args()...)
	return append(args, t.Icon.String(), YesNo(t.AutoLaunch))
}

// StartupEntryName is the stable name of the task's auto-launch entry.
func (t *Task) StartupEntryName() string {
	return t.Label() + "_startup"
}
