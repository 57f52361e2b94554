package domain

import "time"

// RegistryRecord is the manager's persisted view of a running task, keyed by ID in tasks.json.
type RegistryRecord struct {
	ID          string    `json:"id"`
	Interpreter string    `json:"interpreter"`
	Script      string    `json:"script"`
	Schedule    string    `json:"schedule"`
	Args        []string  `json:"args"`
	Icon        string    `json:"icon"`
	PID         int       `json:"pid"`
	Autostart   string    `json:"autostart"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRegistryRecord mirrors t into a record for the daemon with the given pid.
func NewRegistryRecord(t *Task, pid int, createdAt time.Time) RegistryRecord {
	return RegistryRecord{
		ID:          t.ID,
		Interpreter: t.InterpreterPath,
		Script:      t.ScriptPath,
		Schedule:    t.Schedule.Kind.String(),
		Args:        t.Schedule.Args(),
		Icon:        t.Icon.String(),
		PID:         pid,
		Autostart:   YesNo(t.AutoLaunch),
		CreatedAt:   createdAt,
	}
}

// Task rebuilds the descriptor the record was created from.
func (r RegistryRecord) Task() (*Task, error) {
	args := make([]string, 0, 7)
	args = append(args, r.Interpreter, r.Script, r.Schedule)
	args = append(args, r.Args...)
	args = append(args, r.Icon, r.Autostart)
	return ParseTask(r.ID, args)
}
