package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// ScheduleKind identifies how a task's next run is computed.
type ScheduleKind int

// Schedule kinds.
const (
	KindUnknown ScheduleKind = iota
	IntervalSeconds
	IntervalMinutes
	IntervalHours
	IntervalDays
	DailyAt
	WeeklyAt
)

var kindNames = map[ScheduleKind]string{
	IntervalSeconds: "every_seconds",
	IntervalMinutes: "every_minutes",
	IntervalHours:   "every_hours",
	IntervalDays:    "every_days",
	DailyAt:         "daily_at",
	WeeklyAt:        "weekly_at",
}

// ParseScheduleKind maps a wire name such as "every_seconds" to its kind.
func ParseScheduleKind(name string) (ScheduleKind, error) {
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return KindUnknown, zerr.With(ErrInvalidSchedule, "kind", name)
}

// String returns the wire name of the kind.
func (k ScheduleKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// IsInterval reports whether the kind is a fixed-period interval.
func (k ScheduleKind) IsInterval() bool {
	return k >= IntervalSeconds && k <= IntervalDays
}

// Unit returns the period of one interval step. It is zero for time-of-day kinds.
func (k ScheduleKind) Unit() time.Duration {
	switch k {
	case IntervalSeconds:
		return time.Second
	case IntervalMinutes:
		return time.Minute
	case IntervalHours:
		return time.Hour
	case IntervalDays:
		return 24 * time.Hour
	default:
		return 0
	}
}

// MaxEvery returns the largest interval count whose period fits in a
// time.Duration. It is zero for time-of-day kinds.
func (k ScheduleKind) MaxEvery() int64 {
	unit := k.Unit()
	if unit <= 0 {
		return 0
	}
	return int64(math.MaxInt64 / unit)
}

// ArgCount returns the number of positional arguments the kind takes.
func (k ScheduleKind) ArgCount() int {
	if k == WeeklyAt {
		return 2
	}
	return 1
}

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a 24h "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, zerr.With(ErrInvalidSchedule, "time", s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Schedule is a parsed schedule rule.
type Schedule struct {
	Kind    ScheduleKind
	Every   int
	At      TimeOfDay
	Weekday time.Weekday
}

// ParseSchedule builds a Schedule from its wire kind and positional arguments.
func ParseSchedule(kind string, args []string) (Schedule, error) {
	k, err := ParseScheduleKind(kind)
	if err != nil {
		return Schedule{}, err
	}
	if len(args) != k.ArgCount() {
		err := zerr.With(ErrInvalidSchedule, "kind", kind)
		return Schedule{}, zerr.With(err, "args", strings.Join(args, " "))
	}

	s := Schedule{Kind: k}
	switch k {
	case DailyAt:
		if s.At, err = ParseTimeOfDay(args[0]); err != nil {
			return Schedule{}, err
		}
	case WeeklyAt:
		if s.Weekday, err = ParseWeekday(args[0]); err != nil {
			return Schedule{}, err
		}
		if s.At, err = ParseTimeOfDay(args[1]); err != nil {
			return Schedule{}, err
		}
	default:
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil || n <= 0 || int64(n) > k.MaxEvery() {
			return Schedule{}, zerr.With(ErrInvalidSchedule, "every", args[0])
		}
		s.Every = n
	}
	return s, nil
}

// Period returns the length of one interval step of s.
func (s Schedule) Period() (time.Duration, error) {
	if !s.Kind.IsInterval() {
		return 0, zerr.With(ErrInvalidSchedule, "kind", s.Kind.String())
	}
	if s.Every <= 0 || int64(s.Every) > s.Kind.MaxEvery() {
		return 0, zerr.With(ErrInvalidSchedule, "every", s.Every)
	}
	return time.Duration(s.Every) * s.Kind.Unit(), nil
}

// Args returns the positional arguments that ParseSchedule accepts for s.
func (s Schedule) Args() []string {
	switch s.Kind {
	case DailyAt:
		return []string{s.At.String()}
	case WeeklyAt:
		return []string{strings.ToLower(s.Weekday.String()), s.At.String()}
	default:
		return []string{strconv.Itoa(s.Every)}
	}
}

// Describe renders the schedule for humans, e.g. "Every 5 minutes".
func (s Schedule) Describe() string {
	switch s.Kind {
	case IntervalSeconds:
		return fmt.Sprintf("Every %d seconds", s.Every)
	case IntervalMinutes:
		return fmt.Sprintf("Every %d minutes", s.Every)
	case IntervalHours:
		return fmt.Sprintf("Every %d hours", s.Every)
	case IntervalDays:
		return fmt.Sprintf("Every %d days", s.Every)
	case DailyAt:
		return "Everyday at " + s.At.String()
	case WeeklyAt:
		return fmt.Sprintf("Every %s at %s", s.Weekday, s.At)
	default:
		return "Unknown"
	}
}

// ParseWeekday parses an English weekday name, case-insensitively.
func ParseWeekday(name string) (time.Weekday, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == lower {
			return d, nil
		}
	}
	return time.Sunday, zerr.With(ErrInvalidSchedule, "weekday", name)
}
