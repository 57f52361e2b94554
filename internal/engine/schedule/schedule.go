// Package schedule computes when a task is next due.
package schedule

import (
	"fmt"
	"time"

	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/robfig/cron/v3"
	"go.trai.ch/zerr"
)

// NextRun returns the first instant after anchor at which s is due.
//
// Interval kinds add Every units to anchor. Time-of-day kinds return the next
// matching wall-clock minute strictly after anchor, in anchor's location.
func NextRun(s domain.Schedule, anchor time.Time) (time.Time, error) {
	if s.Kind.IsInterval() {
		period, err := s.Period()
		if err != nil {
			return time.Time{}, err
		}
		return anchor.Add(period), nil
	}

	spec, err := cronSpec(s)
	if err != nil {
		return time.Time{}, err
	}
	next := spec.Next(anchor)
	if next.IsZero() {
		return time.Time{}, zerr.With(domain.ErrInvalidSchedule, "kind", s.Kind.String())
	}
	return next, nil
}

// FirstRun returns the initial due time of a freshly started daemon.
// Interval kinds are due immediately. Time-of-day kinds wait for their next
// slot, which may be now itself.
func FirstRun(s domain.Schedule, now time.Time) (time.Time, error) {
	if s.Kind.IsInterval() {
		if _, err := s.Period(); err != nil {
			return time.Time{}, err
		}
		return now, nil
	}
	return NextRun(s, now.Add(-time.Nanosecond))
}

// After advances from prev by whole steps of s until the result is after now.
// Missed slots are skipped, never returned.
func After(s domain.Schedule, prev, now time.Time) (time.Time, error) {
	next, err := NextRun(s, prev)
	if err != nil {
		return time.Time{}, err
	}
	if next.After(now) {
		return next, nil
	}
	if s.Kind.IsInterval() {
		step, err := s.Period()
		if err != nil {
			return time.Time{}, err
		}
		missed := now.Sub(next)/step + 1
		return next.Add(missed * step), nil
	}
	return NextRun(s, now)
}

func cronSpec(s domain.Schedule) (cron.Schedule, error) {
	var expr string
	switch s.Kind {
	case domain.DailyAt:
		expr = fmt.Sprintf("%d %d * * *", s.At.Minute, s.At.Hour)
	case domain.WeeklyAt:
		expr = fmt.Sprintf("%d %d * * %d", s.At.Minute, s.At.Hour, int(s.Weekday))
	default:
		return nil, zerr.With(domain.ErrInvalidSchedule, "kind", s.Kind.String())
	}

	spec, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidSchedule.Error()), "expr", expr)
	}
	return spec, nil
}
