// Package tasklog implements the per-task run log on top of zerolog.
package tasklog

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/core/ports"
	"github.com/rs/zerolog"
	"go.trai.ch/zerr"
)

// TimeFormat is the timestamp layout of every log line.
const TimeFormat = "2006-01-02 15:04:05"

// Log implements ports.TaskLog. Lines look like:
//
//	2025-06-02 09:00:00 INF Next run scheduled at: 2025-06-02 09:05:00
type Log struct {
	logger zerolog.Logger
	closer io.Closer
}

// New creates a Log writing plain-text lines to w.
func New(w io.Writer) *Log {
	cw := zerolog.ConsoleWriter{
		Out:        zerolog.SyncWriter(w),
		NoColor:    true,
		TimeFormat: TimeFormat,
	}
	l := &Log{logger: zerolog.New(cw).With().Timestamp().Logger()}
	if c, ok := w.(io.Closer); ok {
		l.closer = c
	}
	return l
}

// Info logs msg at info level.
func (l *Log) Info(msg string) {
	l.logger.Info().Msg(msg)
}

// Warn logs msg at warn level.
func (l *Log) Warn(msg string) {
	l.logger.Warn().Msg(msg)
}

// Error logs msg at error level, with err attached when non-nil.
func (l *Log) Error(msg string, err error) {
	e := l.logger.Error()
	if err != nil {
		e = e.Str(zerolog.ErrorFieldName, flatten(err))
	}
	e.Msg(msg)
}

// Outcome logs the one-line summary of a finished run.
func (l *Log) Outcome(o domain.RunOutcome) {
	e := l.logger.Info()
	if o.Status != domain.RunSuccess {
		e = l.logger.Warn()
	}
	e.Str("status", o.Status.String()).
		Int("exit_code", o.ExitCode).
		Str("duration", o.Duration().Round(time.Millisecond).String()).
		Msg("Run finished")
}

// Close releases the underlying file, if any.
func (l *Log) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// flatten keeps the whole error chain on one line.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", " ")
}

// Opener implements ports.TaskLogOpener for a log directory.
type Opener struct {
	dir string
}

// NewOpener creates an Opener writing under dir.
func NewOpener(dir string) *Opener {
	return &Opener{dir: dir}
}

// Open creates dir if needed and opens <dir>/<label>.log for appending.
func (o *Opener) Open(label string) (ports.TaskLog, error) {
	if err := os.MkdirAll(o.dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTaskLogOpenFailed.Error()), "dir", o.dir)
	}

	path := filepath.Join(o.dir, label+domain.TaskLogExt)
	//nolint:gosec // G304: path is the log directory plus the task label
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTaskLogOpenFailed.Error()), "path", path)
	}
	return New(f), nil
}
