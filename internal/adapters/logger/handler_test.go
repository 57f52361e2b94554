package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/bmestref/pycronx/internal/adapters/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, nil), buf
}

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		goldenName string
	}{
		{name: "info", level: slog.LevelInfo, goldenName: "handler_info"},
		{name: "warn", level: slog.LevelWarn, goldenName: "handler_warn"},
		{name: "error", level: slog.LevelError, goldenName: "handler_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t)

			rec := slog.NewRecord(time.Time{}, tt.level, "task started", 0)
			require.NoError(t, h.Handle(context.Background(), rec))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
}

func TestPrettyHandler_Attrs(t *testing.T) {
	h, buf := newTestHandler(t)

	withGroup := h.WithAttrs([]slog.Attr{slog.String("task", "backup_db")}).WithGroup("run")
	rec := slog.NewRecord(time.Time{}, slog.LevelInfo, "finished", 0)
	rec.AddAttrs(slog.Int("exit_code", 0), slog.String("status", "non zero"))
	require.NoError(t, withGroup.Handle(context.Background(), rec))

	assert.Equal(t, "finished task=backup_db run.exit_code=0 run.status=\"non zero\"\n", buf.String())
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	h, buf := newTestHandler(t)

	nested := h.WithGroup("task").WithAttrs([]slog.Attr{slog.String("id", "3f1c")}).WithGroup("run")
	rec := slog.NewRecord(time.Time{}, slog.LevelWarn, "slow", 0)
	rec.AddAttrs(slog.Group("timing", slog.Int("secs", 7)), slog.String("note", ""))
	require.NoError(t, nested.Handle(context.Background(), rec))

	assert.Equal(t, "! slow task.id=3f1c task.run.timing.secs=7 task.run.note=\"\"\n", buf.String())
}

func TestPrettyHandler_LevelThreshold(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	require.NoError(t, h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelError+4, "fatal", 0)))
	assert.Equal(t, "✗ fatal\n", buf.String())
}

func TestPrettyHandler_Stamp(t *testing.T) {
	h, buf := newTestHandler(t)

	at := time.Date(2025, 6, 2, 9, 30, 5, 0, time.UTC)
	require.NoError(t, h.Handle(context.Background(), slog.NewRecord(at, slog.LevelInfo, "tick", 0)))

	assert.Equal(t, "09:30:05 tick\n", buf.String())
}
