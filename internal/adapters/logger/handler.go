package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/bmestref/pycronx/internal/ui/output"
	"github.com/bmestref/pycronx/internal/ui/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// TimeFormat prefixes every console line. Daemon output ends up in daemon.log,
// where the wall-clock time is the only way to correlate lines with task logs.
const TimeFormat = "15:04:05"

// levelMarks maps a level to its line prefix and colour. Levels below warn use info.
var levelMarks = map[slog.Level]struct {
	prefix string
	color  lipgloss.Color
}{
	slog.LevelInfo:  {"", style.Slate},
	slog.LevelWarn:  {style.Warning + " ", style.Yellow},
	slog.LevelError: {style.Cross + " ", style.Red},
}

// PrettyHandler is a slog.Handler that writes one coloured line per record.
type PrettyHandler struct {
	mu     *sync.Mutex
	out    *termenv.Output
	level  slog.Level
	prefix string // qualified key prefix of the open groups, e.g. "run."
	attrs  string // attrs bound by WithAttrs, already rendered
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	h := &PrettyHandler{mu: &sync.Mutex{}, out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level.Level()
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	mark := levelMarks[slog.LevelInfo]
	switch {
	case r.Level >= slog.LevelError:
		mark = levelMarks[slog.LevelError]
	case r.Level >= slog.LevelWarn:
		mark = levelMarks[slog.LevelWarn]
	}

	var line strings.Builder
	line.WriteString(mark.prefix + r.Message)
	line.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&line, h.prefix, a)
		return true
	})

	text := h.out.String(line.String()).Foreground(termenv.RGBColor(string(mark.color))).String()
	if !r.Time.IsZero() {
		text = h.out.String(r.Time.Format(TimeFormat)).Faint().String() + " " + text
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(text + "\n")
	return err
}

// WithAttrs returns a Handler that renders attrs, under the current groups, on every line.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.prefix, a)
	}
	clone := *h
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a Handler that qualifies later attrs with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// appendAttr writes " key=value", flattening group values into dotted keys.
func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}

	value := a.Value.String()
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		value = strconv.Quote(value)
	}
	b.WriteString(" " + prefix + a.Key + "=" + value)
}
