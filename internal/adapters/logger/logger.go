// Package logger implements the console logger used by the CLI and the daemon.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/bmestref/pycronx/internal/core/ports"
)

// messager is implemented by zerr errors, which report their own message
// without the wrapped chain.
type messager interface {
	Message() string
}

// metadataer is implemented by zerr errors carrying key/value context.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// Logger implements ports.Logger on top of log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing human-readable lines to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing human-readable lines to w.
func NewWithWriter(w io.Writer) *Logger {
	l := &Logger{}
	l.SetOutput(w)
	return l
}

// SetOutput changes the destination, keeping the current mode.
// A nil writer means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.handler())
}

// SetJSON switches between JSON records and pretty lines.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.handler())
}

func (l *Logger) handler() slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(l.output, opts)
	}
	return NewPrettyHandler(l.output, opts)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its causes. Nil errors are ignored.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := collectErrorEntries(err)
	if l.jsonMode {
		attrs := []any{"error", err.Error()}
		for _, e := range entries {
			for k, v := range e.Metadata {
				attrs = append(attrs, k, v)
			}
		}
		l.logger.Error(entries[0].Message, attrs...)
		return
	}

	l.logger.Error(formatErrorEntries(entries))
}

// collectErrorEntries walks the chain while errors expose their own message.
// The first plain error ends the walk with its full text. Links without a
// message only carry metadata, which is moved to the next link.
func collectErrorEntries(err error) []ErrorEntry {
	var (
		entries []ErrorEntry
		pending map[string]any
	)
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		var md map[string]any
		if mder, ok := current.(metadataer); ok {
			md = mder.Metadata()
		}
		current = errors.Unwrap(current)

		if m.Message() == "" && current != nil {
			pending = mergeMetadata(pending, md)
			continue
		}
		entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: mergeMetadata(pending, md)})
		pending = nil
	}
	return entries
}

func mergeMetadata(dst, src map[string]any) map[string]any {
	if len(dst) == 0 {
		return src
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, formatMetadata(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, formatMetadata(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(md map[string]any, indent string) []string {
	if len(md) == 0 {
		return nil
	}

	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, md[k]))
	}
	return lines
}
