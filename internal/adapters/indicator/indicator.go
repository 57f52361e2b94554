// Package indicator provides the terminal status indicator of a running task.
package indicator

import (
	"context"
	"io"
	"os"

	"github.com/bmestref/pycronx/internal/core/domain"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Indicator implements ports.StatusIndicator with a bubbletea program.
type Indicator struct {
	in         io.Reader
	out        io.Writer
	isTerminal func() bool
}

// Option configures an Indicator.
type Option func(*Indicator)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(i *Indicator) {
		i.in = in
		i.out = out
	}
}

// WithTerminalCheck replaces the check that a terminal is attached.
func WithTerminalCheck(fn func() bool) Option {
	return func(i *Indicator) {
		i.isTerminal = fn
	}
}

// New creates an Indicator on stdin and stdout.
func New(opts ...Option) *Indicator {
	i := &Indicator{
		in:         os.Stdin,
		out:        os.Stdout,
		isTerminal: stdioIsTerminal,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // fds fit in int
}

// Show runs the indicator until ctx is done or the user exits.
func (i *Indicator) Show(ctx context.Context, task *domain.Task, icon *domain.Icon, stop func()) error {
	if !i.isTerminal() {
		return zerr.With(domain.ErrIndicatorUnavailable, "task", task.Label())
	}

	program := tea.NewProgram(
		NewModel(task, icon, stop),
		tea.WithInput(i.in),
		tea.WithOutput(i.out),
		tea.WithoutSignalHandler(),
	)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			program.Quit()
		case <-done:
		}
	}()

	if _, err := program.Run(); err != nil {
		return zerr.Wrap(err, "status indicator failed")
	}
	return nil
}
