package indicator

import (
	"github.com/bmestref/pycronx/internal/ui/style"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Accent).
			Foreground(style.White)

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Slate).
			Foreground(style.White)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Slate).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
