package indicator

import (
	"strings"

	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/bmestref/pycronx/internal/ui/style"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DetailsTitle heads the details panel.
const DetailsTitle = "Task Details"

// Model is the bubbletea model of the status indicator.
type Model struct {
	Task        *domain.Task
	Icon        *domain.Icon
	ShowDetails bool
	Quitting    bool

	stop func()
}

// NewModel creates a Model for task. stop is called once when the user exits.
func NewModel(task *domain.Task, icon *domain.Icon, stop func()) *Model {
	return &Model{Task: task, Icon: icon, stop: stop}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "d", "enter":
		m.ShowDetails = !m.ShowDetails
	case "x", "q", "ctrl+c":
		if !m.Quitting && m.stop != nil {
			m.stop()
		}
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// Title is the indicator heading, e.g. "backup_db Task".
func (m *Model) Title() string {
	return m.Task.Label() + " Task"
}

// View renders the indicator.
func (m *Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	header := titleStyle.Render(m.Title())
	if m.Icon != nil {
		header = lipgloss.JoinHorizontal(lipgloss.Center, badge(m.Icon), " ", header)
	}
	b.WriteString(header)
	b.WriteString("\n")

	if m.ShowDetails {
		b.WriteString(panelStyle.Render(DetailsTitle + "\n\n" + Details(m.Task)))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("d details " + style.Dot + " x exit"))
	b.WriteString("\n")
	return b.String()
}

// Details renders the read-only task details.
func Details(task *domain.Task) string {
	return "Script Path:\n" + task.ScriptPath +
		"\n\nSchedule:\n" + task.Schedule.Describe() +
		"\n\nAutostart:\n" + yesNoTitle(task.AutoLaunch)
}

func yesNoTitle(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func badge(icon *domain.Icon) string {
	s := badgeStyle
	if icon.Color != "" {
		s = s.Background(lipgloss.Color(icon.Color))
	}
	if icon.TextColor != "" {
		s = s.Foreground(lipgloss.Color(icon.TextColor))
	}
	return s.Render(icon.Text)
}
