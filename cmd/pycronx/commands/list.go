package commands

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bmestref/pycronx/internal/app"
	"github.com/bmestref/pycronx/internal/ui/output"
	"github.com/bmestref/pycronx/internal/ui/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// EmptyListMessage is printed when no task is registered.
const EmptyListMessage = "No tasks registered."

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			watch, _ := cmd.Flags().GetBool("watch")
			if !watch {
				statuses, err := c.app.List(cmd.Context())
				if err != nil {
					return err
				}
				_, _ = io.WriteString(out, RenderTable(statuses)+"\n")
				return nil
			}

			clearScreen := isTerminal(out)
			return c.app.Watch(cmd.Context(), func(statuses []app.TaskStatus) {
				if clearScreen {
					output.New(out).ClearScreen()
				}
				_, _ = io.WriteString(out, RenderTable(statuses)+"\n")
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Re-render the list whenever the registry changes")
	return cmd
}

// RenderTable renders the task list as a table.
func RenderTable(statuses []app.TaskStatus) string {
	if len(statuses) == 0 {
		return EmptyListMessage
	}

	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, []string{
			s.ID,
			s.Script,
			strings.Join(append([]string{s.Schedule}, s.Args...), " "),
			strconv.Itoa(s.PID),
			aliveText(s.Alive),
			s.Autostart,
		})
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(style.Accent).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Slate)).
		Headers("ID", "SCRIPT", "SCHEDULE", "PID", "STATUS", "AUTOSTART").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 4 && row < len(statuses) && statuses[row].Alive:
				return cellStyle.Foreground(style.Green)
			case col == 4:
				return cellStyle.Foreground(style.Red)
			default:
				return cellStyle
			}
		}).
		String()
}

func aliveText(alive bool) string {
	if alive {
		return style.Check + " running"
	}
	return style.Cross + " stopped"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fds fit in int
}
