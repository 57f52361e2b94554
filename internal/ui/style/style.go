// Package style holds the colours and glyphs shared by the console logger,
// the status indicator and the list view.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Accent = lipgloss.Color("#0EA5E9")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)
