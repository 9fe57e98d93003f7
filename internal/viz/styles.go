package viz

import "github.com/charmbracelet/lipgloss"

// Pastel palette, one accent per physical quantity.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8de5a1"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffb482"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	TitleFlow     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a1c9f4"))
	TitlePressure = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff9f9b"))
	TitleRatio    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8de5a1"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)
