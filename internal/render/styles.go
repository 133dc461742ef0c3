package render

import "github.com/charmbracelet/lipgloss"

// heatmapRamp colours levels 0..4.
var heatmapRamp = []lipgloss.Color{"236", "61", "62", "99", "141"}

var (
	accent  = lipgloss.Color("99")
	success = lipgloss.Color("42")
	muted   = lipgloss.Color("240")

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(muted)

	doneStyle = lipgloss.NewStyle().Foreground(success)

	quoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Italic(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Align(lipgloss.Center)

	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))

	lockedStyle = lipgloss.NewStyle().Foreground(muted).Faint(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)
)
