package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// successStyle returns the style of the success line for output written to w.
// The renderer drops colors and attributes when w is not a terminal.
func successStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("#FFB84D")).
		Bold(true)
}

// labelStyle returns the style of the "Available columns" and preview labels.
func labelStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("#6B7280"))
}
