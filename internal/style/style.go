// Package style provides consistent terminal styling using Lipgloss.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Bold style for headings and totals
	Bold = lipgloss.NewStyle().
		Bold(true)

	// Warning style for the unassigned bucket
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")) // Yellow

	// Alert style for nonzero overdue and high-priority counts
	Alert = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")) // Red

	// Dim style for secondary information
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")) // Gray
)
