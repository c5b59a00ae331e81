package cli

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorWarning = lipgloss.Color("214") // Orange
	colorError   = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles for console output.
var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	tableNameStyle = lipgloss.NewStyle().
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	unresolvedStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)
