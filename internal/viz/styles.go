package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242"))

	OK = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82"))

	Warn = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("220"))

	Fail = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))

	Value = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("213"))
)
