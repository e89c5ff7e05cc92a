package ui

import "github.com/charmbracelet/lipgloss"

// Styles defines all lipgloss styles used in the CLI
var Styles = struct {
	Bold       lipgloss.Style
	ErrorBox   lipgloss.Style
	SummaryBox lipgloss.Style
	DoctorTag  lipgloss.Style
	PatientTag lipgloss.Style
}{
	Bold: lipgloss.NewStyle().Bold(true),

	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(0, 1).
		Width(60),

	SummaryBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86")).
		Padding(1, 2).
		Width(76),

	DoctorTag: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")), // Blue

	PatientTag: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("213")), // Pink
}
