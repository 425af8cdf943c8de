// Package theme holds the lipgloss styles shared by the console and TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles for titles, questions, results and secondary text.
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	Question = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	Success  = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	Failure  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	Accent   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	Muted    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	Footer   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)
