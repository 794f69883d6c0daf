package cli

import "github.com/charmbracelet/lipgloss"

var styles = struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#7D56F4")).
		Padding(0, 1),
	Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")),
}
