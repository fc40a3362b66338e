package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Underline(true)

	headerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	alertMessageStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	alertErrorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	fieldLabelStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	fieldActiveStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
