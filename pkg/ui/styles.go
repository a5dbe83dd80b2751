package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorHeader = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	colorError  = lipgloss.AdaptiveColor{Light: "#D7004B", Dark: "#FF4672"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
)

// Styles used by the Printer on a terminal
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	ErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	LabelStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	PathStyle   = lipgloss.NewStyle().Italic(true)
)
