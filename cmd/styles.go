package cmd

import (
	"strings"

	lipgloss "github.com/charmbracelet/lipgloss"
)

const (
	colorRed     = "#f7768e"
	colorGreen   = "#9ece6a"
	colorBlue    = "#7aa2f7"
	colorMagenta = "#bb9af7"
	colorGray    = "#565f89"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorBlue))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))
	keywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMagenta)).Width(28)
)

// statusStyle picks the colour for an interpreter status line
func statusStyle(status string) lipgloss.Style {
	switch {
	case strings.HasPrefix(status, "OK"):
		return okStyle
	case strings.HasPrefix(status, "ERROR"):
		return errorStyle
	default:
		return dimStyle
	}
}
