package ui

import (
	"github.com/charmbracelet/lipgloss"

	"hatake/internal/models"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#6BCF7F") // Leaf green
	colorDanger  = lipgloss.Color("#FF6B6B")
	colorWarning = lipgloss.Color("#FFD93D")
	colorCalm    = lipgloss.Color("#87CEEB")
	colorMuted   = lipgloss.Color("#6C757D")
	colorBorder  = lipgloss.Color("#4A9E5C")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	sectionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginBottom(1)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 0, 1, 0)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(colorPrimary).
			Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	scoreStyle = lipgloss.NewStyle().
			Bold(true)
)

// levelStyle colors risk levels and advisory severities alike.
func levelStyle(level string) lipgloss.Style {
	switch level {
	case string(models.RiskHigh):
		return lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	case string(models.RiskMedium):
		return lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorCalm)
	}
}
