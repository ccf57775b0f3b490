package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/facet-dev/facet/internal/review"
)

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#00BFFF") // cyan, primary accent
	colorSuccess    = lipgloss.Color("#00E676") // green, good scores
	colorWarn       = lipgloss.Color("#FFD700") // gold, middling scores and warnings
	colorDanger     = lipgloss.Color("#FF5252") // red, bad scores and critical issues
	colorBlue       = lipgloss.Color("#5B8DEF") // blue, suggestions
	colorMuted      = lipgloss.Color("#636363") // de-emphasized
	colorMutedLight = lipgloss.Color("#8C8C8C") // labels
	colorWhite      = lipgloss.Color("#EEEEEE") // primary text
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleHelp = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleNotice = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleSpinner = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleScoreBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 2).
			Align(lipgloss.Center)

	styleScoreLabel = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleSummary = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleSectionHead = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleHighlight = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleIssueMeta = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// severityStyle returns the display style for an issue severity.
func severityStyle(s review.Severity) lipgloss.Style {
	switch s {
	case review.SeverityCritical:
		return lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	case review.SeverityWarning:
		return lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	}
}

// scoreStyle colors a score by band: green at 80+, gold at 50+, red below.
func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	case score >= 50:
		return lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	}
}
