package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/facet-dev/facet/internal/review"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("facet code review"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSubmitting:
		b.WriteString(m.spin.View())
		b.WriteString(" reviewing your code...\n")
	case stateSuccess:
		b.WriteString(m.viewResult())
	default:
		b.WriteString(m.viewIdle())
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(styleNotice.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleHelp.Render(m.helpLine()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewIdle() string {
	lines := strings.Count(m.code, "\n") + 1
	chars := utf8.RuneCountInString(m.code)
	return fmt.Sprintf("ready to review %d lines (%d characters, language: %s)\n", lines, chars, m.language)
}

func (m Model) viewResult() string {
	var b strings.Builder
	r := m.result

	labels := [4]string{"overall", "readability", "structure", "maintainability"}
	boxes := make([]string, 0, 4)
	for i, label := range labels {
		content := lipgloss.JoinVertical(lipgloss.Center,
			scoreStyle(m.scoreTargets()[i]).Render(fmt.Sprintf("%3d", m.display[i])),
			styleScoreLabel.Render(label),
		)
		boxes = append(boxes, styleScoreBox.Render(content))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	b.WriteString("\n\n")

	b.WriteString(styleSummary.Render(r.Summary))
	b.WriteString("\n")
	b.WriteString(styleIssueMeta.Render("language: " + r.LanguageDetected))
	b.WriteString("\n")

	if len(r.Highlights) > 0 {
		b.WriteString("\n")
		b.WriteString(styleSectionHead.Render("Highlights"))
		b.WriteString("\n")
		for _, h := range r.Highlights {
			b.WriteString(styleHighlight.Render("  + " + h))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styleSectionHead.Render(m.issuesHeading()))
	b.WriteString("\n")
	issues := m.filteredIssues()
	if len(issues) == 0 {
		b.WriteString(styleIssueMeta.Render("  no issues to show"))
		b.WriteString("\n")
		return b.String()
	}

	for _, sev := range []review.Severity{review.SeverityCritical, review.SeverityWarning, review.SeveritySuggestion} {
		for _, is := range issues {
			if is.Severity != sev {
				continue
			}
			b.WriteString(renderIssue(is))
		}
	}

	return b.String()
}

func (m Model) issuesHeading() string {
	c := m.result.CountBySeverity()
	heading := fmt.Sprintf("Issues (%d critical, %d warning, %d suggestion)", c.Critical, c.Warning, c.Suggestion)
	if m.filter != "all" {
		heading += ", showing " + m.filter
	}
	return heading
}

func renderIssue(is review.Issue) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(severityStyle(is.Severity).Render(strings.ToUpper(string(is.Severity))))
	if is.LineStart > 0 {
		start, end := is.Lines()
		if end > start {
			b.WriteString(styleIssueMeta.Render(fmt.Sprintf(" L%d-%d", start, end)))
		} else {
			b.WriteString(styleIssueMeta.Render(fmt.Sprintf(" L%d", start)))
		}
	}
	if is.Category != "" {
		b.WriteString(styleIssueMeta.Render(" [" + is.Category + "]"))
	}
	b.WriteString("\n    ")
	b.WriteString(is.Message)
	b.WriteString("\n")
	if is.Suggestion != "" {
		b.WriteString(styleIssueMeta.Render("    fix: " + is.Suggestion))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpLine() string {
	if m.state == stateSuccess {
		return "r resubmit • a/c/w/s filter all/critical/warning/suggestion • q quit"
	}
	return "enter submit review • q quit"
}
