package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/facet-dev/facet/internal/review"
)

// TextWriter writes results as colored human-readable text.
type TextWriter struct{}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

var (
	headColor       = color.New(color.FgCyan, color.Bold)
	criticalColor   = color.New(color.FgRed, color.Bold)
	warningColor    = color.New(color.FgYellow)
	suggestionColor = color.New(color.FgBlue)
	goodColor       = color.New(color.FgGreen)
	dimColor        = color.New(color.Faint)
)

func severityColor(s review.Severity) *color.Color {
	switch s {
	case review.SeverityCritical:
		return criticalColor
	case review.SeverityWarning:
		return warningColor
	default:
		return suggestionColor
	}
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 80:
		return goodColor
	case score >= 50:
		return warningColor
	default:
		return criticalColor
	}
}

// Write renders the result as colored text.
func (tw *TextWriter) Write(w io.Writer, result *review.Result) error {
	ew := &errWriter{w: w}

	ew.printf("%s\n", headColor.Sprintf("Code Review (%s)", result.LanguageDetected))
	ew.printf("\n")
	ew.printf("  Overall         %s\n", scoreColor(result.OverallScore).Sprintf("%3d", result.OverallScore))
	ew.printf("  Readability     %s\n", scoreColor(result.ReadabilityScore).Sprintf("%3d", result.ReadabilityScore))
	ew.printf("  Structure       %s\n", scoreColor(result.StructureScore).Sprintf("%3d", result.StructureScore))
	ew.printf("  Maintainability %s\n", scoreColor(result.MaintainabilityScore).Sprintf("%3d", result.MaintainabilityScore))
	ew.printf("\n%s\n", wrapText(result.Summary, 78))

	if len(result.Highlights) > 0 {
		ew.printf("\n%s\n", headColor.Sprint("Highlights"))
		for _, h := range result.Highlights {
			ew.printf("  %s %s\n", goodColor.Sprint("+"), h)
		}
	}

	counts := result.CountBySeverity()
	ew.printf("\n%s\n", headColor.Sprintf("Issues (%d critical, %d warning, %d suggestion)",
		counts.Critical, counts.Warning, counts.Suggestion))
	if len(result.Issues) == 0 {
		ew.printf("  %s\n", dimColor.Sprint("none"))
		return ew.err
	}

	groups := groupBySeverity(result.Issues)
	for _, sev := range displayOrder {
		for _, is := range groups[sev] {
			tw.writeIssue(ew, is)
		}
	}
	return ew.err
}

func (tw *TextWriter) writeIssue(ew *errWriter, is review.Issue) {
	label := severityColor(is.Severity).Sprint(strings.ToUpper(string(is.Severity)))
	meta := ""
	if ll := lineLabel(is); ll != "" {
		meta = " " + dimColor.Sprint(ll)
	}
	if is.Category != "" {
		meta += " " + dimColor.Sprintf("[%s]", is.Category)
	}
	ew.printf("\n  %s%s\n", label, meta)
	ew.printf("  %s\n", wrapText(is.Message, 76))
	if is.Suggestion != "" {
		ew.printf("  %s %s\n", dimColor.Sprint("fix:"), wrapText(is.Suggestion, 71))
	}
}

// wrapText wraps text to the given width, preserving existing newlines.
func wrapText(text string, width int) string {
	var b strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(wrapLine(line, width))
	}
	return b.String()
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}
	var b strings.Builder
	length := 0
	for i, word := range words {
		if i > 0 {
			if length+1+len(word) > width {
				b.WriteString("\n  ")
				length = 0
			} else {
				b.WriteString(" ")
				length++
			}
		}
		b.WriteString(word)
		length += len(word)
	}
	return b.String()
}
