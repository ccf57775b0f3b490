package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/facet-dev/facet/internal/review"
)

// MarkdownWriter writes results as a markdown report.
type MarkdownWriter struct{}

// Write renders the result as markdown.
func (mw *MarkdownWriter) Write(w io.Writer, result *review.Result) error {
	var b strings.Builder

	b.WriteString("# Code Review\n\n")
	fmt.Fprintf(&b, "**Language:** %s\n\n", result.LanguageDetected)

	b.WriteString("| Dimension | Score |\n")
	b.WriteString("|-----------|-------|\n")
	fmt.Fprintf(&b, "| Overall | %d |\n", result.OverallScore)
	fmt.Fprintf(&b, "| Readability | %d |\n", result.ReadabilityScore)
	fmt.Fprintf(&b, "| Structure | %d |\n", result.StructureScore)
	fmt.Fprintf(&b, "| Maintainability | %d |\n\n", result.MaintainabilityScore)

	b.WriteString("## Summary\n\n")
	b.WriteString(result.Summary)
	b.WriteString("\n")

	if len(result.Highlights) > 0 {
		b.WriteString("\n## Highlights\n\n")
		for _, h := range result.Highlights {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}

	counts := result.CountBySeverity()
	fmt.Fprintf(&b, "\n## Issues (%d critical, %d warning, %d suggestion)\n",
		counts.Critical, counts.Warning, counts.Suggestion)
	if len(result.Issues) == 0 {
		b.WriteString("\nNo issues found.\n")
	} else {
		groups := groupBySeverity(result.Issues)
		for _, sev := range displayOrder {
			for _, is := range groups[sev] {
				mw.writeIssue(&b, is)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (mw *MarkdownWriter) writeIssue(b *strings.Builder, is review.Issue) {
	title := strings.ToUpper(string(is.Severity))
	if ll := lineLabel(is); ll != "" {
		title += " " + ll
	}
	if is.Category != "" {
		title += fmt.Sprintf(" (%s)", is.Category)
	}
	fmt.Fprintf(b, "\n### %s\n\n", title)
	b.WriteString(is.Message)
	b.WriteString("\n")
	if is.Suggestion != "" {
		fmt.Fprintf(b, "\n> **Suggestion:** %s\n", is.Suggestion)
	}
}
