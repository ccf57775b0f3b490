// Package output renders review results for the CLI in text, json, and
// markdown formats.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/facet-dev/facet/internal/review"
)

// Writer writes a review result in a specific format.
type Writer interface {
	Write(w io.Writer, result *review.Result) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteResult writes the result to the specified output (file path or stdout).
func WriteResult(result *review.Result, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, result)
}

// displayOrder is the severity grouping used by all renderers.
var displayOrder = []review.Severity{
	review.SeverityCritical,
	review.SeverityWarning,
	review.SeveritySuggestion,
}

func groupBySeverity(issues []review.Issue) map[review.Severity][]review.Issue {
	m := make(map[review.Severity][]review.Issue)
	for _, is := range issues {
		m[is.Severity] = append(m[is.Severity], is)
	}
	return m
}

func lineLabel(is review.Issue) string {
	if is.LineStart == 0 {
		return ""
	}
	start, end := is.Lines()
	if end > start {
		return fmt.Sprintf("L%d-%d", start, end)
	}
	return fmt.Sprintf("L%d", start)
}
