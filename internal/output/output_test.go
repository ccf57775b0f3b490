package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/facet-dev/facet/internal/review"
)

func sampleResult() *review.Result {
	return &review.Result{
		OverallScore:         82,
		ReadabilityScore:     85,
		StructureScore:       80,
		MaintainabilityScore: 78,
		Summary:              "Solid code with a few rough edges.",
		LanguageDetected:     "go",
		Issues: []review.Issue{
			{Severity: review.SeverityWarning, Category: "maintainability", Message: "Function is too long", Suggestion: "Split it up", LineStart: 10, LineEnd: 42},
			{Severity: review.SeverityCritical, Category: "structure", Message: "Mixed responsibilities"},
			{Severity: review.SeveritySuggestion, Message: "Consider table-driven tests"},
		},
		Highlights: []string{"Consistent naming"},
	}
}

func TestGetWriter(t *testing.T) {
	for _, format := range []string{"text", "json", "markdown"} {
		if _, err := GetWriter(format); err != nil {
			t.Errorf("GetWriter(%q) error: %v", format, err)
		}
	}
	if _, err := GetWriter("yaml"); err == nil {
		t.Error("GetWriter(yaml) should fail")
	}
}

func TestTextWriter(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Code Review (go)",
		"Overall", "82",
		"Solid code with a few rough edges.",
		"Consistent naming",
		"1 critical, 1 warning, 1 suggestion",
		"CRITICAL", "WARNING", "SUGGESTION",
		"L10-42",
		"Split it up",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\n%s", want, out)
		}
	}

	// Critical issues render before warnings and suggestions.
	if strings.Index(out, "Mixed responsibilities") > strings.Index(out, "Function is too long") {
		t.Error("issues not grouped by severity")
	}
}

func TestTextWriter_NoIssues(t *testing.T) {
	color.NoColor = true
	result := sampleResult()
	result.Issues = []review.Issue{}

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, result); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), "none") {
		t.Error("empty issue list not indicated")
	}
}

func TestJSONWriter_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var decoded review.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.OverallScore != 82 || len(decoded.Issues) != 3 {
		t.Errorf("decoded = %+v", decoded)
	}
	if !strings.Contains(buf.String(), `"overall_score"`) {
		t.Error("JSON output missing snake_case field names")
	}
}

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Code Review",
		"| Overall | 82 |",
		"## Summary",
		"## Highlights",
		"### CRITICAL",
		"### WARNING L10-42 (maintainability)",
		"> **Suggestion:** Split it up",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\n%s", want, out)
		}
	}
}

func TestWrapText(t *testing.T) {
	long := strings.Repeat("word ", 30)
	wrapped := wrapText(strings.TrimSpace(long), 40)
	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > 43 {
			t.Errorf("line too long: %q", line)
		}
	}
}
