package review

import (
	"strings"
	"testing"
)

const validResponse = `{
	"language_detected": "python",
	"overall_score": 82,
	"readability_score": 85,
	"structure_score": 80,
	"maintainability_score": 78,
	"summary": "Clean, readable code with minor issues.",
	"issues": [
		{
			"category": "maintainability",
			"severity": "warning",
			"line_start": 12,
			"line_end": 18,
			"message": "Function does too many things",
			"suggestion": "Split into smaller functions"
		}
	],
	"highlights": ["Good naming"]
}`

func TestNormalize_Valid(t *testing.T) {
	result, err := Normalize(validResponse, "python")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if result.OverallScore != 82 {
		t.Errorf("OverallScore = %d, want 82", result.OverallScore)
	}
	if result.LanguageDetected != "python" {
		t.Errorf("LanguageDetected = %q", result.LanguageDetected)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(result.Issues))
	}
	is := result.Issues[0]
	if is.Severity != SeverityWarning {
		t.Errorf("issue severity = %q", is.Severity)
	}
	if is.LineStart != 12 || is.LineEnd != 18 {
		t.Errorf("issue lines = %d-%d, want 12-18", is.LineStart, is.LineEnd)
	}
	if len(result.Highlights) != 1 {
		t.Errorf("got %d highlights, want 1", len(result.Highlights))
	}
}

func TestNormalize_MarkdownFences(t *testing.T) {
	wrapped := "```json\n" + validResponse + "\n```"
	result, err := Normalize(wrapped, "python")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if result.OverallScore != 82 {
		t.Errorf("OverallScore = %d, want 82", result.OverallScore)
	}
}

func TestNormalize_ProseAroundObject(t *testing.T) {
	wrapped := "Here is my assessment:\n" + validResponse + "\nHope this helps!"
	if _, err := Normalize(wrapped, "python"); err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
}

func TestNormalize_NestedBracesInStrings(t *testing.T) {
	content := `{"overall_score": 50, "readability_score": 50, "structure_score": 50,
		"maintainability_score": 50, "summary": "uses {braces} and \"quotes\"",
		"language_detected": "go", "issues": [], "highlights": []}`
	result, err := Normalize(content, "go")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if !strings.Contains(result.Summary, "{braces}") {
		t.Errorf("Summary = %q", result.Summary)
	}
}

func TestNormalize_ClampsScores(t *testing.T) {
	content := `{"overall_score": 150, "readability_score": -10, "structure_score": 99.6,
		"maintainability_score": 0, "summary": "s", "language_detected": "go",
		"issues": [], "highlights": []}`
	result, err := Normalize(content, "go")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if result.OverallScore != 100 {
		t.Errorf("OverallScore = %d, want 100", result.OverallScore)
	}
	if result.ReadabilityScore != 0 {
		t.Errorf("ReadabilityScore = %d, want 0", result.ReadabilityScore)
	}
	if result.StructureScore != 100 {
		t.Errorf("StructureScore = %d, want 100 (rounded)", result.StructureScore)
	}
}

func TestNormalize_MissingScore(t *testing.T) {
	content := `{"overall_score": 80, "readability_score": 80, "structure_score": 80,
		"summary": "s", "language_detected": "go", "issues": [], "highlights": []}`
	_, err := Normalize(content, "go")
	if !IsMalformedResponse(err) {
		t.Fatalf("missing score accepted, got %v", err)
	}
}

func TestNormalize_NonNumericScore(t *testing.T) {
	content := `{"overall_score": "high", "readability_score": 80, "structure_score": 80,
		"maintainability_score": 80, "summary": "s", "language_detected": "go",
		"issues": [], "highlights": []}`
	_, err := Normalize(content, "go")
	if !IsMalformedResponse(err) {
		t.Fatalf("non-numeric score accepted, got %v", err)
	}
}

func TestNormalize_NoObject(t *testing.T) {
	_, err := Normalize("I cannot review this code.", "go")
	if !IsMalformedResponse(err) {
		t.Fatalf("prose-only response accepted, got %v", err)
	}
}

func TestNormalize_DropsBadIssuesKeepsGood(t *testing.T) {
	content := `{"overall_score": 70, "readability_score": 70, "structure_score": 70,
		"maintainability_score": 70, "summary": "s", "language_detected": "go",
		"issues": [
			{"severity": "critical", "message": "real problem", "category": "structure"},
			{"severity": "catastrophic", "message": "unknown severity"},
			{"severity": "warning", "message": "   "},
			{"severity": "suggestion", "message": "style nit"}
		],
		"highlights": []}`
	result, err := Normalize(content, "go")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if len(result.Issues) != 2 {
		t.Fatalf("got %d issues, want 2 (bad entries dropped)", len(result.Issues))
	}
	if result.Issues[0].Message != "real problem" {
		t.Errorf("issues[0].Message = %q", result.Issues[0].Message)
	}
	if result.Issues[1].Severity != SeveritySuggestion {
		t.Errorf("issues[1].Severity = %q", result.Issues[1].Severity)
	}
}

func TestNormalize_MissingCategoryKept(t *testing.T) {
	content := `{"overall_score": 70, "readability_score": 70, "structure_score": 70,
		"maintainability_score": 70, "summary": "s", "language_detected": "go",
		"issues": [{"severity": "warning", "message": "no category"}],
		"highlights": []}`
	result, err := Normalize(content, "go")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("issue without category dropped")
	}
	if result.Issues[0].Category != "" {
		t.Errorf("Category = %q, want empty", result.Issues[0].Category)
	}
}

func TestNormalize_InvalidLineRangeDropped(t *testing.T) {
	content := `{"overall_score": 70, "readability_score": 70, "structure_score": 70,
		"maintainability_score": 70, "summary": "s", "language_detected": "go",
		"issues": [{"severity": "warning", "message": "m", "line_start": 20, "line_end": 5}],
		"highlights": []}`
	result, err := Normalize(content, "go")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if len(result.Issues) != 1 {
		t.Fatal("issue with bad line range dropped, want kept without range")
	}
	if result.Issues[0].LineStart != 0 || result.Issues[0].LineEnd != 0 {
		t.Errorf("lines = %d-%d, want dropped range", result.Issues[0].LineStart, result.Issues[0].LineEnd)
	}
}

func TestNormalize_MissingEndAliasesStart(t *testing.T) {
	content := `{"overall_score": 70, "readability_score": 70, "structure_score": 70,
		"maintainability_score": 70, "summary": "s", "language_detected": "go",
		"issues": [{"severity": "warning", "message": "m", "line_start": 7}],
		"highlights": []}`
	result, err := Normalize(content, "go")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	start, end := result.Issues[0].Lines()
	if start != 7 || end != 7 {
		t.Errorf("Lines() = %d-%d, want 7-7", start, end)
	}
}

func TestNormalize_LanguageFallback(t *testing.T) {
	content := `{"overall_score": 70, "readability_score": 70, "structure_score": 70,
		"maintainability_score": 70, "summary": "s", "language_detected": "",
		"issues": [], "highlights": []}`

	result, err := Normalize(content, "ruby")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if result.LanguageDetected != "ruby" {
		t.Errorf("LanguageDetected = %q, want declared ruby", result.LanguageDetected)
	}

	result, err = Normalize(content, LanguageAuto)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if result.LanguageDetected != "unknown" {
		t.Errorf("LanguageDetected = %q, want unknown", result.LanguageDetected)
	}
}

func TestNormalize_SummaryFallback(t *testing.T) {
	content := `{"overall_score": 70, "readability_score": 70, "structure_score": 70,
		"maintainability_score": 70, "summary": "  ", "language_detected": "go",
		"issues": [], "highlights": []}`
	result, err := Normalize(content, "go")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if result.Summary != "No summary provided." {
		t.Errorf("Summary = %q", result.Summary)
	}
}

func TestNormalize_MissingIssuesAndHighlights(t *testing.T) {
	content := `{"overall_score": 70, "readability_score": 70, "structure_score": 70,
		"maintainability_score": 70, "summary": "s", "language_detected": "go"}`
	result, err := Normalize(content, "go")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if result.Issues == nil || len(result.Issues) != 0 {
		t.Errorf("Issues = %v, want empty non-nil slice", result.Issues)
	}
	if result.Highlights == nil || len(result.Highlights) != 0 {
		t.Errorf("Highlights = %v, want empty non-nil slice", result.Highlights)
	}
}

func TestFilterIssues(t *testing.T) {
	issues := []Issue{
		{Severity: SeverityCritical, Message: "a"},
		{Severity: SeverityCritical, Message: "b"},
		{Severity: SeverityWarning, Message: "c"},
	}

	if got := FilterIssues(issues, "all"); len(got) != 3 {
		t.Errorf("filter all: got %d, want 3", len(got))
	}
	if got := FilterIssues(issues, "warning"); len(got) != 1 || got[0].Message != "c" {
		t.Errorf("filter warning: got %v", got)
	}
	if got := FilterIssues(issues, "suggestion"); len(got) != 0 {
		t.Errorf("filter suggestion: got %d, want 0", len(got))
	}
}
