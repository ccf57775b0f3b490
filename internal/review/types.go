package review

// Severity represents the severity level of an issue.
type Severity string

const (
	SeverityCritical   Severity = "critical"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// SeverityRank returns a numeric rank for sorting (higher = more severe).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeveritySuggestion:
		return 1
	default:
		return 0
	}
}

// MeetsThreshold returns true if severity is at or above the threshold.
func MeetsThreshold(s Severity, threshold string) bool {
	if threshold == "none" || threshold == "" {
		return false
	}
	return SeverityRank(s) >= SeverityRank(Severity(threshold))
}

// Issue is a single flagged problem in the reviewed code.
type Issue struct {
	Severity   Severity `json:"severity"`
	Category   string   `json:"category"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	LineStart  int      `json:"line_start,omitempty"`
	LineEnd    int      `json:"line_end,omitempty"`
}

// Lines returns the issue's display line range. A missing end line
// aliases the start line.
func (i Issue) Lines() (start, end int) {
	if i.LineEnd == 0 {
		return i.LineStart, i.LineStart
	}
	return i.LineStart, i.LineEnd
}

// Request is a validated review request. Immutable once constructed and
// scoped to a single review.
type Request struct {
	Code     string
	Language string
	Focus    []string
}

// Result is the canonical review output schema.
type Result struct {
	OverallScore         int      `json:"overall_score"`
	ReadabilityScore     int      `json:"readability_score"`
	StructureScore       int      `json:"structure_score"`
	MaintainabilityScore int      `json:"maintainability_score"`
	Summary              string   `json:"summary"`
	LanguageDetected     string   `json:"language_detected"`
	Issues               []Issue  `json:"issues"`
	Highlights           []string `json:"highlights"`
}

// SeverityCounts holds issue counts by severity level.
type SeverityCounts struct {
	Critical   int `json:"critical"`
	Warning    int `json:"warning"`
	Suggestion int `json:"suggestion"`
}

// CountBySeverity tallies a result's issues per severity level.
func (r *Result) CountBySeverity() SeverityCounts {
	var c SeverityCounts
	for _, is := range r.Issues {
		switch is.Severity {
		case SeverityCritical:
			c.Critical++
		case SeverityWarning:
			c.Warning++
		case SeveritySuggestion:
			c.Suggestion++
		}
	}
	return c
}

// FilterIssues returns the issues matching the severity filter. The
// filter "all" (or empty) keeps everything.
func FilterIssues(issues []Issue, filter string) []Issue {
	if filter == "" || filter == "all" {
		return issues
	}
	out := make([]Issue, 0, len(issues))
	for _, is := range issues {
		if is.Severity == Severity(filter) {
			out = append(out, is)
		}
	}
	return out
}
