package review

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// rawResult is the untrusted JSON structure returned by the model.
// Score fields are pointers so an absent score is distinguishable from
// a zero.
type rawResult struct {
	OverallScore         *float64        `json:"overall_score"`
	ReadabilityScore     *float64        `json:"readability_score"`
	StructureScore       *float64        `json:"structure_score"`
	MaintainabilityScore *float64        `json:"maintainability_score"`
	Summary              string          `json:"summary"`
	LanguageDetected     string          `json:"language_detected"`
	Issues               json.RawMessage `json:"issues"`
	Highlights           []string        `json:"highlights"`
}

type rawIssue struct {
	Severity   string `json:"severity"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
	LineStart  *int   `json:"line_start"`
	LineEnd    *int   `json:"line_end"`
}

// Normalize parses raw model output into a validated Result. The model
// output is untrusted: scores are clamped into [0,100], issues with an
// unrecognized severity or a missing message are dropped, and a missing
// language falls back to the request's declared language or "unknown".
// It fails with MalformedResponseError only when no JSON object can be
// located or a top-level score is absent or non-numeric.
func Normalize(content, declaredLanguage string) (*Result, error) {
	obj, err := extractObject(content)
	if err != nil {
		return nil, &MalformedResponseError{Reason: err.Error()}
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("invalid JSON object: %v", err)}
	}

	for name, score := range map[string]*float64{
		"overall_score":         raw.OverallScore,
		"readability_score":     raw.ReadabilityScore,
		"structure_score":       raw.StructureScore,
		"maintainability_score": raw.MaintainabilityScore,
	} {
		if score == nil {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("missing required score %q", name)}
		}
	}

	lang := strings.TrimSpace(raw.LanguageDetected)
	if lang == "" {
		if declaredLanguage != "" && declaredLanguage != LanguageAuto {
			lang = declaredLanguage
		} else {
			lang = "unknown"
		}
	}

	summary := strings.TrimSpace(raw.Summary)
	if summary == "" {
		summary = "No summary provided."
	}

	result := &Result{
		OverallScore:         clampScore(*raw.OverallScore),
		ReadabilityScore:     clampScore(*raw.ReadabilityScore),
		StructureScore:       clampScore(*raw.StructureScore),
		MaintainabilityScore: clampScore(*raw.MaintainabilityScore),
		Summary:              summary,
		LanguageDetected:     lang,
		Issues:               normalizeIssues(raw.Issues),
		Highlights:           normalizeHighlights(raw.Highlights),
	}

	return result, nil
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}

// normalizeIssues decodes each issue independently so one bad entry
// never discards its siblings.
func normalizeIssues(data json.RawMessage) []Issue {
	issues := []Issue{}
	if len(data) == 0 {
		return issues
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return issues
	}

	for _, entry := range entries {
		var ri rawIssue
		if err := json.Unmarshal(entry, &ri); err != nil {
			continue
		}

		sev := Severity(strings.ToLower(strings.TrimSpace(ri.Severity)))
		if SeverityRank(sev) == 0 {
			continue
		}
		msg := strings.TrimSpace(ri.Message)
		if msg == "" {
			continue
		}

		is := Issue{
			Severity:   sev,
			Category:   strings.TrimSpace(ri.Category),
			Message:    msg,
			Suggestion: strings.TrimSpace(ri.Suggestion),
		}
		if start, end, ok := normalizeLines(ri.LineStart, ri.LineEnd); ok {
			is.LineStart = start
			is.LineEnd = end
		}
		issues = append(issues, is)
	}

	return issues
}

// normalizeLines validates an optional line range. Invalid ranges drop
// the range, not the issue.
func normalizeLines(start, end *int) (int, int, bool) {
	if start == nil || *start <= 0 {
		return 0, 0, false
	}
	if end == nil {
		return *start, *start, true
	}
	if *end < *start || *end <= 0 {
		return 0, 0, false
	}
	return *start, *end, true
}

func normalizeHighlights(raw []string) []string {
	highlights := []string{}
	for _, h := range raw {
		h = strings.TrimSpace(h)
		if h != "" {
			highlights = append(highlights, h)
		}
	}
	return highlights
}

// extractObject locates the outermost JSON object in raw model text,
// ignoring code fences and any prose before or after it.
func extractObject(content string) (string, error) {
	content = strings.TrimSpace(content)

	// Strip markdown code fences if present
	if strings.HasPrefix(content, "```") {
		lines := strings.Split(content, "\n")
		if len(lines) >= 2 {
			start := 1
			end := len(lines)
			if strings.TrimSpace(lines[end-1]) == "```" {
				end--
			}
			content = strings.Join(lines[start:end], "\n")
		}
	}

	open := strings.IndexByte(content, '{')
	if open < 0 {
		return "", fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := open; i < len(content); i++ {
		c := content[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return content[open : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unterminated JSON object in response")
}
