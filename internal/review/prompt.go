package review

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert code reviewer. You analyze source code for readability, structure, and maintainability and produce a structured assessment in JSON format.

Scoring dimensions, each 0-100:
1. Readability: naming conventions, formatting and indentation, comments and documentation, code clarity.
2. Structure: organization and modularity, function/class design, separation of concerns, design patterns.
3. Maintainability: complexity, DRY adherence, error handling, testability, future extensibility.
Also provide an overall 0-100 score.

Rate the severity of every issue as exactly one of "critical", "warning", or "suggestion". Reference line numbers where applicable. Be specific, actionable, and constructive.

You MUST respond with ONLY a single JSON object. No markdown, no explanation, no preamble. The object must have this exact structure:
{
  "language_detected": "the programming language the analysis assumed",
  "overall_score": 0-100,
  "readability_score": 0-100,
  "structure_score": 0-100,
  "maintainability_score": 0-100,
  "summary": "Brief 2-3 sentence summary of the code quality",
  "issues": [
    {
      "category": "readability|structure|maintainability",
      "severity": "critical|warning|suggestion",
      "line_start": <line number or null>,
      "line_end": <line number or null>,
      "message": "Description of the issue",
      "suggestion": "How to fix it"
    }
  ],
  "highlights": ["Positive aspects of the code"]
}

If there are no issues, use an empty array for "issues".`

// SystemPrompt returns the system prompt for the model.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt deterministically renders the model-facing instruction
// for a validated request. The submitted code is embedded verbatim.
// Identical requests always yield identical prompt text.
func BuildUserPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("Review the following code.\n\n")

	if req.Language == LanguageAuto {
		b.WriteString("Detect the programming language from the code and report it in language_detected.\n")
	} else {
		fmt.Fprintf(&b, "The code is written in %s. Treat that as ground truth and report it in language_detected.\n", req.Language)
	}

	if len(req.Focus) > 0 {
		fmt.Fprintf(&b, "Focus especially on: %s.\n", strings.Join(req.Focus, ", "))
	}

	b.WriteString("\n--- BEGIN CODE ---\n")
	b.WriteString(req.Code)
	b.WriteString("\n--- END CODE ---\n")

	return b.String()
}

// BuildRepairPrompt asks the model to fix a response that did not match
// the required schema.
func BuildRepairPrompt(parseErr error, previous string) string {
	return fmt.Sprintf(
		"Your previous response was not a valid review object. The error was: %s\n\nPlease fix it and respond with ONLY a single valid JSON object matching the required schema.\n\nYour previous response was:\n%s",
		parseErr.Error(), previous,
	)
}
