package review

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxCodeChars is the admission-control ceiling on submitted code,
// counted in Unicode code points. It bounds prompt size and cost.
const MaxCodeChars = 50000

// LanguageAuto asks the model to detect the language from the code.
const LanguageAuto = "auto"

var supportedLanguages = map[string]bool{
	LanguageAuto: true,
	"c":          true,
	"cpp":        true,
	"csharp":     true,
	"go":         true,
	"java":       true,
	"javascript": true,
	"kotlin":     true,
	"php":        true,
	"python":     true,
	"ruby":       true,
	"rust":       true,
	"shell":      true,
	"sql":        true,
	"swift":      true,
	"typescript": true,
}

var validFocusAreas = map[string]bool{
	"readability":     true,
	"structure":       true,
	"maintainability": true,
}

// SupportedLanguages returns the recognized language selectors in sorted
// order, with the auto sentinel first.
func SupportedLanguages() []string {
	langs := []string{LanguageAuto}
	for _, l := range []string{
		"c", "cpp", "csharp", "go", "java", "javascript", "kotlin",
		"php", "python", "ruby", "rust", "shell", "sql", "swift", "typescript",
	} {
		langs = append(langs, l)
	}
	return langs
}

// ValidateInput checks raw submitted code, a language selector, and
// optional focus areas, returning a validated Request. It has no side
// effects. An empty language selector defaults to auto.
func ValidateInput(code, language string, focus []string) (Request, error) {
	if strings.TrimSpace(code) == "" {
		return Request{}, &InvalidInputError{Reason: "code cannot be empty"}
	}
	if n := utf8.RuneCountInString(code); n > MaxCodeChars {
		return Request{}, &InvalidInputError{
			Reason: fmt.Sprintf("code exceeds maximum length of %d characters (got %d)", MaxCodeChars, n),
		}
	}

	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		lang = LanguageAuto
	}
	if !supportedLanguages[lang] {
		return Request{}, &InvalidInputError{
			Reason: fmt.Sprintf("unsupported language %q", language),
		}
	}

	var areas []string
	for _, f := range focus {
		a := strings.ToLower(strings.TrimSpace(f))
		if a == "" {
			continue
		}
		if !validFocusAreas[a] {
			return Request{}, &InvalidInputError{
				Reason: fmt.Sprintf("unknown focus area %q (valid: readability, structure, maintainability)", f),
			}
		}
		areas = append(areas, a)
	}

	return Request{Code: code, Language: lang, Focus: areas}, nil
}
