package review

import (
	"strings"
	"testing"
)

func TestValidateInput_Valid(t *testing.T) {
	req, err := ValidateInput("def foo(): pass", "python", nil)
	if err != nil {
		t.Fatalf("ValidateInput error: %v", err)
	}
	if req.Code != "def foo(): pass" {
		t.Errorf("req.Code = %q", req.Code)
	}
	if req.Language != "python" {
		t.Errorf("req.Language = %q, want python", req.Language)
	}
}

func TestValidateInput_EmptyCode(t *testing.T) {
	for _, code := range []string{"", "   ", "\n\t\n"} {
		_, err := ValidateInput(code, "go", nil)
		if err == nil {
			t.Fatalf("ValidateInput(%q) succeeded, want error", code)
		}
		if !IsInvalidInput(err) {
			t.Errorf("IsInvalidInput = false for %v", err)
		}
	}
}

func TestValidateInput_LengthCeiling(t *testing.T) {
	atLimit := strings.Repeat("x", MaxCodeChars)
	if _, err := ValidateInput(atLimit, "go", nil); err != nil {
		t.Errorf("code of exactly %d chars rejected: %v", MaxCodeChars, err)
	}

	over := strings.Repeat("x", MaxCodeChars+1)
	_, err := ValidateInput(over, "go", nil)
	if !IsInvalidInput(err) {
		t.Fatalf("code of %d chars accepted, want InvalidInputError", MaxCodeChars+1)
	}
}

func TestValidateInput_LengthCountsCodePoints(t *testing.T) {
	// Multi-byte runes count once each.
	code := strings.Repeat("é", MaxCodeChars)
	if _, err := ValidateInput(code, "go", nil); err != nil {
		t.Errorf("code of %d multi-byte runes rejected: %v", MaxCodeChars, err)
	}
}

func TestValidateInput_UnknownLanguage(t *testing.T) {
	_, err := ValidateInput("x = 1", "cobol", nil)
	if !IsInvalidInput(err) {
		t.Fatalf("unknown language accepted, want InvalidInputError, got %v", err)
	}
}

func TestValidateInput_EmptyLanguageDefaultsAuto(t *testing.T) {
	req, err := ValidateInput("x = 1", "", nil)
	if err != nil {
		t.Fatalf("ValidateInput error: %v", err)
	}
	if req.Language != LanguageAuto {
		t.Errorf("req.Language = %q, want %q", req.Language, LanguageAuto)
	}
}

func TestValidateInput_LanguageCaseInsensitive(t *testing.T) {
	req, err := ValidateInput("x = 1", "Python", nil)
	if err != nil {
		t.Fatalf("ValidateInput error: %v", err)
	}
	if req.Language != "python" {
		t.Errorf("req.Language = %q, want python", req.Language)
	}
}

func TestValidateInput_FocusAreas(t *testing.T) {
	req, err := ValidateInput("x = 1", "go", []string{"readability", " Structure "})
	if err != nil {
		t.Fatalf("ValidateInput error: %v", err)
	}
	if len(req.Focus) != 2 || req.Focus[0] != "readability" || req.Focus[1] != "structure" {
		t.Errorf("req.Focus = %v", req.Focus)
	}

	_, err = ValidateInput("x = 1", "go", []string{"performance"})
	if !IsInvalidInput(err) {
		t.Errorf("unknown focus area accepted, got %v", err)
	}
}

func TestSupportedLanguages_AutoFirst(t *testing.T) {
	langs := SupportedLanguages()
	if len(langs) == 0 || langs[0] != LanguageAuto {
		t.Fatalf("SupportedLanguages() = %v, want auto first", langs)
	}
	for _, l := range langs {
		if !supportedLanguages[l] {
			t.Errorf("listed language %q is not accepted by ValidateInput", l)
		}
	}
}
