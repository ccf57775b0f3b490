package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testAnthropic(url string) *Anthropic {
	return &Anthropic{
		apiKey:  "test-key",
		model:   "claude-sonnet-4-5",
		baseURL: url,
		timeout: 5 * time.Second,
		client:  &http.Client{},
	}
}

func TestAnthropic_Invoke(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q", got)
		}
		var body anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if body.System != "sys" {
			t.Errorf("system = %q", body.System)
		}
		if len(body.Messages) != 1 || body.Messages[0].Role != "user" {
			t.Errorf("messages = %+v", body.Messages)
		}

		json.NewEncoder(w).Encode(anthropicResponse{
			Content: []anthropicBlock{
				{Type: "text", Text: "part one "},
				{Type: "text", Text: "part two"},
			},
			Usage: anthropicUsage{InputTokens: 10, OutputTokens: 5},
		})
	}))
	defer srv.Close()

	resp, err := testAnthropic(srv.URL).Invoke(context.Background(), Request{
		SystemPrompt: "sys",
		UserPrompt:   "user",
	})
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if resp.Content != "part one part two" {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.TokensUsed != 15 {
		t.Errorf("TokensUsed = %d, want 15", resp.TokensUsed)
	}
}

func TestAnthropic_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{429, IsRateLimited, "rate limit"},
		{401, IsAuthError, "auth"},
		{529, IsUnavailable, "overloaded"},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		_, err := testAnthropic(srv.URL).Invoke(context.Background(), Request{UserPrompt: "x"})
		if err == nil || !tt.check(err) {
			t.Errorf("%s: got %v", tt.name, err)
		}
		srv.Close()
	}
}

func TestAnthropic_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(anthropicResponse{})
	}))
	defer srv.Close()

	_, err := testAnthropic(srv.URL).Invoke(context.Background(), Request{UserPrompt: "x"})
	if err == nil {
		t.Fatal("empty content accepted")
	}
}

func TestNewAnthropic_MissingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	_, err := NewAnthropic("claude-sonnet-4-5", time.Second)
	if !IsAuthError(err) {
		t.Fatalf("got %v, want auth error", err)
	}
}
