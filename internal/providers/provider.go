package providers

import (
	"context"
	"fmt"
	"time"
)

// Request contains the prompt payload sent to a model provider.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// Response contains the raw response from a model provider.
type Response struct {
	Content    string
	TokensUsed int
}

// Invoker is the provider abstraction interface. Implementations are
// stateless between calls: each Invoke is a fresh, independent exchange
// with no conversational memory.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (Response, error)
	Name() string
}

// New creates a provider by name. The timeout bounds each upstream call.
func New(provider, model string, timeout time.Duration) (Invoker, error) {
	switch provider {
	case "openai":
		return NewOpenAI(model, timeout)
	case "anthropic":
		return NewAnthropic(model, timeout)
	case "ollama", "lmstudio":
		return NewOllama(model, timeout)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
