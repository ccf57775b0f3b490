package review

import (
	"context"

	"github.com/facet-dev/facet/internal/providers"
	"github.com/facet-dev/facet/internal/redact"
)

const responseMaxTokens = 4096

// Service runs the full review pipeline: validate, build prompt, invoke
// the model with bounded retries, normalize the response. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	invoker       providers.Invoker
	retry         providers.RetryPolicy
	redactSecrets bool
}

// ServiceOptions configures a Service. The zero value uses the default
// retry policy with redaction enabled.
type ServiceOptions struct {
	Retry         providers.RetryPolicy
	RedactSecrets bool
}

// NewService creates a review service backed by the given model invoker.
func NewService(invoker providers.Invoker, opts ServiceOptions) *Service {
	if opts.Retry.Backoff == 0 {
		opts.Retry = providers.DefaultRetryPolicy()
	}
	return &Service{
		invoker:       invoker,
		retry:         opts.Retry,
		redactSecrets: opts.RedactSecrets,
	}
}

// Review validates the submitted code and produces a normalized Result.
// The first failure is surfaced; no partial results are returned. A
// malformed model response triggers one repair re-invocation before
// failing.
func (s *Service) Review(ctx context.Context, code, language string, focus []string) (*Result, error) {
	req, err := ValidateInput(code, language, focus)
	if err != nil {
		return nil, err
	}

	if s.redactSecrets {
		req.Code = redact.Secrets(req.Code)
	}

	resp, err := s.invoke(ctx, providers.Request{
		SystemPrompt: SystemPrompt(),
		UserPrompt:   BuildUserPrompt(req),
		MaxTokens:    responseMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	result, err := Normalize(resp.Content, req.Language)
	if err == nil {
		return result, nil
	}
	if !IsMalformedResponse(err) {
		return nil, err
	}

	// The model deviated from the schema; ask it to repair its output once.
	repairResp, repairErr := s.invoke(ctx, providers.Request{
		SystemPrompt: SystemPrompt(),
		UserPrompt:   BuildRepairPrompt(err, resp.Content),
		MaxTokens:    responseMaxTokens,
	})
	if repairErr != nil {
		return nil, repairErr
	}

	return Normalize(repairResp.Content, req.Language)
}

// invoke sends one prompt to the model under the bounded retry policy.
func (s *Service) invoke(ctx context.Context, preq providers.Request) (providers.Response, error) {
	var resp providers.Response
	err := providers.Retry(ctx, s.retry, func() error {
		var err error
		resp, err = s.invoker.Invoke(ctx, preq)
		return err
	})
	return resp, err
}
