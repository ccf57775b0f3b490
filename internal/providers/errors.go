package providers

import (
	"context"
	"errors"
	"net"
)

type timeoutError struct{}

func (e *timeoutError) Error() string { return "model call timed out" }

type rateLimitError struct{}

func (e *rateLimitError) Error() string { return "rate limited by model provider" }

type unavailableError struct {
	statusCode int
	cause      error
}

func (e *unavailableError) Error() string {
	if e.cause != nil {
		return "model provider unavailable: " + e.cause.Error()
	}
	return "model provider unavailable"
}

func (e *unavailableError) Unwrap() error { return e.cause }

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "authentication error: " + e.message
}

// NewTimeoutError returns an error satisfying IsTimeout.
func NewTimeoutError() error { return &timeoutError{} }

// NewRateLimitError returns an error satisfying IsRateLimited.
func NewRateLimitError() error { return &rateLimitError{} }

// NewUnavailableError returns an error satisfying IsUnavailable.
func NewUnavailableError(cause error) error { return &unavailableError{cause: cause} }

// NewAuthError returns an error satisfying IsAuthError.
func NewAuthError(message string) error { return &authError{message: message} }

// IsTimeout checks if an error is an upstream timeout.
func IsTimeout(err error) bool {
	var te *timeoutError
	return errors.As(err, &te)
}

// IsRateLimited checks if an error is an upstream rate limit.
func IsRateLimited(err error) bool {
	var re *rateLimitError
	return errors.As(err, &re)
}

// IsUnavailable checks if an error is an upstream availability failure.
func IsUnavailable(err error) bool {
	var ue *unavailableError
	return errors.As(err, &ue)
}

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	var ae *authError
	return errors.As(err, &ae)
}

// IsTransient reports whether an error belongs to a retryable class:
// timeout, rate limit, or upstream unavailability. Authentication and
// input errors are never transient.
func IsTransient(err error) bool {
	return IsTimeout(err) || IsRateLimited(err) || IsUnavailable(err)
}

// classifyTransportError maps an http.Client error to the taxonomy.
// Caller cancellation passes through untouched so it is never retried.
func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &timeoutError{}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &timeoutError{}
	}
	return &unavailableError{cause: err}
}
