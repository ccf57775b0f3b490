package review

import "errors"

// InvalidInputError reports a request that failed admission checks.
// It is a client error and is never retried.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }

// IsInvalidInput checks if an error is an input validation error.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

// MalformedResponseError reports model output that could not be
// normalized into a Result.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "malformed model response: " + e.Reason
}

// IsMalformedResponse checks if an error is a malformed-response error.
func IsMalformedResponse(err error) bool {
	var me *MalformedResponseError
	return errors.As(err, &me)
}
