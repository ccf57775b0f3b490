// Package review implements the code review pipeline: input validation,
// prompt construction, model invocation with bounded retries, and
// normalization of the model's untrusted output into the canonical
// result schema.
//
// Normalize is the trust boundary for model output. No other component
// may consume raw model text.
package review
