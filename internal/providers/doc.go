// Package providers contains model provider clients (OpenAI, Anthropic,
// Ollama), the error taxonomy for upstream failures, and the bounded
// retry policy. Providers are stateless between calls; every invocation
// is an independent exchange bounded by a per-call timeout.
package providers
