// Facet is a CLI and HTTP service for AI-assisted code quality review.
//
// It scores a block of source code on readability, structure, and
// maintainability using an LLM provider, and reports issues with
// severity levels and improvement suggestions.
//
// Usage:
//
//	facet review main.go              # review a file, print a scored report
//	cat main.go | facet review        # review code from stdin
//	facet serve                       # run the HTTP API
//	facet tui main.go                 # interactive session against a server
//	facet models list                 # list known providers and models
package main
