// Package cli wires together the Cobra command tree for the facet binary.
//
// It defines the root command and the review, serve, tui, models, and
// version subcommands, binds flags and configuration, and returns
// deterministic exit codes for CI gating.
package cli
