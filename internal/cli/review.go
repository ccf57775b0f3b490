package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/facet-dev/facet/internal/config"
	"github.com/facet-dev/facet/internal/output"
	"github.com/facet-dev/facet/internal/providers"
	"github.com/facet-dev/facet/internal/review"
)

var (
	flagLanguage string
	flagFocus    string
	flagFormat   string
	flagOut      string
	flagFailOn   string
	flagNoRedact bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Review a source file or stdin",
	Long:  "Review reads code from the given file (or stdin when omitted), sends it to the configured LLM provider, and prints a scored assessment.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReview,
}

func init() {
	reviewCmd.Flags().StringVar(&flagLanguage, "language", "auto", "Language of the code (auto to detect)")
	reviewCmd.Flags().StringVar(&flagFocus, "focus", "", "Focus areas, comma-separated (readability, structure, maintainability)")
	reviewCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format (text, json, markdown)")
	reviewCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	reviewCmd.Flags().StringVar(&flagFailOn, "fail-on", "", "Exit non-zero when issues at or above this severity exist (suggestion, warning, critical)")
	reviewCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}

func runReview(cmd *cobra.Command, args []string) error {
	code, err := readCode(args)
	if err != nil {
		exitCode = ExitUsageError
		return err
	}

	cfg := config.Load()
	if flagNoRedact {
		cfg.RedactSecrets = false
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}

	invoker, err := providers.New(cfg.Provider, cfg.Model, cfg.RequestTimeout)
	if err != nil {
		exitCode = exitCodeFor(err)
		return err
	}
	svc := review.NewService(invoker, review.ServiceOptions{RedactSecrets: cfg.RedactSecrets})

	spin := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	spin.Suffix = fmt.Sprintf(" Reviewing with %s/%s...", cfg.Provider, cfg.Model)
	spin.Writer = os.Stderr
	spin.Start()

	result, err := svc.Review(cmd.Context(), code, flagLanguage, splitComma(flagFocus))
	spin.Stop()
	if err != nil {
		exitCode = exitCodeFor(err)
		return err
	}

	if err := output.WriteResult(result, flagFormat, flagOut); err != nil {
		exitCode = ExitRuntimeError
		return err
	}

	if flagFailOn != "" && hasIssueAtOrAbove(result, flagFailOn) {
		exitCode = ExitFindings
	}
	return nil
}

func readCode(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func exitCodeFor(err error) int {
	switch {
	case review.IsInvalidInput(err):
		return ExitUsageError
	case providers.IsAuthError(err):
		return ExitAuthError
	default:
		return ExitRuntimeError
	}
}

func hasIssueAtOrAbove(result *review.Result, threshold string) bool {
	for _, is := range result.Issues {
		if review.MeetsThreshold(is.Severity, threshold) {
			return true
		}
	}
	return false
}

func splitComma(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
