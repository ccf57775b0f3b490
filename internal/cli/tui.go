package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/facet-dev/facet/internal/apiclient"
	"github.com/facet-dev/facet/internal/config"
	"github.com/facet-dev/facet/internal/tui"
)

var flagServerURL string

var tuiCmd = &cobra.Command{
	Use:   "tui <file>",
	Short: "Interactive review session",
	Long:  "Tui loads a source file and opens an interactive terminal session against a running facet server. Press enter to submit, and filter issues by severity once a result arrives.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&flagServerURL, "server", "", "Facet server URL (default from config)")
	tuiCmd.Flags().StringVar(&flagLanguage, "language", "auto", "Language of the code (auto to detect)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		exitCode = ExitUsageError
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	cfg := config.Load()
	url := cfg.ServerURL
	if flagServerURL != "" {
		url = flagServerURL
	}
	client := apiclient.New(url)

	if _, err := client.CheckHealth(cmd.Context()); err != nil {
		exitCode = ExitRuntimeError
		return fmt.Errorf("facet server at %s is not reachable: %w", url, err)
	}

	p := tea.NewProgram(tui.New(client, string(data), flagLanguage), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		exitCode = ExitRuntimeError
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}
