package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/facet-dev/facet/internal/config"
	"github.com/facet-dev/facet/internal/providers"
	"github.com/facet-dev/facet/internal/review"
	"github.com/facet-dev/facet/internal/server"
)

var (
	flagHost string
	flagPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the review HTTP server",
	Long:  "Serve starts the HTTP API on the configured host and port, exposing POST /api/review and GET /api/health.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagHost, "host", "", "Bind address")
	serveCmd.Flags().IntVar(&flagPort, "port", 0, "Listen port")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if flagHost != "" {
		cfg.Host = flagHost
	}
	if flagPort != 0 {
		cfg.Port = flagPort
	}

	invoker, err := providers.New(cfg.Provider, cfg.Model, cfg.RequestTimeout)
	if err != nil {
		exitCode = exitCodeFor(err)
		return err
	}
	svc := review.NewService(invoker, review.ServiceOptions{RedactSecrets: cfg.RedactSecrets})

	srv := server.New(cfg, svc, nil)
	if err := srv.Start(); err != nil {
		exitCode = ExitRuntimeError
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
