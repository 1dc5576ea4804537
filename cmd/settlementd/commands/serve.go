// Package commands provides the CLI command implementations for the
// settlement daemon: serve, run, treasury and version.
package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tee-settlement/infrastructure/config"
)

const shutdownGrace = 15 * time.Second

// NewServeCommand creates the serve command
func NewServeCommand(container *config.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the settlement HTTP API",
		Long: `Starts the HTTP server exposing the settlement pipeline, job ledger,
treasury balance and health endpoints. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !container.Config.PipelineConfigured() {
				return fmt.Errorf("compute configuration is incomplete: app_address, hub_address, marketplace_url and requester_key are required")
			}

			server, err := container.BuildServer()
			if err != nil {
				return fmt.Errorf("failed to build server: %w", err)
			}

			httpServer := &http.Server{
				Addr:              container.Config.HTTPAddr,
				Handler:           server.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				container.Logger.Info("HTTP server listening", "addr", container.Config.HTTPAddr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return fmt.Errorf("http server failed: %w", err)
			case sig := <-stop:
				container.Logger.Info("Shutting down", "signal", sig.String())
			}

			ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := httpServer.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown failed: %w", err)
			}

			return nil
		},
	}

	return cmd
}
