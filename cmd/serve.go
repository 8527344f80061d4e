package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recruitscout/recruitscout/internal/api"
)

// shutdownGrace bounds how long in-flight requests get to finish after a
// termination signal.
const shutdownGrace = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server.",
		Long: `serve starts the HTTP API: an index page listing the configured
job boards, POST /api/scrape to harvest on demand, GET /api/export/csv
for a CSV download, and the usual health and metrics endpoints.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			instance := appFromContext(cmd.Context())
			logger := instance.Logger()

			server := api.NewServer(instance.Harvester(), instance.Clock(), instance.Sources(), logger)
			httpServer := &http.Server{
				Addr:              fmt.Sprintf(":%d", instance.Config().Server.Port),
				Handler:           server.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("http server listening", zap.String("addr", httpServer.Addr))
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down", zap.Duration("grace", shutdownGrace))
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}
}
