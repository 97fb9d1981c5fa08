package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"skillmatch/internal/api"
	"skillmatch/pkg/catalog"
	"skillmatch/pkg/logger"
	"skillmatch/pkg/metrics"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupServer starts server in the background. The returned channel receives
// the error that stopped it, unless it was stopped by the returned shutdown func.
func setupServer(ctx context.Context, server *http.Server) (<-chan error, func(ctx context.Context)) {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not start webserver: %w", err)
		}
	}()

	return errCh, func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the upload form and JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.Setup(prometheus.DefaultRegisterer)
			if err != nil {
				return err
			}

			an, err := newAnalyzer()
			if err != nil {
				return err
			}

			server, err := api.NewServer(api.Deps{Analyzer: an, Catalog: catalog.Default()}, api.NewOptions(a.cfg))
			if err != nil {
				return err
			}
			serveErr, stopWebserver := setupServer(ctx, server)

			// wait for interrupt or a failing listener
			var runErr error
			select {
			case <-ctx.Done():
			case runErr = <-serveErr:
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop meter provider", zap.Error(err))
			}

			return runErr
		},
	}

	return cmd
}
