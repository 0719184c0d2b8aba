package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"bodyfatd/internal/common/fsutil"
	"bodyfatd/internal/httpapi"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Serve the prediction HTTP API",
		Example: "  bodyfatd serve --models-dir ./models --addr :8080",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			log := loggerFor(cmd, cfg)

			if dir, err := fsutil.ResolveDir(cfg.ModelsDir); err == nil && !fsutil.PathExists(dir) {
				log.Warn().Str("models_dir", dir).Msg("models directory does not exist")
			}
			mgr, err := buildManager(cfg, log)
			if err != nil {
				return err
			}
			if cfg.Preload == nil || *cfg.Preload {
				if err := mgr.Preload(); err != nil {
					log.Error().Err(err).Msg("preload incomplete")
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			httpapi.SetLogger(log)
			httpapi.SetDefaultLogLevel(requestLogDefault(cfg.LogLevel))
			httpapi.Configure(httpapi.Options{
				MaxBodyBytes: cfg.MaxBodyBytes,
				CORS:         cfg.CORSEnabled,
				CORSOrigins:  cfg.CORSOrigins,
				BaseContext:  ctx,
			})

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           httpapi.NewMux(mgr),
				ReadHeaderTimeout: 10 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", cfg.Addr).Str("models_dir", cfg.ModelsDir).Int("models", len(mgr.ListModels())).Msg("bodyfatd listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return err
				}
				return nil
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("graceful shutdown error")
				return err
			}
			log.Info().Msg("bodyfatd stopped")
			return nil
		},
	}
}

// requestLogDefault maps the process log level onto per-request logging.
func requestLogDefault(level string) string {
	switch level {
	case "debug", "trace":
		return "debug"
	case "error", "fatal", "panic":
		return "error"
	case "disabled", "off":
		return "off"
	default:
		return "info"
	}
}
