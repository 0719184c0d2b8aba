package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"bodyfatd/internal/config"
	"bodyfatd/internal/manager"
	"bodyfatd/internal/registry"
)

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "bodyfatd",
		Short:         "Estimate body fat percentage from body measurements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.bind(root)

	root.AddCommand(
		newServeCmd(opts),
		newPredictCmd(opts),
		newModelsCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	return root
}

// buildManager scans the models directory and constructs the manager.
func buildManager(cfg config.Config, log zerolog.Logger) (*manager.Manager, error) {
	reg, err := registry.LoadDir(cfg.ModelsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load models: %w", err)
	}
	loc, err := exportLocation(cfg.ExportTimezone)
	if err != nil {
		return nil, err
	}
	mcfg := manager.ManagerConfig{
		Registry:       reg,
		MaxQueueDepth:  cfg.MaxQueueDepth,
		ExportLocation: loc,
		Logger:         &log,
	}
	if cfg.MaxWaitMS > 0 {
		mcfg.MaxWait = time.Duration(cfg.MaxWaitMS) * time.Millisecond
	}
	return manager.NewWithConfig(mcfg), nil
}

func loggerFor(cmd *cobra.Command, cfg config.Config) zerolog.Logger {
	var w io.Writer = cmd.ErrOrStderr()
	return newLogger(w, cfg.LogLevel, cfg.LogFormat)
}
