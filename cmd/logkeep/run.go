package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raoulx24/logkeep/internal/config"
)

type configLoader func() (*config.Config, error)

func newRunCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Initialise logging, report the retention pass and wait for SIGINT/SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			b, err := cfg.Builder()
			if err != nil {
				return err
			}

			h, err := b.Console(cmd.OutOrStdout()).FinishContext(cmd.Context())
			if err != nil {
				return err
			}
			defer h.Close()
			h.SetDefault()

			report := h.Report()
			retLog := h.Module("retention")
			retLog.Info().
				Str("dir", report.Dir).
				Int("kept", len(report.Kept)).
				Int("evicted", len(report.Evicted)).
				Int("collected", len(report.Collected)).
				Msg("log directory trimmed")

			logger := h.Logger()
			logger.Info().Str("file", h.Path()).Msg("logging started")

			// Graceful shutdown
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			logger.Info().Msg("shutting down")
			return nil
		},
	}
}
