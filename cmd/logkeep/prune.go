package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/raoulx24/logkeep/internal/bootstrap"
	"github.com/raoulx24/logkeep/internal/logging"
	"github.com/raoulx24/logkeep/internal/retention"
)

func newPruneCmd() *cobra.Command {
	var (
		keep        int
		keepForeign bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "prune DIR",
		Short: "Remove foreign entries and evict old log files from DIR",
		Long: `Run one retention pass over DIR.

Entries whose name (without extension) is not a YYYY-MM-DD_HH-MM-SS token
are deleted unless --keep-foreign is set. Timestamped files are then
evicted oldest first until fewer than --keep remain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl := zerolog.InfoLevel
			if verbose {
				lvl = zerolog.DebugLevel
			}
			logger := logging.New(cmd.ErrOrStderr(), nil, lvl).With().Str(logging.ModuleField, "retention").Logger()

			engine := retention.New(
				retention.WithLogger(logging.NewZeroLogger(logger)),
				retention.KeepForeign(keepForeign),
			)

			report, err := engine.Apply(cmd.Context(), args[0], keep)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range report.Collected {
				fmt.Fprintf(out, "removed %s\n", p)
			}
			for _, r := range report.Evicted {
				fmt.Fprintf(out, "evicted %s\n", r.Path)
			}
			fmt.Fprintf(out, "%d kept\n", len(report.Kept))
			return nil
		},
	}

	cmd.Flags().IntVarP(&keep, "keep", "k", bootstrap.DefaultMaxFiles, "Retention limit; fewer than this many files remain")
	cmd.Flags().BoolVar(&keepForeign, "keep-foreign", false, "Leave entries with unparseable names in place")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every eviction")

	return cmd
}
