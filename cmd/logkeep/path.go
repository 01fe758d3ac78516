package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the managed log directory",
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

			dir, err := b.LogDir()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
