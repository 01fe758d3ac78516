// Command logkeep sets up run logging and maintains its log directory.
//
// Usage:
//
//	logkeep run   [--config file]        start logging and wait for a signal
//	logkeep prune DIR [--keep N]         one retention pass over DIR
//	logkeep list  DIR                    show what a pass would see
//	logkeep path  [--config file]        print the managed log directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raoulx24/logkeep/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "logkeep",
		Short:         "Run logging with a bounded, timestamped log directory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.yaml (defaults are used when empty)")

	loadConfig := func() (*config.Config, error) {
		if configPath == "" {
			return config.Default(), nil
		}
		return config.Load(configPath)
	}

	cmd.AddCommand(
		newRunCmd(loadConfig),
		newPruneCmd(),
		newListCmd(),
		newPathCmd(loadConfig),
	)

	return cmd
}
