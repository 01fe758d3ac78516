package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raoulx24/logkeep/internal/fs"
	"github.com/raoulx24/logkeep/internal/retention"
	"github.com/raoulx24/logkeep/internal/stamp"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list DIR",
		Short: "List timestamped log files newest first, and foreign entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filesystem := fs.New()
			engine := retention.New(retention.WithFS(filesystem))

			listing, err := engine.List(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range listing.Records {
				size := int64(-1)
				if info, err := filesystem.Stat(r.Path); err == nil {
					size = info.Size
				}
				fmt.Fprintf(out, "%s\t%d\t%s\n", stamp.Encode(r.Timestamp), size, filepath.Base(r.Path))
			}
			for _, p := range listing.Foreign {
				fmt.Fprintf(out, "foreign\t-\t%s\n", filepath.Base(p))
			}
			return nil
		},
	}
}
