package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probelab/gmode/export"
	"github.com/probelab/gmode/gmode"
	"github.com/probelab/gmode/usid"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		dataset     string
		output      string
		pixels      int
		compression string
	)

	cmd := &cobra.Command{
		Use:   "export <file.h5>",
		Short: "Export per-pixel loops to a Parquet file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := usid.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			m, err := resolveMain(f, dataset)
			if err != nil {
				return err
			}
			params, err := usid.ReadParameters(m)
			if err != nil {
				return err
			}
			px, err := loopPixels(m, pixels)
			if err != nil {
				return err
			}

			stack, err := gmode.LoopStack(m, px)
			if err != nil {
				return err
			}

			n, err := export.WriteLoops(output, stack, params.SamplingRate,
				export.Options{Compression: compression})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d rows)\n", output, n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output Parquet path")
	cmd.Flags().StringVarP(&dataset, "dataset", "d", "", "Path of the main dataset (default: auto-detect)")
	cmd.Flags().IntVarP(&pixels, "pixels", "p", 0, "Pixels per line (default: from container attributes)")
	cmd.Flags().StringVar(&compression, "compression", "zstd", "Parquet compression (zstd, snappy, gzip, lz4, none)")
	cmd.MarkFlagRequired("output")

	return cmd
}
