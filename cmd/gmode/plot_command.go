package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probelab/gmode/gmode"
	"github.com/probelab/gmode/plot"
	"github.com/probelab/gmode/usid"
)

func newPlotCommand(ctx *commandContext) *cobra.Command {
	var (
		dataset string
		output  string
		line    int
		pixels  int
	)

	cmd := &cobra.Command{
		Use:   "plot <file.h5>",
		Short: "Render the per-pixel loops of one line to PNG",
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

			data, err := m.ReadLine(line)
			if err != nil {
				return err
			}
			loops, err := gmode.ReshapeToLoops(data, px)
			if err != nil {
				return err
			}

			if err := plot.Loops(output, loops, params.SamplingRate); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG path")
	cmd.Flags().StringVarP(&dataset, "dataset", "d", "", "Path of the main dataset (default: auto-detect)")
	cmd.Flags().IntVarP(&line, "line", "l", 0, "Line index to plot")
	cmd.Flags().IntVarP(&pixels, "pixels", "p", 0, "Pixels per line (default: from container attributes)")
	cmd.MarkFlagRequired("output")

	return cmd
}
