package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probelab/gmode/gmode"
	"github.com/probelab/gmode/usid"
)

func newReshapeCommand(ctx *commandContext) *cobra.Command {
	var (
		dataset string
		pixels  int
	)

	cmd := &cobra.Command{
		Use:   "reshape <file.h5>",
		Short: "Summarize a dataset reshaped into per-pixel loops",
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
			px, err := loopPixels(m, pixels)
			if err != nil {
				return err
			}

			stack, err := gmode.LoopStack(m, px)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d lines x %d pixels x %d points\n",
				len(stack), len(stack[0]), len(stack[0][0]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataset, "dataset", "d", "", "Path of the main dataset (default: auto-detect)")
	cmd.Flags().IntVarP(&pixels, "pixels", "p", 0, "Pixels per line (default: from container attributes)")

	return cmd
}

// loopPixels resolves the pixel count from the flag or the container.
func loopPixels(m *usid.Main, flag int) (int, error) {
	if flag > 0 {
		return flag, nil
	}
	params, err := usid.ReadParameters(m)
	if err != nil {
		return 0, err
	}
	return params.PixelsPerLine, nil
}
