package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/probelab/gmode/usid"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "inspect <file.h5>",
		Short: "Print the container tree and acquisition parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := usid.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			out := cmd.OutOrStdout()
			if err := usid.PrintTree(out, f); err != nil {
				return err
			}

			m, err := resolveMain(f, dataset)
			if err != nil {
				return err
			}
			params, err := usid.ReadParameters(m)
			if err != nil {
				return err
			}

			rows := [][]string{
				{"main dataset", m.Path()},
				{"lines", strconv.Itoa(params.Rows)},
				{"samples per line", strconv.Itoa(params.Cols)},
				{"pixels per line", strconv.Itoa(params.PixelsPerLine)},
				{"points per pixel", strconv.Itoa(params.PointsPerPixel)},
				{"sampling rate [Hz]", formatFloat(params.SamplingRate)},
				{"excitation [Hz]", formatFloat(params.Excitation)},
				{"quantity", params.Quantity},
				{"units", params.Units},
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable([]string{"Parameter", "Value"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataset, "dataset", "d", "", "Path of the main dataset (default: auto-detect)")

	return cmd
}
