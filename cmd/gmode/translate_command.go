package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probelab/gmode/translate"
)

func newTranslateCommand(ctx *commandContext) *cobra.Command {
	var output, quantity, units string

	cmd := &cobra.Command{
		Use:   "translate <parms-file> <dat-file>...",
		Short: "Translate a raw G-mode acquisition into an HDF5 container",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := ctx.logger()
			if err != nil {
				return err
			}

			tr := translate.New(translate.Options{
				Logger:   log,
				Quantity: quantity,
				Units:    units,
			})
			path, err := tr.Translate(cmd.Context(), args[0], args[1:], output)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output HDF5 path (default: parms file with .h5 extension)")
	cmd.Flags().StringVar(&quantity, "quantity", "Deflection", "Physical quantity of the measured channel")
	cmd.Flags().StringVar(&units, "units", "V", "Units of the measured channel")

	return cmd
}
