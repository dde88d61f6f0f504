package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probelab/gmode/gmode"
	"github.com/probelab/gmode/usid"
)

func newFilterCommand(ctx *commandContext) *cobra.Command {
	var dataset, recipe string

	cmd := &cobra.Command{
		Use:   "filter <file.h5>",
		Short: "Filter every line of a dataset and store the results in-file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := ctx.logger()
			if err != nil {
				return err
			}
			r, err := gmode.LoadRecipe(recipe)
			if err != nil {
				return err
			}

			f, err := usid.OpenReadWrite(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			m, err := resolveMain(f, dataset)
			if err != nil {
				return err
			}

			result, err := gmode.FilterDataset(cmd.Context(), f, m, r, gmode.FilterOptions{Logger: log})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.FilteredPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&recipe, "recipe", "r", "", "Filter recipe TOML file")
	cmd.Flags().StringVarP(&dataset, "dataset", "d", "", "Path of the main dataset (default: auto-detect)")
	cmd.MarkFlagRequired("recipe")

	return cmd
}
