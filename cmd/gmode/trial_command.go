package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probelab/gmode/gmode"
	"github.com/probelab/gmode/plot"
	"github.com/probelab/gmode/usid"
)

func newTrialCommand(ctx *commandContext) *cobra.Command {
	var (
		dataset string
		recipe  string
		line    int
		linePNG string
		specPNG string
	)

	cmd := &cobra.Command{
		Use:   "trial <file.h5>",
		Short: "Apply a filter recipe to a single line and report the outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := gmode.LoadRecipe(recipe)
			if err != nil {
				return err
			}

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

			raw, err := m.ReadLine(line)
			if err != nil {
				return err
			}
			filters, err := r.Build(m.Cols(), params.SamplingRate)
			if err != nil {
				return err
			}
			trial, err := gmode.TrialLine(raw, params.SamplingRate, filters, r.NoiseTolerance)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "line %d: %d samples, noise floor %s\n",
				line, len(trial.Filtered), formatFloat(trial.NoiseFloor))

			if linePNG != "" {
				if err := plot.Line(linePNG, trial.Raw, trial.Filtered, params.SamplingRate); err != nil {
					return err
				}
				fmt.Fprintln(out, linePNG)
			}
			if specPNG != "" {
				if err := plot.SpectrumOverlay(specPNG, trial, params.SamplingRate); err != nil {
					return err
				}
				fmt.Fprintln(out, specPNG)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&recipe, "recipe", "r", "", "Filter recipe TOML file")
	cmd.Flags().StringVarP(&dataset, "dataset", "d", "", "Path of the main dataset (default: auto-detect)")
	cmd.Flags().IntVarP(&line, "line", "l", 0, "Line index to filter")
	cmd.Flags().StringVar(&linePNG, "line-png", "", "Render raw vs filtered line to this PNG")
	cmd.Flags().StringVar(&specPNG, "spectrum-png", "", "Render spectrum overlay to this PNG")
	cmd.MarkFlagRequired("recipe")

	return cmd
}
