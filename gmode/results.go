package gmode

import (
	"context"
	"fmt"
	"log/slog"
	gopath "path"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/probelab/gmode/fourier"
	"github.com/probelab/gmode/internal/logging"
	"github.com/probelab/gmode/usid"
)

// Dataset names written into a results group.
const (
	FilteredDataName     = "Filtered_Data"
	NoiseFloorsName      = "Noise_Floors"
	CondensedBinsName    = "Condensed_Bins"
	CondensedSpectraName = "Condensed_Spectra"

	resultsSuffix = "FFT_Filtering"
)

// Result describes one completed filtering run.
type Result struct {
	GroupPath    string
	FilteredPath string
	Lines        int
	NoiseFloors  []float64
}

// FilterOptions configure a batch run.
type FilterOptions struct {
	Logger *slog.Logger
}

// FilterDataset applies a recipe to every line of a main dataset and writes
// the outcome into a fresh results group next to it.
//
// Lines are processed concurrently with the recipe's worker bound. The source
// dataset is never modified; cancellation aborts between lines and whatever
// was already computed is discarded, so a cancelled run leaves no results
// group behind. The file must have been opened read-write.
func FilterDataset(ctx context.Context, f *usid.File, m *usid.Main, recipe Recipe, opts FilterOptions) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}

	params, err := usid.ReadParameters(m)
	if err != nil {
		return nil, err
	}

	filters, err := recipe.Build(m.Cols(), params.SamplingRate)
	if err != nil {
		return nil, err
	}
	mask, err := fourier.Compose(filters...)
	if err != nil {
		return nil, err
	}

	rows := m.Rows()
	if _, err := m.ReadAll(); err != nil {
		return nil, err
	}

	workers := recipe.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > rows {
		workers = rows
	}

	var keptBins []int64
	if recipe.Condensed {
		for i, v := range mask {
			if v != 0 {
				keptBins = append(keptBins, int64(i))
			}
		}
	}

	filtered := make([][]float64, rows)
	floors := make([]float64, rows)
	condensed := make([][]float64, rows)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	log.Info("filtering dataset",
		"main", m.Path(),
		"lines", rows,
		"workers", workers,
		"filters", len(filters),
		"noise_tolerance", recipe.NoiseTolerance)

	for r := 0; r < rows; r++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			line, err := m.ReadLine(r)
			if err != nil {
				return err
			}

			spectrum, err := fourier.Forward(line)
			if err != nil {
				return err
			}
			shifted := fourier.Shift(spectrum)

			out, floor, masked, err := filterShiftedSpectrum(shifted, mask, recipe.NoiseTolerance)
			if err != nil {
				return fmt.Errorf("gmode: line %d: %w", r, err)
			}

			filtered[r] = out
			floors[r] = floor
			if recipe.Condensed {
				row := make([]float64, 2*len(keptBins))
				for i, bin := range keptBins {
					row[2*i] = real(masked[bin])
					row[2*i+1] = imag(masked[bin])
				}
				condensed[r] = row
			}

			log.Debug("filtered line", "line", r, "noise_floor", floor)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	group, groupPath, err := usid.CreateResultsGroup(f, m.Path(), resultsSuffix)
	if err != nil {
		return nil, err
	}

	// Acquisition attributes travel with the filtered data so it can be
	// reshaped and plotted without going back to the source dataset.
	attrs := map[string]any{
		"algorithm":                 "fft_filtering",
		"num_filters":               len(filters),
		"noise_tolerance":           recipe.NoiseTolerance,
		"source_main":               m.Path(),
		"num_rows":                  params.Rows,
		"pixels_per_line":           params.PixelsPerLine,
		"points_per_pixel":          params.PointsPerPixel,
		"sampling_rate_[Hz]":        params.SamplingRate,
		"excitation_frequency_[Hz]": params.Excitation,
		"quantity":                  params.Quantity,
		"units":                     params.Units,
	}
	for i, flt := range filters {
		for k, v := range flt.Parameters() {
			attrs[fmt.Sprintf("filter_%d_%s", i, k)] = v
		}
	}

	if _, err := group.CreateDataset(FilteredDataName, filtered, usid.AttrOptions(attrs)...); err != nil {
		return nil, fmt.Errorf("gmode: writing %s: %w", FilteredDataName, err)
	}
	if _, err := group.CreateDataset(NoiseFloorsName, floors); err != nil {
		return nil, fmt.Errorf("gmode: writing %s: %w", NoiseFloorsName, err)
	}

	if recipe.Condensed {
		if _, err := group.CreateDataset(CondensedBinsName, keptBins); err != nil {
			return nil, fmt.Errorf("gmode: writing %s: %w", CondensedBinsName, err)
		}
		if _, err := group.CreateDataset(CondensedSpectraName, condensed); err != nil {
			return nil, fmt.Errorf("gmode: writing %s: %w", CondensedSpectraName, err)
		}
	}

	// Duplicate the ancillaries so the filtered dataset satisfies the main
	// dataset convention on re-open.
	if err := copyAncillaries(group, m); err != nil {
		return nil, err
	}

	log.Info("filtering complete", "results", groupPath)

	return &Result{
		GroupPath:    groupPath,
		FilteredPath: gopath.Join(groupPath, FilteredDataName),
		Lines:        rows,
		NoiseFloors:  floors,
	}, nil
}
