package gmode

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/probelab/gmode/fourier"
)

// Recipe describes one filtering run: a stack of frequency-domain filters
// plus thresholding and execution settings.
type Recipe struct {
	// NoiseTolerance controls spectral thresholding; 0 disables it.
	NoiseTolerance float64 `toml:"noise_tolerance"`
	// Workers bounds batch parallelism; 0 means one worker per CPU.
	Workers int `toml:"workers"`
	// Condensed additionally stores the surviving complex bins of every line.
	Condensed bool `toml:"condensed"`

	Filters []FilterSpec `toml:"filters"`
}

// FilterSpec is one filter entry of a recipe. Kind selects the filter type;
// the remaining fields are interpreted per kind.
type FilterSpec struct {
	Kind string `toml:"kind"`

	// low_pass
	CutoffHz float64 `toml:"cutoff_hz"`

	// noise_band
	CentersHz []float64 `toml:"centers_hz"`
	WidthsHz  []float64 `toml:"widths_hz"`

	// harmonic_pass
	FundamentalHz float64 `toml:"fundamental_hz"`
	BandWidthHz   float64 `toml:"band_width_hz"`
	Harmonics     int     `toml:"harmonics"`

	// band_pass
	CenterHz float64 `toml:"center_hz"`
	WidthHz  float64 `toml:"width_hz"`
}

// LoadRecipe reads a TOML recipe file.
func LoadRecipe(path string) (Recipe, error) {
	var r Recipe

	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("gmode: reading recipe: %w", err)
	}
	if err := toml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("gmode: parsing recipe %s: %w", path, err)
	}

	if len(r.Filters) == 0 {
		return r, fmt.Errorf("gmode: recipe %s declares no filters", path)
	}
	if r.NoiseTolerance < 0 {
		return r, fmt.Errorf("gmode: noise tolerance must be >= 0: %v", r.NoiseTolerance)
	}
	if r.Workers < 0 {
		return r, fmt.Errorf("gmode: workers must be >= 0: %d", r.Workers)
	}

	return r, nil
}

// Build instantiates the recipe's filters for a concrete line length and
// sampling rate.
func (r Recipe) Build(points int, rate float64) ([]fourier.Filter, error) {
	if len(r.Filters) == 0 {
		return nil, fmt.Errorf("gmode: recipe has no filters")
	}

	filters := make([]fourier.Filter, 0, len(r.Filters))
	for i, spec := range r.Filters {
		f, err := spec.build(points, rate)
		if err != nil {
			return nil, fmt.Errorf("gmode: filter %d: %w", i, err)
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func (s FilterSpec) build(points int, rate float64) (fourier.Filter, error) {
	switch s.Kind {
	case "low_pass":
		return fourier.NewLowPass(points, rate, s.CutoffHz)
	case "noise_band":
		return fourier.NewNoiseBand(points, rate, s.CentersHz, s.WidthsHz)
	case "harmonic_pass":
		return fourier.NewHarmonicPass(points, rate, s.FundamentalHz, s.BandWidthHz, s.Harmonics)
	case "band_pass":
		return fourier.NewBandPass(points, rate, s.CenterHz, s.WidthHz)
	default:
		return nil, fmt.Errorf("unknown filter kind %q", s.Kind)
	}
}
