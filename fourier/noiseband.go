package fourier

import (
	"fmt"
	"math"
)

// NoiseBand rejects narrow frequency bands around known noise sources while
// passing everything else. Each band is rejected on both the positive and the
// negative side of the axis.
type NoiseBand struct {
	points  int
	rate    float64
	centers []float64
	widths  []float64
}

// NewNoiseBand creates a band-reject mask.
//
// centers and widths must have equal length. Every band must lie entirely
// within (0, rate/2].
func NewNoiseBand(points int, rate float64, centers, widths []float64) (*NoiseBand, error) {
	if err := validateBase(points, rate); err != nil {
		return nil, err
	}
	if len(centers) == 0 {
		return nil, fmt.Errorf("fourier: noise-band filter needs at least one band")
	}
	if len(centers) != len(widths) {
		return nil, fmt.Errorf("fourier: noise-band centers/widths length mismatch: %d vs %d", len(centers), len(widths))
	}

	for i, c := range centers {
		w := widths[i]
		if w <= 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("fourier: noise-band width must be > 0: %v", w)
		}
		if c-w/2 <= 0 || c+w/2 > rate/2 {
			return nil, fmt.Errorf("fourier: noise band [%v, %v] outside (0, %v]", c-w/2, c+w/2, rate/2)
		}
	}

	return &NoiseBand{
		points:  points,
		rate:    rate,
		centers: append([]float64(nil), centers...),
		widths:  append([]float64(nil), widths...),
	}, nil
}

// Name identifies the filter kind.
func (f *NoiseBand) Name() string { return "noise_band" }

// Response builds the mask over the shifted frequency axis.
func (f *NoiseBand) Response() []float64 {
	mask := onesMask(f.points)
	axis := Axis(f.points, f.rate)
	for i, c := range f.centers {
		markBand(mask, axis, c, f.widths[i], 0)
	}
	return mask
}

// Parameters returns the construction parameters.
func (f *NoiseBand) Parameters() map[string]any {
	return map[string]any{
		"filter":        f.Name(),
		"points":        f.points,
		"sampling_rate": f.rate,
		"centers_[Hz]":  append([]float64(nil), f.centers...),
		"widths_[Hz]":   append([]float64(nil), f.widths...),
	}
}
