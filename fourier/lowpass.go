package fourier

import (
	"fmt"
	"math"
)

// LowPass passes every bin whose absolute frequency is at or below the cutoff.
type LowPass struct {
	points int
	rate   float64
	cutoff float64
}

// NewLowPass creates a low-pass mask for signals of the given length.
//
// cutoff must lie in (0, rate/2].
func NewLowPass(points int, rate, cutoff float64) (*LowPass, error) {
	if err := validateBase(points, rate); err != nil {
		return nil, err
	}
	if cutoff <= 0 || cutoff > rate/2 || math.IsNaN(cutoff) {
		return nil, fmt.Errorf("fourier: low-pass cutoff must be in (0, rate/2]: %v", cutoff)
	}

	return &LowPass{points: points, rate: rate, cutoff: cutoff}, nil
}

// Name identifies the filter kind.
func (f *LowPass) Name() string { return "low_pass" }

// Cutoff returns the cutoff frequency in Hz.
func (f *LowPass) Cutoff() float64 { return f.cutoff }

// Response builds the mask over the shifted frequency axis.
func (f *LowPass) Response() []float64 {
	mask := make([]float64, f.points)
	axis := Axis(f.points, f.rate)
	for i, freq := range axis {
		if math.Abs(freq) <= f.cutoff {
			mask[i] = 1
		}
	}
	return mask
}

// Parameters returns the construction parameters.
func (f *LowPass) Parameters() map[string]any {
	return map[string]any{
		"filter":        f.Name(),
		"points":        f.points,
		"sampling_rate": f.rate,
		"cutoff_[Hz]":   f.cutoff,
	}
}
