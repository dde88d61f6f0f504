package fourier

import (
	"fmt"
	"math"
)

// HarmonicPass rejects everything except narrow bands around the first n
// harmonics of a fundamental frequency. DC is never passed.
type HarmonicPass struct {
	points    int
	rate      float64
	first     float64
	width     float64
	harmonics int
}

// NewHarmonicPass creates a harmonic comb mask.
//
// first is the fundamental (first harmonic) in Hz, width the pass-band width
// around each harmonic. The highest harmonic band must stay below Nyquist;
// exceeding it is an error rather than a silent truncation.
func NewHarmonicPass(points int, rate, first, width float64, harmonics int) (*HarmonicPass, error) {
	if err := validateBase(points, rate); err != nil {
		return nil, err
	}
	if first <= 0 || math.IsNaN(first) {
		return nil, fmt.Errorf("fourier: harmonic fundamental must be > 0: %v", first)
	}
	if width <= 0 || width >= 2*first {
		return nil, fmt.Errorf("fourier: harmonic band width must be in (0, 2*fundamental): %v", width)
	}
	if harmonics <= 0 {
		return nil, fmt.Errorf("fourier: harmonic count must be > 0: %d", harmonics)
	}

	top := float64(harmonics)*first + width/2
	if top > rate/2 {
		return nil, fmt.Errorf("fourier: harmonic %d band reaches %v Hz, beyond Nyquist %v", harmonics, top, rate/2)
	}

	return &HarmonicPass{
		points:    points,
		rate:      rate,
		first:     first,
		width:     width,
		harmonics: harmonics,
	}, nil
}

// Name identifies the filter kind.
func (f *HarmonicPass) Name() string { return "harmonic_pass" }

// Harmonics returns the number of harmonic bands in the comb.
func (f *HarmonicPass) Harmonics() int { return f.harmonics }

// Response builds the mask over the shifted frequency axis.
func (f *HarmonicPass) Response() []float64 {
	mask := make([]float64, f.points)
	axis := Axis(f.points, f.rate)
	for k := 1; k <= f.harmonics; k++ {
		markBand(mask, axis, float64(k)*f.first, f.width, 1)
	}
	return mask
}

// Parameters returns the construction parameters.
func (f *HarmonicPass) Parameters() map[string]any {
	return map[string]any{
		"filter":           f.Name(),
		"points":           f.points,
		"sampling_rate":    f.rate,
		"fundamental_[Hz]": f.first,
		"band_width_[Hz]":  f.width,
		"harmonics":        f.harmonics,
	}
}
