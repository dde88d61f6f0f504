package fourier

import (
	"fmt"
	"math"
)

// BandPass passes a single band around a center frequency, on both sides of
// the axis, and rejects everything else.
type BandPass struct {
	points int
	rate   float64
	center float64
	width  float64
}

// NewBandPass creates a band-pass mask. The band must lie within (0, rate/2].
func NewBandPass(points int, rate, center, width float64) (*BandPass, error) {
	if err := validateBase(points, rate); err != nil {
		return nil, err
	}
	if width <= 0 || math.IsNaN(width) {
		return nil, fmt.Errorf("fourier: band-pass width must be > 0: %v", width)
	}
	if center-width/2 <= 0 || center+width/2 > rate/2 {
		return nil, fmt.Errorf("fourier: band-pass band [%v, %v] outside (0, %v]", center-width/2, center+width/2, rate/2)
	}

	return &BandPass{points: points, rate: rate, center: center, width: width}, nil
}

// Name identifies the filter kind.
func (f *BandPass) Name() string { return "band_pass" }

// Response builds the mask over the shifted frequency axis.
func (f *BandPass) Response() []float64 {
	mask := make([]float64, f.points)
	markBand(mask, Axis(f.points, f.rate), f.center, f.width, 1)
	return mask
}

// Parameters returns the construction parameters.
func (f *BandPass) Parameters() map[string]any {
	return map[string]any{
		"filter":        f.Name(),
		"points":        f.points,
		"sampling_rate": f.rate,
		"center_[Hz]":   f.center,
		"width_[Hz]":    f.width,
	}
}
