package fourier

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptyCompose is returned when Compose is called without filters.
var ErrEmptyCompose = errors.New("fourier: compose requires at least one filter")

// Filter is a frequency-domain mask over an fft-shifted axis.
//
// Response returns a vector of the configured length whose entries are 0 or 1.
// Index i corresponds to Axis(points, rate)[i]. Parameters returns the
// construction parameters so that a processing run can record exactly which
// filter was applied.
type Filter interface {
	Name() string
	Response() []float64
	Parameters() map[string]any
}

// Compose multiplies the responses of all filters into a single mask.
//
// All filters must have been built for the same number of points.
func Compose(filters ...Filter) ([]float64, error) {
	if len(filters) == 0 {
		return nil, ErrEmptyCompose
	}

	mask := filters[0].Response()
	for _, f := range filters[1:] {
		r := f.Response()
		if len(r) != len(mask) {
			return nil, fmt.Errorf("fourier: filter %s has %d points, want %d", f.Name(), len(r), len(mask))
		}
		vecmath.MulBlockInPlace(mask, r)
	}

	return mask, nil
}

// validateBase checks the parameters shared by every filter constructor.
func validateBase(points int, rate float64) error {
	if points <= 0 {
		return fmt.Errorf("fourier: points must be > 0: %d", points)
	}
	if rate <= 0 {
		return fmt.Errorf("fourier: sample rate must be > 0: %v", rate)
	}
	return nil
}

// markBand sets mask entries to value wherever |axis| falls inside
// [center-width/2, center+width/2]. Both the positive and the negative image
// of the band are marked.
func markBand(mask, axis []float64, center, width, value float64) {
	lo := center - width/2
	hi := center + width/2
	for i, f := range axis {
		af := f
		if af < 0 {
			af = -af
		}
		if af >= lo && af <= hi {
			mask[i] = value
		}
	}
}

func onesMask(n int) []float64 {
	m := make([]float64, n)
	for i := range m {
		m[i] = 1
	}
	return m
}
