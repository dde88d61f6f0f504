package gmode

import (
	"fmt"

	"github.com/probelab/gmode/fourier"
)

// Trial holds everything the interactive "try it on one line" step wants to
// look at: the shifted raw spectrum, the composite mask, the noise floor, and
// the filtered time-domain line.
type Trial struct {
	Raw        []float64
	Spectrum   []complex128 // fft-shifted
	Mask       []float64
	NoiseFloor float64
	Filtered   []float64
}

// TrialLine applies a filter stack to a single line and returns the
// intermediate products for visualization. tolerance 0 disables spectral
// thresholding, in which case NoiseFloor is 0.
func TrialLine(line []float64, rate float64, filters []fourier.Filter, tolerance float64) (*Trial, error) {
	mask, err := fourier.Compose(filters...)
	if err != nil {
		return nil, err
	}
	if len(mask) != len(line) {
		return nil, fmt.Errorf("gmode: filters built for %d points, line has %d", len(mask), len(line))
	}

	spectrum, err := fourier.Forward(line)
	if err != nil {
		return nil, err
	}
	shifted := fourier.Shift(spectrum)

	trial := &Trial{
		Raw:      line,
		Spectrum: shifted,
		Mask:     mask,
	}

	filtered, floor, _, err := filterShiftedSpectrum(shifted, mask, tolerance)
	if err != nil {
		return nil, err
	}
	trial.NoiseFloor = floor
	trial.Filtered = filtered

	return trial, nil
}

// filterShiftedSpectrum masks and thresholds a shifted spectrum, then
// transforms back to the time domain. The input spectrum is not modified; the
// masked copy is returned for condensed storage.
func filterShiftedSpectrum(shifted []complex128, mask []float64, tolerance float64) ([]float64, float64, []complex128, error) {
	floor := 0.0
	if tolerance > 0 {
		var err error
		floor, err = fourier.NoiseFloor(shifted, tolerance)
		if err != nil {
			return nil, 0, nil, err
		}
	}

	work := append([]complex128(nil), shifted...)
	fourier.ApplyMask(work, mask)
	if tolerance > 0 {
		fourier.ThresholdMask(work, floor)
	}

	filtered, err := fourier.Inverse(fourier.Unshift(work))
	if err != nil {
		return nil, 0, nil, err
	}
	return filtered, floor, work, nil
}
