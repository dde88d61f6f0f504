package fourier

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// planCache reuses FFT plans per signal length. G-mode files contain many
// lines of identical length, so plan construction cost is paid once.
var planCache sync.Map // int -> *algofft.Plan[complex128]

func planFor(n int) (*algofft.Plan[complex128], error) {
	if p, ok := planCache.Load(n); ok {
		return p.(*algofft.Plan[complex128]), nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan for %d points: %w", n, err)
	}

	actual, _ := planCache.LoadOrStore(n, plan)
	return actual.(*algofft.Plan[complex128]), nil
}

// Forward computes the complex spectrum of a real signal.
//
// The result is in natural (unshifted) bin order and has the same length as
// the input.
func Forward(x []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("fourier: forward transform of empty signal")
	}

	plan, err := planFor(len(x))
	if err != nil {
		return nil, err
	}

	in := make([]complex128, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, len(x))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("fourier: forward FFT failed: %w", err)
	}

	return out, nil
}

// Inverse transforms a natural-order spectrum back to the time domain and
// returns the real part. The backend inverse is normalized, so
// Inverse(Forward(x)) reproduces x up to rounding.
func Inverse(spectrum []complex128) ([]float64, error) {
	if len(spectrum) == 0 {
		return nil, fmt.Errorf("fourier: inverse transform of empty spectrum")
	}

	plan, err := planFor(len(spectrum))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(spectrum))
	if err := plan.Inverse(out, spectrum); err != nil {
		return nil, fmt.Errorf("fourier: inverse FFT failed: %w", err)
	}

	x := make([]float64, len(out))
	for i, c := range out {
		x[i] = real(c)
	}

	return x, nil
}

// Shift reorders a natural-order spectrum so that DC sits at the center,
// matching the axis returned by [Axis]. Works for even and odd lengths.
func Shift[T float64 | complex128](x []T) []T {
	n := len(x)
	out := make([]T, n)
	half := n - n/2
	for i := range out {
		out[i] = x[(i+half)%n]
	}
	return out
}

// Unshift is the inverse of [Shift].
func Unshift[T float64 | complex128](x []T) []T {
	n := len(x)
	out := make([]T, n)
	half := n / 2
	for i := range out {
		out[i] = x[(i+half)%n]
	}
	return out
}

// Axis returns the fft-shifted frequency axis for a signal of the given
// length: points values from -rate/2 upward in steps of rate/points.
func Axis(points int, rate float64) []float64 {
	axis := make([]float64, points)
	step := rate / float64(points)
	for i := range axis {
		axis[i] = -rate/2 + float64(i)*step
	}
	return axis
}
