package fourier

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// maxFloorRounds bounds the iterative refinement; the estimate almost always
// settles within a handful of passes.
const maxFloorRounds = 32

// NoiseFloor estimates the amplitude below which spectrum bins are considered
// noise.
//
// The estimate is computed iteratively: starting from all bins, the threshold
// mean + tolerance*stddev is recomputed over the bins that survived the
// previous round, until the surviving set stops shrinking. Larger tolerances
// give more permissive floors. A spectrum whose bins are all equal converges
// in a single pass.
func NoiseFloor(spectrum []complex128, tolerance float64) (float64, error) {
	if len(spectrum) == 0 {
		return 0, fmt.Errorf("fourier: noise floor of empty spectrum")
	}
	if tolerance <= 0 {
		return 0, fmt.Errorf("fourier: noise floor tolerance must be > 0: %v", tolerance)
	}

	kept := Magnitude(spectrum)

	var floor float64
	for round := 0; round < maxFloorRounds; round++ {
		mean, err := stats.Mean(kept)
		if err != nil {
			return 0, fmt.Errorf("fourier: noise floor statistics: %w", err)
		}
		sd, err := stats.StandardDeviation(kept)
		if err != nil {
			return 0, fmt.Errorf("fourier: noise floor statistics: %w", err)
		}

		floor = mean + tolerance*sd

		next := kept[:0]
		for _, m := range kept {
			if m <= floor {
				next = append(next, m)
			}
		}
		if len(next) == len(kept) || len(next) == 0 {
			break
		}
		kept = next
	}

	return floor, nil
}

// ThresholdMask zeroes every spectrum bin whose magnitude falls below floor.
// It returns the number of bins zeroed.
func ThresholdMask(spectrum []complex128, floor float64) int {
	mags := Magnitude(spectrum)
	zeroed := 0
	for i, m := range mags {
		if m < floor {
			spectrum[i] = 0
			zeroed++
		}
	}
	return zeroed
}
