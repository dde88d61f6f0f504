package gmode_test

import (
	"testing"

	"github.com/probelab/gmode/fourier"
	"github.com/probelab/gmode/gmode"
	"github.com/probelab/gmode/internal/testutil"
)

// harmonicRecipe passes the excitation fundamental and its second harmonic,
// matching the fixture signal generated by testutil.GModeLine.
func harmonicRecipe() gmode.Recipe {
	return gmode.Recipe{
		Filters: []gmode.FilterSpec{{
			Kind:          "harmonic_pass",
			FundamentalHz: 8,
			BandWidthHz:   2,
			Harmonics:     2,
		}},
	}
}

func buildFilters(t *testing.T, r gmode.Recipe, points int, rate float64) []fourier.Filter {
	t.Helper()
	filters, err := r.Build(points, rate)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return filters
}

func TestTrialLineRecoversHarmonics(t *testing.T) {
	const (
		pixels = 8
		points = 128
		rate   = 1024.0
		exc    = 8.0
	)
	amps := []float64{1, 0.4}
	noisy := testutil.GModeLine(pixels, points, rate, exc, amps, 0.05, 1)
	clean := testutil.GModeLine(pixels, points, rate, exc, amps, 0, 1)

	filters := buildFilters(t, harmonicRecipe(), len(noisy), rate)
	trial, err := gmode.TrialLine(noisy, rate, filters, 0)
	if err != nil {
		t.Fatalf("TrialLine: %v", err)
	}

	if len(trial.Spectrum) != len(noisy) || len(trial.Mask) != len(noisy) {
		t.Fatalf("intermediate lengths = %d, %d, want %d",
			len(trial.Spectrum), len(trial.Mask), len(noisy))
	}
	if trial.NoiseFloor != 0 {
		t.Errorf("NoiseFloor = %v, want 0 with thresholding disabled", trial.NoiseFloor)
	}
	for i, v := range trial.Mask {
		if v != 0 && v != 1 {
			t.Fatalf("Mask[%d] = %v, want binary", i, v)
		}
	}

	// The harmonics sit exactly on FFT bins, so filtering strips nearly all
	// of the injected noise.
	testutil.RequireSliceNearlyEqual(t, trial.Filtered, clean, 0.05)
}

func TestTrialLineNoiseFloor(t *testing.T) {
	line := testutil.GModeLine(8, 128, 1024, 8, []float64{1, 0.4}, 0.05, 1)
	filters := buildFilters(t, harmonicRecipe(), len(line), 1024)

	trial, err := gmode.TrialLine(line, 1024, filters, 3)
	if err != nil {
		t.Fatalf("TrialLine: %v", err)
	}
	if trial.NoiseFloor <= 0 {
		t.Errorf("NoiseFloor = %v, want > 0", trial.NoiseFloor)
	}
	testutil.RequireFinite(t, trial.Filtered)
}

func TestTrialLineLengthMismatch(t *testing.T) {
	line := make([]float64, 64)
	filters := buildFilters(t, harmonicRecipe(), 128, 1024)

	if _, err := gmode.TrialLine(line, 1024, filters, 0); err == nil {
		t.Error("mismatched filter length should fail")
	}
}

func TestTrialLineNoFilters(t *testing.T) {
	if _, err := gmode.TrialLine(make([]float64, 64), 1024, nil, 0); err == nil {
		t.Error("empty filter stack should fail")
	}
}
