package testutil

import (
	"testing"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// GModeFixture describes a synthetic G-mode measurement file on disk.
type GModeFixture struct {
	Path           string
	Rows           int
	Pixels         int
	PointsPerPixel int
	Rate           float64
	Excitation     float64
}

// WriteGModeFile writes a small G-mode measurement container to path and
// returns its dimensions. The raw data is a two-harmonic response to an 8 Hz
// excitation with seeded per-line noise, so filter tests see realistic
// structure without shipping binary fixtures.
func WriteGModeFile(t *testing.T, path string) GModeFixture {
	t.Helper()

	fx := GModeFixture{
		Path:           path,
		Rows:           4,
		Pixels:         8,
		PointsPerPixel: 128,
		Rate:           1024,
		Excitation:     8,
	}

	f, err := hdf5.Create(path)
	if err != nil {
		t.Fatalf("creating fixture file: %v", err)
	}

	meas, err := f.Root().CreateGroup("Measurement_000")
	if err != nil {
		t.Fatalf("creating measurement group: %v", err)
	}
	channel, err := meas.CreateGroup("Channel_000")
	if err != nil {
		t.Fatalf("creating channel group: %v", err)
	}

	cols := fx.Pixels * fx.PointsPerPixel
	raw := make([][]float64, fx.Rows)
	for r := range raw {
		raw[r] = GModeLine(fx.Pixels, fx.PointsPerPixel, fx.Rate, fx.Excitation,
			[]float64{1, 0.4}, 0.05, int64(r+1))
	}

	_, err = channel.CreateDataset("Raw_Data", raw,
		hdf5.WithAttribute("quantity", "Deflection"),
		hdf5.WithAttribute("units", "V"),
		hdf5.WithAttribute("num_rows", int64(fx.Rows)),
		hdf5.WithAttribute("num_cols", int64(fx.Pixels)),
		hdf5.WithAttribute("pixels_per_line", int64(fx.Pixels)),
		hdf5.WithAttribute("points_per_pixel", int64(fx.PointsPerPixel)),
		hdf5.WithAttribute("sampling_rate_[Hz]", fx.Rate),
		hdf5.WithAttribute("excitation_frequency_[Hz]", fx.Excitation),
	)
	if err != nil {
		t.Fatalf("creating raw dataset: %v", err)
	}

	posInd := make([][]int64, fx.Rows)
	posVal := make([][]float64, fx.Rows)
	for r := range posInd {
		posInd[r] = []int64{int64(r)}
		posVal[r] = []float64{float64(r) * 1e-6}
	}
	specInd := make([][]int64, 1)
	specVal := make([][]float64, 1)
	specInd[0] = make([]int64, cols)
	specVal[0] = make([]float64, cols)
	for c := 0; c < cols; c++ {
		specInd[0][c] = int64(c)
		specVal[0][c] = float64(c) / fx.Rate
	}

	for name, data := range map[string]interface{}{
		"Position_Indices":      posInd,
		"Position_Values":       posVal,
		"Spectroscopic_Indices": specInd,
		"Spectroscopic_Values":  specVal,
	} {
		if _, err := channel.CreateDataset(name, data); err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
	}

	if err := f.Close(); err != nil {
		t.Fatalf("closing fixture file: %v", err)
	}

	return fx
}
