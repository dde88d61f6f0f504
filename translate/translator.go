package translate

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/probelab/gmode/internal/logging"
	"github.com/probelab/gmode/usid"
)

// Options configure a Translator.
type Options struct {
	// Logger receives per-channel progress. Defaults to a no-op logger.
	Logger *slog.Logger
	// Quantity and Units annotate the main datasets. Default "Deflection"/"V".
	Quantity string
	Units    string
}

// Translator turns raw G-mode acquisitions into measurement containers.
type Translator struct {
	log      *slog.Logger
	quantity string
	units    string
}

// New constructs a Translator.
func New(opts Options) *Translator {
	t := &Translator{
		log:      opts.Logger,
		quantity: opts.Quantity,
		units:    opts.Units,
	}
	if t.log == nil {
		t.log = logging.NewNop()
	}
	if t.quantity == "" {
		t.quantity = "Deflection"
	}
	if t.units == "" {
		t.units = "V"
	}
	return t
}

// Translate validates the sidecar and every sample stream, then writes the
// container to outPath: one channel group per .dat file, each with a main
// dataset, ancillaries, and metadata attributes. All validation happens
// before the output file is created. An empty outPath derives the container
// path from parmsPath by swapping the extension for ".h5".
func (t *Translator) Translate(ctx context.Context, parmsPath string, datPaths []string, outPath string) (string, error) {
	if len(datPaths) == 0 {
		return "", fmt.Errorf("translate: no channel data files given")
	}
	if outPath == "" {
		outPath = strings.TrimSuffix(parmsPath, filepath.Ext(parmsPath)) + ".h5"
	}

	pf, err := os.Open(parmsPath)
	if err != nil {
		return "", fmt.Errorf("translate: opening parms: %w", err)
	}
	parms, err := ParseParms(pf)
	pf.Close()
	if err != nil {
		return "", err
	}

	rows, err := parms.Int("num_rows")
	if err != nil {
		return "", err
	}
	pixels, err := parms.Int("num_cols")
	if err != nil {
		return "", err
	}
	rate, err := parms.Float("sampling_rate_[Hz]")
	if err != nil {
		return "", err
	}
	excitation, err := parms.Float("excitation_frequency_[Hz]")
	if err != nil {
		return "", err
	}
	if rows <= 0 || pixels <= 0 || rate <= 0 {
		return "", fmt.Errorf("translate: invalid scan geometry: rows=%d pixels=%d rate=%v", rows, pixels, rate)
	}

	// Sanity-check every stream before touching the output path.
	cols := 0
	for _, dat := range datPaths {
		c, err := samplesPerLine(dat, rows, pixels)
		if err != nil {
			return "", err
		}
		if cols == 0 {
			cols = c
		} else if c != cols {
			return "", fmt.Errorf("translate: %s has %d samples per line, previous channels have %d", dat, c, cols)
		}
	}

	out, err := usid.Create(outPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	meas, err := out.HDF5().Root().CreateGroup("Measurement_000")
	if err != nil {
		return "", fmt.Errorf("translate: creating measurement group: %w", err)
	}

	for i, dat := range datPaths {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("translate: %w", err)
		}

		matrix, err := readLines(dat, rows, cols)
		if err != nil {
			return "", err
		}

		channel, err := meas.CreateGroup(fmt.Sprintf("Channel_%03d", i))
		if err != nil {
			return "", fmt.Errorf("translate: creating channel group: %w", err)
		}

		attrs := usid.AttrOptions(map[string]any{
			"quantity":                  t.quantity,
			"units":                     t.units,
			"num_rows":                  rows,
			"num_cols":                  pixels,
			"pixels_per_line":           pixels,
			"points_per_pixel":          cols / pixels,
			"sampling_rate_[Hz]":        rate,
			"excitation_frequency_[Hz]": excitation,
			"source_file":               dat,
		})
		if _, err := channel.CreateDataset(usid.RawDataName, matrix, attrs...); err != nil {
			return "", fmt.Errorf("translate: writing %s: %w", usid.RawDataName, err)
		}

		if err := writeAncillaries(channel, rows, cols, rate); err != nil {
			return "", err
		}

		t.log.Info("translated channel",
			"channel", i,
			"source", dat,
			"rows", rows,
			"samples_per_line", cols)
	}

	return outPath, nil
}

// samplesPerLine validates a stream's size against the scan geometry and
// returns the per-line sample count.
func samplesPerLine(dat string, rows, pixels int) (int, error) {
	info, err := os.Stat(dat)
	if err != nil {
		return 0, fmt.Errorf("translate: stat %s: %w", dat, err)
	}

	if info.Size()%4 != 0 {
		return 0, fmt.Errorf("translate: %s size %d is not a whole number of float32 samples", dat, info.Size())
	}
	total := int(info.Size() / 4)
	if total == 0 || total%rows != 0 {
		return 0, fmt.Errorf("translate: %s has %d samples, not divisible into %d lines", dat, total, rows)
	}
	cols := total / rows
	if cols%pixels != 0 {
		return 0, fmt.Errorf("translate: %s has %d samples per line, not divisible into %d pixels", dat, cols, pixels)
	}
	return cols, nil
}

// readLines loads a little-endian float32 stream as a rows x cols matrix of
// float64.
func readLines(dat string, rows, cols int) ([][]float64, error) {
	raw, err := os.ReadFile(dat)
	if err != nil {
		return nil, fmt.Errorf("translate: reading %s: %w", dat, err)
	}
	if len(raw) != rows*cols*4 {
		return nil, fmt.Errorf("translate: %s changed size during translation", dat)
	}

	matrix := make([][]float64, rows)
	for r := range matrix {
		line := make([]float64, cols)
		base := r * cols * 4
		for c := range line {
			bits := binary.LittleEndian.Uint32(raw[base+c*4:])
			line[c] = float64(math.Float32frombits(bits))
		}
		matrix[r] = line
	}
	return matrix, nil
}

// writeAncillaries creates the four ancillary datasets: one position step per
// line, one spectroscopic step per time sample.
func writeAncillaries(channel *hdf5.Group, rows, cols int, rate float64) error {
	posInd := make([][]int64, rows)
	posVal := make([][]float64, rows)
	for r := range posInd {
		posInd[r] = []int64{int64(r)}
		posVal[r] = []float64{float64(r)}
	}

	specInd := [][]int64{make([]int64, cols)}
	specVal := [][]float64{make([]float64, cols)}
	for c := 0; c < cols; c++ {
		specInd[0][c] = int64(c)
		specVal[0][c] = float64(c) / rate
	}

	for name, data := range map[string]interface{}{
		usid.PositionIndicesName:      posInd,
		usid.PositionValuesName:       posVal,
		usid.SpectroscopicIndicesName: specInd,
		usid.SpectroscopicValuesName:  specVal,
	} {
		if _, err := channel.CreateDataset(name, data); err != nil {
			return fmt.Errorf("translate: writing %s: %w", name, err)
		}
	}
	return nil
}
