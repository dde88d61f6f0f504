package translate_test

import (
	"context"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/probelab/gmode/internal/testutil"
	"github.com/probelab/gmode/translate"
	"github.com/probelab/gmode/usid"
)

const parmsText = `# G-mode line scan
num_rows : 3
num_cols : 4
sampling_rate_[Hz] : 1024
excitation_frequency_[Hz] : 8
tip_bias_[V] = 1.5
`

func TestParseParms(t *testing.T) {
	p, err := translate.ParseParms(strings.NewReader(parmsText))
	if err != nil {
		t.Fatalf("ParseParms: %v", err)
	}

	rows, err := p.Int("num_rows")
	if err != nil || rows != 3 {
		t.Errorf("num_rows = %d, %v", rows, err)
	}

	// Unit-suffix tolerance in both directions.
	rate, err := p.Float("sampling_rate")
	if err != nil || rate != 1024 {
		t.Errorf("sampling_rate = %v, %v", rate, err)
	}
	bias, err := p.Float("tip_bias")
	if err != nil || bias != 1.5 {
		t.Errorf("tip_bias = %v, %v", bias, err)
	}

	if _, err := p.Float("missing"); err == nil {
		t.Error("missing key should fail")
	}
}

func TestParseParmsBadLine(t *testing.T) {
	if _, err := translate.ParseParms(strings.NewReader("no separator here\n")); err == nil {
		t.Error("line without separator should fail")
	}
	if _, err := translate.ParseParms(strings.NewReader(": orphan value\n")); err == nil {
		t.Error("empty key should fail")
	}
}

// writeRaw writes samples as a little-endian float32 stream.
func writeRaw(t *testing.T, path string, samples []float64) {
	t.Helper()

	buf := make([]byte, len(samples)*4)
	for i, v := range samples {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(float32(v)))
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("writing raw stream: %v", err)
	}
}

func TestTranslate(t *testing.T) {
	dir := t.TempDir()

	parmsPath := filepath.Join(dir, "parms.txt")
	if err := os.WriteFile(parmsPath, []byte(parmsText), 0o644); err != nil {
		t.Fatal(err)
	}

	// 3 lines x 4 pixels x 32 points.
	line := testutil.GModeLine(4, 32, 1024, 8, []float64{1}, 0, 5)
	var all []float64
	for r := 0; r < 3; r++ {
		all = append(all, line...)
	}
	datPath := filepath.Join(dir, "channel0.dat")
	writeRaw(t, datPath, all)

	outPath := filepath.Join(dir, "out.h5")
	tr := translate.New(translate.Options{})

	got, err := tr.Translate(context.Background(), parmsPath, []string{datPath}, outPath)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != outPath {
		t.Errorf("returned path = %s", got)
	}

	f, err := usid.Open(outPath)
	if err != nil {
		t.Fatalf("opening translated file: %v", err)
	}
	defer f.Close()

	m, err := usid.FindMain(f)
	if err != nil {
		t.Fatalf("FindMain: %v", err)
	}
	if m.Rows() != 3 || m.Cols() != 128 {
		t.Errorf("shape = %dx%d, want 3x128", m.Rows(), m.Cols())
	}

	p, err := usid.ReadParameters(m)
	if err != nil {
		t.Fatalf("ReadParameters: %v", err)
	}
	if p.SamplingRate != 1024 || p.Excitation != 8 || p.PixelsPerLine != 4 || p.PointsPerPixel != 32 {
		t.Errorf("parameters = %+v", p)
	}

	// float32 round trip loses precision against the float64 source.
	read, err := m.ReadLine(1)
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, read, line, 1e-6)
}

func TestTranslateValidatesBeforeWriting(t *testing.T) {
	dir := t.TempDir()

	parmsPath := filepath.Join(dir, "parms.txt")
	// Missing excitation_frequency.
	bad := "num_rows : 2\nnum_cols : 2\nsampling_rate_[Hz] : 100\n"
	if err := os.WriteFile(parmsPath, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	datPath := filepath.Join(dir, "c.dat")
	writeRaw(t, datPath, make([]float64, 8))

	outPath := filepath.Join(dir, "out.h5")
	tr := translate.New(translate.Options{})

	if _, err := tr.Translate(context.Background(), parmsPath, []string{datPath}, outPath); err == nil {
		t.Fatal("missing parms key should fail")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("output file created despite validation failure")
	}
}

func TestTranslateGeometryMismatch(t *testing.T) {
	dir := t.TempDir()

	parmsPath := filepath.Join(dir, "parms.txt")
	if err := os.WriteFile(parmsPath, []byte(parmsText), 0o644); err != nil {
		t.Fatal(err)
	}

	// 10 samples do not divide into 3 lines.
	datPath := filepath.Join(dir, "c.dat")
	writeRaw(t, datPath, make([]float64, 10))

	tr := translate.New(translate.Options{})
	if _, err := tr.Translate(context.Background(), parmsPath, []string{datPath}, filepath.Join(dir, "out.h5")); err == nil {
		t.Fatal("indivisible stream should fail")
	}
}

func TestTranslateNoChannels(t *testing.T) {
	tr := translate.New(translate.Options{})
	if _, err := tr.Translate(context.Background(), "parms.txt", nil, "out.h5"); err == nil {
		t.Fatal("empty channel list should fail")
	}
}

func TestTranslateDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()

	parmsPath := filepath.Join(dir, "scan.parm")
	if err := os.WriteFile(parmsPath, []byte(parmsText), 0o644); err != nil {
		t.Fatal(err)
	}

	line := testutil.GModeLine(4, 32, 1024, 8, []float64{1}, 0, 5)
	var all []float64
	for r := 0; r < 3; r++ {
		all = append(all, line...)
	}
	datPath := filepath.Join(dir, "c.dat")
	writeRaw(t, datPath, all)

	tr := translate.New(translate.Options{})
	got, err := tr.Translate(context.Background(), parmsPath, []string{datPath}, "")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if want := filepath.Join(dir, "scan.h5"); got != want {
		t.Errorf("derived path = %s, want %s", got, want)
	}
	if _, err := os.Stat(got); err != nil {
		t.Errorf("container not written: %v", err)
	}
}
