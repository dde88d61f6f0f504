package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"
)

// LoopRow is one sample of one per-pixel loop in long format.
type LoopRow struct {
	Line   int32   `parquet:"line"`
	Pixel  int32   `parquet:"pixel"`
	Sample int32   `parquet:"sample"`
	Time   float64 `parquet:"time_s"`
	Value  float64 `parquet:"value"`
}

// Options configure the Parquet output.
type Options struct {
	// Compression is one of "zstd", "snappy", "gzip", "lz4" or "none".
	// Empty selects zstd.
	Compression string
}

func codec(name string) (compress.Codec, error) {
	switch name {
	case "zstd", "":
		return &parquet.Zstd, nil
	case "snappy":
		return &parquet.Snappy, nil
	case "gzip":
		return &parquet.Gzip, nil
	case "lz4":
		return &parquet.Lz4Raw, nil
	case "none":
		return &parquet.Uncompressed, nil
	default:
		return nil, fmt.Errorf("export: unknown compression %q", name)
	}
}

// WriteLoops writes a lines x pixels x samples loop stack to a Parquet file
// in long format and reports the number of rows written. rate converts
// sample indices to the time_s column.
func WriteLoops(path string, stack [][][]float64, rate float64, opts Options) (int64, error) {
	if len(stack) == 0 {
		return 0, fmt.Errorf("export: empty loop stack")
	}
	if rate <= 0 {
		return 0, fmt.Errorf("export: sampling rate must be > 0: %v", rate)
	}
	c, err := codec(opts.Compression)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}

	w := parquet.NewGenericWriter[LoopRow](f, parquet.Compression(c))

	var total int64
	for line, loops := range stack {
		rows := make([]LoopRow, 0, loopSamples(loops))
		for pixel, loop := range loops {
			for sample, v := range loop {
				rows = append(rows, LoopRow{
					Line:   int32(line),
					Pixel:  int32(pixel),
					Sample: int32(sample),
					Time:   float64(sample) / rate,
					Value:  v,
				})
			}
		}
		n, err := w.Write(rows)
		if err != nil {
			f.Close()
			return total, fmt.Errorf("export: writing line %d: %w", line, err)
		}
		total += int64(n)
	}

	if err := w.Close(); err != nil {
		f.Close()
		return total, fmt.Errorf("export: closing writer: %w", err)
	}
	return total, f.Close()
}

// ReadLoops loads every row of a loop Parquet file.
func ReadLoops(path string) ([]LoopRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	r := parquet.NewGenericReader[LoopRow](f)
	defer r.Close()

	rows := make([]LoopRow, r.NumRows())
	if _, err := r.Read(rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("export: reading %s: %w", path, err)
	}
	return rows, nil
}

func loopSamples(loops [][]float64) int {
	n := 0
	for _, loop := range loops {
		n += len(loop)
	}
	return n
}
