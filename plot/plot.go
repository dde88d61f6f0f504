package plot

import (
	"fmt"
	"image/color"
	"math"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/probelab/gmode/fourier"
	"github.com/probelab/gmode/gmode"
)

// Canvas size for every renderer.
const (
	width  = 8 * vg.Inch
	height = 5 * vg.Inch
)

// Log-scale plots cannot take zeros; anything below this is clamped.
const logFloor = 1e-12

var (
	rawColor      = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	filteredColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	maskColor     = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	floorColor    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Line renders a raw line and its filtered counterpart against time and
// saves the figure as PNG. filtered may be nil to plot the raw line alone.
func Line(path string, raw, filtered []float64, rate float64) error {
	if len(raw) == 0 {
		return fmt.Errorf("plot: empty line")
	}
	if rate <= 0 {
		return fmt.Errorf("plot: sampling rate must be > 0: %v", rate)
	}
	if filtered != nil && len(filtered) != len(raw) {
		return fmt.Errorf("plot: filtered length %d, raw length %d", len(filtered), len(raw))
	}

	p := gplot.New()
	p.Title.Text = "Scan line"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Amplitude"

	rawLine, err := plotter.NewLine(sampleXYs(raw, 1/rate))
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	rawLine.Color = rawColor
	p.Add(rawLine)
	p.Legend.Add("raw", rawLine)

	if filtered != nil {
		fl, err := plotter.NewLine(sampleXYs(filtered, 1/rate))
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		fl.Color = filteredColor
		p.Add(fl)
		p.Legend.Add("filtered", fl)
	}

	p.Legend.Top = true
	return save(p, path)
}

// SpectrumOverlay renders the amplitude spectrum of a trial on a log scale,
// with the composite filter mask and, when thresholding was enabled, the
// noise floor drawn on top.
func SpectrumOverlay(path string, trial *gmode.Trial, rate float64) error {
	if trial == nil || len(trial.Spectrum) == 0 {
		return fmt.Errorf("plot: empty trial")
	}
	if rate <= 0 {
		return fmt.Errorf("plot: sampling rate must be > 0: %v", rate)
	}

	axis := fourier.Axis(len(trial.Spectrum), rate)

	p := gplot.New()
	p.Title.Text = "Amplitude spectrum"
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Amplitude"
	p.Y.Scale = gplot.LogScale{}
	p.Y.Tick.Marker = gplot.LogTicks{Prec: -1}

	amp := make(plotter.XYs, len(trial.Spectrum))
	peak := logFloor
	for i, c := range trial.Spectrum {
		a := math.Hypot(real(c), imag(c))
		if a > peak {
			peak = a
		}
		amp[i].X = axis[i]
		amp[i].Y = math.Max(a, logFloor)
	}

	ampLine, err := plotter.NewLine(amp)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	ampLine.Color = rawColor
	p.Add(ampLine)
	p.Legend.Add("spectrum", ampLine)

	if len(trial.Mask) == len(trial.Spectrum) {
		// Draw the mask at the spectrum's peak so passbands read as
		// plateaus; rejected bins sit on the clamp floor.
		maskXY := make(plotter.XYs, len(trial.Mask))
		for i, v := range trial.Mask {
			maskXY[i].X = axis[i]
			maskXY[i].Y = math.Max(v*peak, logFloor)
		}
		maskLine, err := plotter.NewLine(maskXY)
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		maskLine.Color = maskColor
		maskLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(maskLine)
		p.Legend.Add("filter", maskLine)
	}

	if trial.NoiseFloor > 0 {
		floorXY := plotter.XYs{
			{X: axis[0], Y: trial.NoiseFloor},
			{X: axis[len(axis)-1], Y: trial.NoiseFloor},
		}
		floorLine, err := plotter.NewLine(floorXY)
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		floorLine.Color = floorColor
		floorLine.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
		p.Add(floorLine)
		p.Legend.Add("noise floor", floorLine)
	}

	p.Legend.Top = true
	return save(p, path)
}

// Loops renders a stack of per-pixel loops from one line on a shared axis.
func Loops(path string, loops [][]float64, rate float64) error {
	if len(loops) == 0 {
		return fmt.Errorf("plot: no loops")
	}
	if rate <= 0 {
		return fmt.Errorf("plot: sampling rate must be > 0: %v", rate)
	}

	p := gplot.New()
	p.Title.Text = "Per-pixel loops"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Amplitude"

	for i, loop := range loops {
		if len(loop) != len(loops[0]) {
			return fmt.Errorf("plot: loop %d has %d samples, want %d", i, len(loop), len(loops[0]))
		}
		line, err := plotter.NewLine(sampleXYs(loop, 1/rate))
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		line.Color = loopColor(i, len(loops))
		p.Add(line)
	}

	return save(p, path)
}

func sampleXYs(data []float64, dt float64) plotter.XYs {
	xy := make(plotter.XYs, len(data))
	for i, v := range data {
		xy[i].X = float64(i) * dt
		xy[i].Y = v
	}
	return xy
}

// loopColor fades from blue to red across the pixel index.
func loopColor(i, n int) color.RGBA {
	if n <= 1 {
		return filteredColor
	}
	t := float64(i) / float64(n-1)
	return color.RGBA{
		R: uint8(31 + t*(214-31)),
		G: uint8(119 - t*(119-39)),
		B: uint8(180 - t*(180-40)),
		A: 255,
	}
}

func save(p *gplot.Plot, path string) error {
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("plot: saving %s: %w", path, err)
	}
	return nil
}
