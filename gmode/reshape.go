package gmode

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/probelab/gmode/usid"
)

// ReshapeToLoops cuts one scan line into its per-pixel loops: a pixels x
// (len/pixels) matrix whose rows alias the input.
func ReshapeToLoops(line []float64, pixels int) ([][]float64, error) {
	if pixels <= 0 {
		return nil, fmt.Errorf("gmode: pixels must be > 0: %d", pixels)
	}
	if len(line) == 0 || len(line)%pixels != 0 {
		return nil, fmt.Errorf("gmode: line of %d samples does not divide into %d pixels", len(line), pixels)
	}

	per := len(line) / pixels
	loops := make([][]float64, pixels)
	for p := range loops {
		loops[p] = line[p*per : (p+1)*per]
	}
	return loops, nil
}

// LoopStack reshapes every line of a main dataset, yielding
// rows x pixels x points-per-pixel.
func LoopStack(m *usid.Main, pixels int) ([][][]float64, error) {
	stack := make([][][]float64, m.Rows())
	for r := range stack {
		line, err := m.ReadLine(r)
		if err != nil {
			return nil, err
		}
		loops, err := ReshapeToLoops(line, pixels)
		if err != nil {
			return nil, err
		}
		stack[r] = loops
	}
	return stack, nil
}

// MeanLoop averages a set of equally long loops into one.
func MeanLoop(loops [][]float64) ([]float64, error) {
	if len(loops) == 0 {
		return nil, fmt.Errorf("gmode: mean of no loops")
	}

	mean := make([]float64, len(loops[0]))
	for _, loop := range loops {
		if len(loop) != len(mean) {
			return nil, fmt.Errorf("gmode: loop length %d, want %d", len(loop), len(mean))
		}
		floats.Add(mean, loop)
	}
	floats.Scale(1/float64(len(loops)), mean)
	return mean, nil
}
