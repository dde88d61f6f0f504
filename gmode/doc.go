// Package gmode filters line-acquired scanning-probe measurements.
//
// A G-mode acquisition records every scan line as one long capture:
// pixels-per-line repetitions of the excitation period, concatenated. The
// package applies a frequency-domain filter recipe to such lines, either on a
// single line for interactive trial or across a whole main dataset with
// bounded parallelism, writes the results back into the measurement container,
// and reshapes filtered lines into per-pixel loops.
package gmode
