// Package translate converts raw instrument output into the measurement
// container convention.
//
// A G-mode acquisition leaves behind a parms.txt sidecar describing the scan
// (grid size, sampling rate, excitation) and one flat .dat sample stream per
// channel. Translation validates the sidecar, streams the samples into a main
// dataset per channel, and writes the ancillary datasets and metadata
// attributes the analysis stages expect.
package translate
