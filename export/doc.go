// Package export dumps reshaped per-pixel loops to Parquet so filtered
// G-mode data can be picked up by column-oriented tooling without going
// through the HDF5 container again.
package export
