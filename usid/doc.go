// Package usid models instrument measurement files laid out in the
// Universal Spectroscopic and Imaging Data convention: one two-dimensional
// main dataset (rows are scan positions, columns are concatenated spectral
// samples) accompanied by four ancillary datasets describing the position and
// spectroscopic dimensions, with acquisition metadata stored as attributes.
//
// The package locates and reads main datasets, resolves acquisition
// parameters with unit-suffix tolerance, renders the container tree for
// inspection, and creates indexed results groups for processed data. The
// container encoding itself is delegated to the hdf5 package.
package usid
