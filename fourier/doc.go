// Package fourier provides frequency-domain noise filters for line-acquired
// scanning-probe data.
//
// Filters are binary masks defined over an fft-shifted frequency axis, so a
// mask value of 1 passes the corresponding bin of a shifted spectrum and 0
// rejects it. Several filters can be combined with [Compose]; the result is
// again a mask. The package also provides the forward/inverse transform
// helpers the masks are designed to pair with, and a robust noise-floor
// estimator for spectral thresholding.
//
// The package does not implement FFT itself. Transforms delegate to an
// external FFT backend and plans are cached per signal length.
package fourier
