// Package plot renders G-mode processing results to PNG files: raw versus
// filtered time segments, amplitude spectra with the filter mask and noise
// floor overlaid, and per-pixel loop stacks.
//
// All renderers are deterministic: fixed canvas size, fixed styles, no
// wall-clock input. They are meant for quick inspection of a filtering run,
// not for publication-quality figures.
package plot
