package main

import (
	"strconv"

	"github.com/probelab/gmode/usid"
)

// resolveMain opens the dataset at an explicit path, or locates the single
// main dataset when no path is given.
func resolveMain(f *usid.File, dataset string) (*usid.Main, error) {
	if dataset != "" {
		return usid.OpenMain(f, dataset)
	}
	return usid.FindMain(f)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
