// Command gmode processes G-mode scanning-probe measurements: translating
// raw acquisitions into an HDF5 container, inspecting it, filtering line
// noise in the frequency domain, reshaping filtered lines into per-pixel
// loops, and exporting or plotting the results.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
