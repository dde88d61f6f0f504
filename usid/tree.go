package usid

import (
	"fmt"
	"io"
	gopath "path"
	"strings"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// PrintTree renders the container hierarchy: groups with a trailing slash,
// datasets with their shape and attribute count. Unreadable nodes are
// reported in place instead of aborting the walk.
func PrintTree(w io.Writer, f *File) error {
	err := hdf5.Walk(f.h.Root(), func(p string, obj interface{}, err error) error {
		depth := strings.Count(strings.Trim(p, "/"), "/")
		if p == "/" {
			_, werr := fmt.Fprintln(w, "/")
			return werr
		}
		indent := strings.Repeat("  ", depth+1)

		if err != nil {
			_, werr := fmt.Fprintf(w, "%s%s  <unreadable: %v>\n", indent, gopath.Base(p), err)
			return werr
		}

		switch o := obj.(type) {
		case *hdf5.Group:
			_, werr := fmt.Fprintf(w, "%s%s/\n", indent, gopath.Base(p))
			return werr
		case *hdf5.Dataset:
			_, werr := fmt.Fprintf(w, "%s%s  %v  (%d attrs)\n", indent, gopath.Base(p), o.Shape(), len(o.Attrs()))
			return werr
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("usid: printing tree of %s: %w", f.path, err)
	}
	return nil
}
