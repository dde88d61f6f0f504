package usid

import (
	"fmt"
	gopath "path"
	"strings"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// Parameters are the acquisition settings a processing run needs. They are
// assembled from attributes on the main dataset, falling back to its channel
// and measurement groups, with unit-suffix tolerance: "sampling_rate" matches
// "sampling_rate_[Hz]" and vice versa.
type Parameters struct {
	Rows           int
	Cols           int
	PixelsPerLine  int
	PointsPerPixel int
	SamplingRate   float64
	Excitation     float64
	Quantity       string
	Units          string
}

// attrSource is any object exposing named attributes.
type attrSource interface {
	Attrs() []string
	Attr(name string) *hdf5.Attribute
}

// ReadParameters resolves acquisition parameters for a main dataset.
//
// Rows and Cols always come from the dataset shape. PixelsPerLine and the
// rates must be present as attributes; PointsPerPixel is derived from Cols
// when absent.
func ReadParameters(m *Main) (Parameters, error) {
	p := Parameters{Rows: m.rows, Cols: m.cols}

	sources := attrSources(m)

	var err error
	if p.PixelsPerLine, err = intAttr(sources, "pixels_per_line", "num_cols"); err != nil {
		return p, err
	}
	if p.SamplingRate, err = floatAttr(sources, "sampling_rate"); err != nil {
		return p, err
	}
	if p.Excitation, err = floatAttr(sources, "excitation_frequency"); err != nil {
		return p, err
	}

	if v, err := intAttr(sources, "points_per_pixel"); err == nil {
		p.PointsPerPixel = v
	} else if p.PixelsPerLine > 0 && m.cols%p.PixelsPerLine == 0 {
		p.PointsPerPixel = m.cols / p.PixelsPerLine
	}

	p.Quantity, _ = stringAttr(sources, "quantity")
	p.Units, _ = stringAttr(sources, "units")

	if p.PixelsPerLine <= 0 {
		return p, fmt.Errorf("usid: %s: pixels_per_line must be > 0: %d", m.path, p.PixelsPerLine)
	}
	if p.SamplingRate <= 0 {
		return p, fmt.Errorf("usid: %s: sampling rate must be > 0: %v", m.path, p.SamplingRate)
	}

	return p, nil
}

// attrSources returns attribute holders from most to least specific: the
// dataset, its channel group, and the measurement group above it.
func attrSources(m *Main) []attrSource {
	sources := []attrSource{m.ds}

	dir := gopath.Dir(m.path)
	for dir != "/" && dir != "." && dir != "" {
		if g, err := m.file.h.OpenGroup(dir); err == nil {
			sources = append(sources, g)
		}
		dir = gopath.Dir(dir)
	}

	return sources
}

// findAttr looks name up across sources, tolerating unit suffixes like
// "_[Hz]" and "_[V]" on either side.
func findAttr(sources []attrSource, name string) *hdf5.Attribute {
	base := trimUnitSuffix(name)
	for _, src := range sources {
		for _, have := range src.Attrs() {
			if have == name || trimUnitSuffix(have) == base {
				return src.Attr(have)
			}
		}
	}
	return nil
}

func trimUnitSuffix(name string) string {
	if i := strings.Index(name, "_["); i > 0 && strings.HasSuffix(name, "]") {
		return name[:i]
	}
	return name
}

func floatAttr(sources []attrSource, name string) (float64, error) {
	attr := findAttr(sources, name)
	if attr == nil {
		return 0, fmt.Errorf("usid: attribute %q not found", name)
	}

	if v, err := attr.ReadScalarFloat64(); err == nil {
		return v, nil
	}
	if v, err := attr.ReadScalarInt64(); err == nil {
		return float64(v), nil
	}
	return 0, fmt.Errorf("usid: attribute %q is not numeric", name)
}

func intAttr(sources []attrSource, names ...string) (int, error) {
	for _, name := range names {
		attr := findAttr(sources, name)
		if attr == nil {
			continue
		}
		if v, err := attr.ReadScalarInt64(); err == nil {
			return int(v), nil
		}
		if v, err := attr.ReadScalarFloat64(); err == nil {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("usid: attribute %q not found", names[0])
}

func stringAttr(sources []attrSource, name string) (string, error) {
	attr := findAttr(sources, name)
	if attr == nil {
		return "", fmt.Errorf("usid: attribute %q not found", name)
	}
	return attr.ReadScalarString()
}
