package usid

import (
	"fmt"
	gopath "path"
	"sort"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// Main is a located main dataset: 2-D, rows = scan lines, columns =
// concatenated per-pixel samples, with the four ancillary siblings present.
type Main struct {
	file *File
	ds   *hdf5.Dataset
	path string
	rows int
	cols int

	// Cached flat matrix. The container layer reads whole datasets, so the
	// first line access pays for the full read and later lines slice into it.
	flat []float64
}

// FindMain walks the tree for datasets satisfying the main dataset
// convention. With exactly one candidate it is returned; none yields
// ErrNoMain, several yield ErrAmbiguousMain.
func FindMain(f *File) (*Main, error) {
	paths, err := MainPaths(f)
	if err != nil {
		return nil, err
	}

	switch len(paths) {
	case 0:
		return nil, ErrNoMain
	case 1:
		return OpenMain(f, paths[0])
	default:
		return nil, fmt.Errorf("%w: %v", ErrAmbiguousMain, paths)
	}
}

// MainPaths returns the paths of all main dataset candidates, sorted.
func MainPaths(f *File) ([]string, error) {
	var paths []string

	err := hdf5.Walk(f.h.Root(), func(p string, obj interface{}, err error) error {
		if err != nil {
			return nil // unreadable node, keep walking
		}
		ds, ok := obj.(*hdf5.Dataset)
		if !ok || ds.Rank() != 2 {
			return nil
		}
		shape := ds.Shape()
		ok, err = conventionHolds(f, gopath.Dir(p), int(shape[0]), int(shape[1]))
		if err != nil {
			return err
		}
		if ok {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("usid: walking %s: %w", f.path, err)
	}

	// Ancillaries are themselves 2-D; exclude them from candidacy.
	filtered := paths[:0]
	for _, p := range paths {
		if !isAncillaryName(gopath.Base(p)) {
			filtered = append(filtered, p)
		}
	}

	sort.Strings(filtered)
	return filtered, nil
}

// OpenMain opens the dataset at path as a main dataset, verifying the
// convention holds.
func OpenMain(f *File, path string) (*Main, error) {
	if isAncillaryName(gopath.Base(path)) {
		return nil, fmt.Errorf("usid: %s is an ancillary dataset, not a main dataset", path)
	}

	ds, err := f.h.OpenDataset(path)
	if err != nil {
		return nil, fmt.Errorf("usid: opening %s: %w", path, err)
	}
	if ds.Rank() != 2 {
		return nil, fmt.Errorf("usid: %s has rank %d, main datasets are 2-D", path, ds.Rank())
	}

	shape := ds.Shape()
	ok, err := conventionHolds(f, gopath.Dir(path), int(shape[0]), int(shape[1]))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("usid: %s lacks matching ancillary siblings", path)
	}

	return &Main{
		file: f,
		ds:   ds,
		path: path,
		rows: int(shape[0]),
		cols: int(shape[1]),
	}, nil
}

// Path returns the dataset location inside the container.
func (m *Main) Path() string { return m.path }

// Rows returns the number of scan lines.
func (m *Main) Rows() int { return m.rows }

// Cols returns the samples per line.
func (m *Main) Cols() int { return m.cols }

// Dataset exposes the underlying dataset, mainly for attribute access.
func (m *Main) Dataset() *hdf5.Dataset { return m.ds }

// ReadAll returns the full matrix in row-major order. The result is cached;
// callers must not mutate it.
func (m *Main) ReadAll() ([]float64, error) {
	if m.flat != nil {
		return m.flat, nil
	}

	flat, err := m.ds.ReadFloat64()
	if err != nil {
		return nil, fmt.Errorf("usid: reading %s: %w", m.path, err)
	}
	if len(flat) != m.rows*m.cols {
		return nil, fmt.Errorf("usid: %s has %d values, want %d", m.path, len(flat), m.rows*m.cols)
	}

	m.flat = flat
	return flat, nil
}

// ReadLine returns one scan line. The returned slice aliases the cached
// matrix; callers must copy before mutating.
func (m *Main) ReadLine(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("usid: line %d out of range [0, %d)", i, m.rows)
	}

	flat, err := m.ReadAll()
	if err != nil {
		return nil, err
	}
	return flat[i*m.cols : (i+1)*m.cols], nil
}

// Ancillary opens one of the four ancillary siblings by conventional name.
func (m *Main) Ancillary(name string) (*hdf5.Dataset, error) {
	if !isAncillaryName(name) {
		return nil, fmt.Errorf("usid: %q is not an ancillary dataset name", name)
	}
	p := gopath.Join(gopath.Dir(m.path), name)
	ds, err := m.file.h.OpenDataset(p)
	if err != nil {
		return nil, fmt.Errorf("usid: opening ancillary %s: %w", p, err)
	}
	return ds, nil
}

// conventionHolds reports whether groupPath contains the four ancillaries and
// their shapes agree with a rows x cols main dataset: position indices carry
// one row per scan line, spectroscopic indices one column per sample.
func conventionHolds(f *File, groupPath string, rows, cols int) (bool, error) {
	g := f.h.Root()
	if groupPath != "/" && groupPath != "" {
		var err error
		g, err = f.h.OpenGroup(groupPath)
		if err != nil {
			return false, nil
		}
	}

	members, err := g.Members()
	if err != nil {
		return false, fmt.Errorf("usid: listing %s: %w", groupPath, err)
	}

	have := make(map[string]bool, len(members))
	for _, m := range members {
		have[m] = true
	}

	for _, want := range []string{
		PositionIndicesName, PositionValuesName,
		SpectroscopicIndicesName, SpectroscopicValuesName,
	} {
		if !have[want] {
			return false, nil
		}
	}

	pos, err := g.OpenDataset(PositionIndicesName)
	if err != nil {
		return false, nil
	}
	spec, err := g.OpenDataset(SpectroscopicIndicesName)
	if err != nil {
		return false, nil
	}

	posShape, specShape := pos.Shape(), spec.Shape()
	if len(posShape) != 2 || int(posShape[0]) != rows {
		return false, nil
	}
	if len(specShape) != 2 || int(specShape[1]) != cols {
		return false, nil
	}
	return true, nil
}

func isAncillaryName(name string) bool {
	switch name {
	case PositionIndicesName, PositionValuesName,
		SpectroscopicIndicesName, SpectroscopicValuesName:
		return true
	}
	return false
}
