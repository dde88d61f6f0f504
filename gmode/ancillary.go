package gmode

import (
	"fmt"

	"github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/probelab/gmode/usid"
)

// classFixedPoint is the container datatype class for integers. The constant
// lives in an internal package of the hdf5 module, so the value is restated
// here.
const classFixedPoint = 0

// copyAncillaries duplicates the four ancillary datasets of a main dataset
// into dst. The writer layer has no hard links, so results groups carry their
// own copies to stay self-describing.
func copyAncillaries(dst *hdf5.Group, m *usid.Main) error {
	for _, name := range []string{
		usid.PositionIndicesName,
		usid.PositionValuesName,
		usid.SpectroscopicIndicesName,
		usid.SpectroscopicValuesName,
	} {
		src, err := m.Ancillary(name)
		if err != nil {
			return err
		}

		data, err := readMatrix(src)
		if err != nil {
			return fmt.Errorf("gmode: copying %s: %w", name, err)
		}

		if _, err := dst.CreateDataset(name, data); err != nil {
			return fmt.Errorf("gmode: copying %s: %w", name, err)
		}
	}
	return nil
}

// readMatrix reads a 2-D dataset preserving its row structure.
func readMatrix(ds *hdf5.Dataset) (interface{}, error) {
	shape := ds.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("dataset %s has rank %d, want 2", ds.Path(), len(shape))
	}
	rows, cols := int(shape[0]), int(shape[1])

	if ds.DtypeClass() == classFixedPoint {
		flat, err := ds.ReadInt64()
		if err != nil {
			return nil, err
		}
		out := make([][]int64, rows)
		for r := range out {
			out[r] = flat[r*cols : (r+1)*cols]
		}
		return out, nil
	}

	flat, err := ds.ReadFloat64()
	if err != nil {
		return nil, err
	}
	out := make([][]float64, rows)
	for r := range out {
		out[r] = flat[r*cols : (r+1)*cols]
	}
	return out, nil
}
