package usid

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// Conventional dataset names inside a channel group.
const (
	RawDataName              = "Raw_Data"
	PositionIndicesName      = "Position_Indices"
	PositionValuesName       = "Position_Values"
	SpectroscopicIndicesName = "Spectroscopic_Indices"
	SpectroscopicValuesName  = "Spectroscopic_Values"
)

var (
	// ErrNoMain is returned when no dataset in the file satisfies the main
	// dataset convention.
	ErrNoMain = errors.New("usid: no main dataset found")
	// ErrAmbiguousMain is returned when several candidates exist and no
	// explicit path was given.
	ErrAmbiguousMain = errors.New("usid: multiple main datasets, specify a path")
)

// File is a measurement container.
type File struct {
	h    *hdf5.File
	path string
}

// Open opens a container read-only.
func Open(path string) (*File, error) {
	h, err := hdf5.Open(path)
	if err != nil {
		return nil, fmt.Errorf("usid: opening %s: %w", path, err)
	}
	return &File{h: h, path: path}, nil
}

// OpenReadWrite opens a container for processing runs that append results.
func OpenReadWrite(path string) (*File, error) {
	h, err := hdf5.OpenReadWrite(path)
	if err != nil {
		return nil, fmt.Errorf("usid: opening %s read-write: %w", path, err)
	}
	return &File{h: h, path: path}, nil
}

// Create creates a fresh container.
func Create(path string) (*File, error) {
	h, err := hdf5.Create(path)
	if err != nil {
		return nil, fmt.Errorf("usid: creating %s: %w", path, err)
	}
	return &File{h: h, path: path}, nil
}

// Close releases the underlying file. Safe to call twice.
func (f *File) Close() error {
	return f.h.Close()
}

// Path returns the on-disk location.
func (f *File) Path() string { return f.path }

// HDF5 exposes the underlying hierarchical file for callers that need raw
// tree access.
func (f *File) HDF5() *hdf5.File { return f.h }
