package hdf5

import (
	"fmt"

	"gonum.org/v1/hdf5"
)

// A Loader sequentially loads frames from an HDF5 dataset.
type Loader struct {
	i uint // index of current step
	n uint // total number of steps

	data []Frame // data buffer

	file   *hdf5.File
	dset   *hdf5.Dataset
	fspace *hdf5.Dataspace
	mspace *hdf5.Dataspace
}

// NewLoader opens a dataset of frames in an HDF5 file and returns
// an initialized loader along with the number of boids per step.
func NewLoader(filepath, dataset string) (l *Loader, size int, err error) {
	l = new(Loader)
	l.file, err = hdf5.OpenFile(filepath, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, 0, fmt.Errorf("loader: open %s: %w", filepath, err)
	}
	l.dset, err = l.file.OpenDataset(dataset)
	if err != nil {
		checkClose(&err, l.file)
		return nil, 0, fmt.Errorf("loader: open dataset %q: %w", dataset, err)
	}
	l.fspace = l.dset.Space()
	dims, _, err := l.fspace.SimpleExtentDims()
	if err != nil {
		l.Close()
		return nil, 0, err
	}
	if len(dims) != 2 {
		l.Close()
		return nil, 0, fmt.Errorf("loader: expected 2 dimensions, got %d", len(dims))
	}
	if dims[0] == 0 {
		l.Close()
		return nil, 0, fmt.Errorf("loader: dataset %q has no steps", dataset)
	}
	l.n = dims[0]

	l.mspace, err = hdf5.CreateSimpleDataspace(dims[1:], nil)
	if err != nil {
		l.Close()
		return nil, 0, err
	}

	start := []uint{0, 0}
	count := []uint{1, dims[1]}
	if err := l.fspace.SelectHyperslab(start, nil, count, nil); err != nil {
		l.Close()
		return nil, 0, err
	}

	l.data = make([]Frame, dims[1])

	return l, int(dims[1]), nil
}

// Load returns a copy of the next frame available
// and cycles when everything has already been loaded.
func (l *Loader) Load() ([]Frame, error) {
	start := []uint{l.i, 0}
	if err := l.fspace.SetOffset(start); err != nil {
		return nil, err
	}
	l.i = (l.i + 1) % l.n

	if err := l.dset.ReadSubset(&l.data, l.mspace, l.fspace); err != nil {
		return nil, err
	}

	f := make([]Frame, len(l.data))
	copy(f, l.data)
	return f, nil
}

// Close releases all HDF5 resources held by the loader.
func (l *Loader) Close() (err error) {
	if l.mspace != nil {
		checkClose(&err, l.mspace)
	}
	if l.fspace != nil {
		checkClose(&err, l.fspace)
	}
	if l.dset != nil {
		checkClose(&err, l.dset)
	}
	if l.file != nil {
		checkClose(&err, l.file)
	}
	return err
}
