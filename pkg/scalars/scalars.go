// Package scalars resolves per-vertex scalar inputs into flat float64
// arrays.
//
// A [Source] is one of:
//
//   - [Values]: an in-memory array, copied as-is
//   - [Path]: a file decoded by the reader registered for its extension
//   - [DataArrays]: a pre-loaded multi-array resource, concatenated in order
//   - [Matrix]: a pre-loaded dense resource, flattened row-major
//
// Text files (.txt, .tsv, .csv, each optionally gzip-compressed) are
// readable out of the box. Other formats can be plugged in with
// [RegisterReader].
package scalars

import (
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/surfplot/surfplot/pkg/errors"
)

// Source is a scalar-field input.
type Source interface {
	scalarSource()
}

// Values is an in-memory array.
type Values []float64

// Path is a file on disk.
type Path string

// DataArrays is a resource holding several equally indexed arrays, such
// as the data arrays of a functional surface file. Load concatenates them.
type DataArrays [][]float64

// Matrix is a resource holding a dense matrix, such as a dense
// time-by-vertex image. Load flattens it row by row.
type Matrix struct {
	M mat.Matrix
}

func (Values) scalarSource()     {}
func (Path) scalarSource()       {}
func (DataArrays) scalarSource() {}
func (Matrix) scalarSource()     {}

// Load resolves src into a flat array. The result never aliases the
// caller's memory.
func Load(src Source) ([]float64, error) {
	switch s := src.(type) {
	case Values:
		return slices.Clone([]float64(s)), nil
	case Path:
		return loadFile(string(s))
	case DataArrays:
		n := 0
		for _, a := range s {
			n += len(a)
		}
		out := make([]float64, 0, n)
		for _, a := range s {
			out = append(out, a...)
		}
		return out, nil
	case Matrix:
		if s.M == nil {
			return nil, errors.New(errors.ErrCodeInvalidType, "matrix resource is nil")
		}
		return ravel(s.M), nil
	case nil:
		return nil, errors.New(errors.ErrCodeInvalidType,
			"data must be an array, a file path, or a loaded scalar resource")
	default:
		return nil, errors.New(errors.ErrCodeInvalidType, "unsupported scalar source %T", src)
	}
}

func ravel(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	if d, ok := m.(mat.RawRowViewer); ok {
		for i := 0; i < r; i++ {
			out = append(out, d.RawRowView(i)...)
		}
		return out
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
