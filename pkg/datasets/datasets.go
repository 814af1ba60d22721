// Package datasets bundles example data for 32k fs_LR surfaces.
//
// The example maps are per-vertex association maps for the terms
// "default mode" and "frontoparietal", 32492 vertices per hemisphere.
// The package also carries the fs_LR medial-wall mask used by
// [AddMedialWall] to restore data that was stored without the medial
// wall (59412 vertices) to the full 64984-vertex layout.
package datasets

import (
	"embed"
	"math"
	"slices"

	"github.com/surfplot/surfplot/pkg/errors"
	"github.com/surfplot/surfplot/pkg/scalars"
)

//go:embed data/*.tsv.gz
var data embed.FS

// Example dataset names.
const (
	DefaultMode    = "default_mode"
	Frontoparietal = "frontoparietal"
)

// Vertex counts of the 32k fs_LR space.
const (
	HemisphereVertices = 32492
	FullVertices       = 2 * HemisphereVertices
	CorticalVertices   = 59412
)

// Names lists the example datasets.
func Names() []string { return []string{DefaultMode, Frontoparietal} }

// LoadExampleData loads an example map. With join it returns a single
// array, left hemisphere first; otherwise the left and right arrays.
func LoadExampleData(name string, join bool) ([][]float64, error) {
	if !slices.Contains(Names(), name) {
		return nil, errors.New(errors.ErrCodeInvalidDataset,
			"dataset must be one of 'default_mode' or 'frontoparietal', got %q", name)
	}
	lh, err := load("lh_" + name + "_example.tsv.gz")
	if err != nil {
		return nil, err
	}
	rh, err := load("rh_" + name + "_example.tsv.gz")
	if err != nil {
		return nil, err
	}
	if join {
		return [][]float64{append(slices.Clone(lh), rh...)}, nil
	}
	return [][]float64{lh, rh}, nil
}

// AddMedialWall inserts NaN at the medial-wall vertices of data.
//
// data must hold 59412 values (no medial wall) or 64984 values (already
// complete, returned as a copy). With split the result is returned as
// left and right hemisphere arrays.
func AddMedialWall(values []float64, split bool) ([][]float64, error) {
	var full []float64
	switch len(values) {
	case FullVertices:
		full = slices.Clone(values)
	case CorticalVertices:
		mask, err := MedialWall()
		if err != nil {
			return nil, err
		}
		full = make([]float64, FullVertices)
		k := 0
		for i, m := range mask {
			if m {
				full[i] = math.NaN()
				continue
			}
			full[i] = values[k]
			k++
		}
	default:
		return nil, errors.New(errors.ErrCodeShapeMismatch,
			"%d vertices were detected; data must have exactly %d or %d vertices",
			len(values), CorticalVertices, FullVertices)
	}

	if split {
		return [][]float64{full[:HemisphereVertices:HemisphereVertices], full[HemisphereVertices:]}, nil
	}
	return [][]float64{full}, nil
}

// MedialWall returns the fs_LR medial-wall mask over both hemispheres,
// true at medial-wall vertices.
func MedialWall() ([]bool, error) {
	raw, err := load("medwall.tsv.gz")
	if err != nil {
		return nil, err
	}
	if len(raw) != FullVertices {
		return nil, errors.New(errors.ErrCodeInternal, "medial wall mask has %d vertices, want %d", len(raw), FullVertices)
	}
	mask := make([]bool, len(raw))
	n := 0
	for i, v := range raw {
		mask[i] = v == 1
		if mask[i] {
			n++
		}
	}
	if FullVertices-n != CorticalVertices {
		return nil, errors.New(errors.ErrCodeInternal, "medial wall mask leaves %d cortical vertices, want %d", FullVertices-n, CorticalVertices)
	}
	return mask, nil
}

func load(name string) ([]float64, error) {
	f, err := data.Open("data/" + name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open embedded %s", name)
	}
	defer f.Close()
	return scalars.Decode(name, f)
}
