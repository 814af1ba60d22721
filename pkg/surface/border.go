package surface

import (
	"math"

	"github.com/surfplot/surfplot/pkg/errors"
)

// LabelingBorder returns a 0/1 mask of the vertices that sit on a
// boundary between two labels: both ends of every edge whose endpoints
// carry different labels are 1, every other vertex is 0. Vertices with a
// NaN label are never marked.
//
// The mesh must implement [Topology] and have at least one edge.
func LabelingBorder(m Mesh, labels []float64) ([]float64, error) {
	if len(labels) != m.NumPoints() {
		return nil, errors.New(errors.ErrCodeShapeMismatch,
			"labeling has %d values, mesh has %d vertices", len(labels), m.NumPoints())
	}
	topo, ok := m.(Topology)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "outline rendering requires a mesh with edge topology")
	}
	edges := topo.Edges()
	if len(edges) == 0 && len(labels) > 0 {
		return nil, errors.New(errors.ErrCodeUnsupported, "outline rendering requires a mesh with faces")
	}

	border := make([]float64, len(labels))
	for _, e := range edges {
		a, b := labels[e[0]], labels[e[1]]
		if sameLabel(a, b) {
			continue
		}
		if !math.IsNaN(a) {
			border[e[0]] = 1
		}
		if !math.IsNaN(b) {
			border[e[1]] = 1
		}
	}
	return border, nil
}

func sameLabel(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}
