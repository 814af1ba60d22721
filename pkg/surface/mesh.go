package surface

import (
	"slices"

	"github.com/surfplot/surfplot/pkg/errors"
)

// Mesh is the capability surfplot requires of a hemisphere surface: a
// known vertex count and named per-vertex scalar arrays that renderers
// can look up by name.
type Mesh interface {
	// NumPoints returns the number of vertices.
	NumPoints() int

	// AppendArray attaches values under name, replacing any array already
	// stored under that name. len(values) must equal NumPoints.
	AppendArray(name string, values []float64) error

	// PointArray returns the array stored under name.
	PointArray(name string) ([]float64, bool)
}

// ArrayRemover is implemented by meshes that can drop a named array.
// The layer registry uses it to undo a partially attached layer.
type ArrayRemover interface {
	RemoveArray(name string)
}

// Topology is implemented by meshes that know their edge structure.
// It is required by [LabelingBorder], which also rejects a mesh that
// reports no edges.
type Topology interface {
	// Edges returns every undirected edge once, as (lo, hi) vertex pairs.
	Edges() [][2]int
}

// PolyData is an in-memory triangle mesh with named point arrays.
//
// A PolyData built with [NewPointSet] has vertices but no geometry; it
// is enough for layer bookkeeping and layout previews but cannot produce
// outlines.
type PolyData struct {
	Points    [][3]float64
	Triangles [][3]int

	numPoints int
	arrays    map[string][]float64
	order     []string
}

// NewPolyData creates a mesh from vertex coordinates and triangles,
// rejecting triangles that reference missing vertices.
func NewPolyData(points [][3]float64, triangles [][3]int) (*PolyData, error) {
	for i, tri := range triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(points) {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"triangle %d references vertex %d (mesh has %d vertices)", i, idx, len(points))
			}
		}
	}
	return &PolyData{
		Points:    points,
		Triangles: triangles,
		numPoints: len(points),
		arrays:    make(map[string][]float64),
	}, nil
}

// NewPointSet creates a geometry-free mesh with n vertices.
func NewPointSet(n int) *PolyData {
	return &PolyData{numPoints: n, arrays: make(map[string][]float64)}
}

// NumPoints returns the number of vertices.
func (p *PolyData) NumPoints() int { return p.numPoints }

// AppendArray stores a copy of values under name.
func (p *PolyData) AppendArray(name string, values []float64) error {
	if len(values) != p.numPoints {
		return errors.New(errors.ErrCodeShapeMismatch,
			"array %q has %d values, mesh has %d vertices", name, len(values), p.numPoints)
	}
	if p.arrays == nil {
		p.arrays = make(map[string][]float64)
	}
	if _, exists := p.arrays[name]; !exists {
		p.order = append(p.order, name)
	}
	p.arrays[name] = slices.Clone(values)
	return nil
}

// RemoveArray drops the array stored under name, if any.
func (p *PolyData) RemoveArray(name string) {
	if _, ok := p.arrays[name]; !ok {
		return
	}
	delete(p.arrays, name)
	p.order = slices.DeleteFunc(p.order, func(s string) bool { return s == name })
}

// PointArray returns the array stored under name.
func (p *PolyData) PointArray(name string) ([]float64, bool) {
	a, ok := p.arrays[name]
	return a, ok
}

// ArrayNames returns the stored array names in insertion order.
func (p *PolyData) ArrayNames() []string {
	return slices.Clone(p.order)
}

// Edges returns the unique undirected triangle edges, sorted.
func (p *PolyData) Edges() [][2]int {
	seen := make(map[[2]int]struct{}, len(p.Triangles)*3/2)
	edges := make([][2]int, 0, len(p.Triangles)*3/2)
	for _, tri := range p.Triangles {
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	slices.SortFunc(edges, func(x, y [2]int) int {
		if x[0] != y[0] {
			return x[0] - y[0]
		}
		return x[1] - y[1]
	})
	return edges
}
