package layers

import (
	"github.com/surfplot/surfplot/pkg/scalars"
	"github.com/surfplot/surfplot/pkg/surface"
)

// Data is the input of [Registry.Add].
type Data interface {
	layerData()
}

// Vertices is a flat array covering all present hemispheres, ordered
// left then right.
type Vertices struct {
	Source scalars.Source
}

// ByHemisphere maps hemispheres to their arrays. Only hemispheres that
// are present in the figure may appear as keys.
type ByHemisphere map[surface.Hemisphere]scalars.Source

func (Vertices) layerData()     {}
func (ByHemisphere) layerData() {}

// Values wraps an in-memory flat array.
func Values(v []float64) Vertices {
	return Vertices{Source: scalars.Values(v)}
}

// File references a flat array stored on disk.
func File(path string) Vertices {
	return Vertices{Source: scalars.Path(path)}
}

// Loaded wraps an already loaded scalar resource.
func Loaded(src scalars.Source) Vertices {
	return Vertices{Source: src}
}
