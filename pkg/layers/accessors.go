package layers

import (
	"slices"

	"github.com/surfplot/surfplot/pkg/surface"
)

// Len returns the number of registered layers.
func (r *Registry) Len() int { return len(r.layers) }

// Layers returns copies of all layers in insertion order.
func (r *Registry) Layers() []Layer {
	out := make([]Layer, len(r.layers))
	for i, l := range r.layers {
		out[i] = l.clone()
	}
	return out
}

// Layer returns a copy of the layer at index i.
func (r *Registry) Layer(i int) (Layer, bool) {
	if i < 0 || i >= len(r.layers) {
		return Layer{}, false
	}
	return r.layers[i].clone(), true
}

// Names returns the layer names in insertion order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.layers))
	for i, l := range r.layers {
		out[i] = l.Name
	}
	return out
}

// ColorMaps returns the colour map names in insertion order.
func (r *Registry) ColorMaps() []string {
	out := make([]string, len(r.layers))
	for i, l := range r.layers {
		out[i] = l.ColorMap
	}
	return out
}

// Ranges returns the colour ranges in insertion order.
func (r *Registry) Ranges() []Range {
	out := make([]Range, len(r.layers))
	for i, l := range r.layers {
		out[i] = l.Range
	}
	return out
}

// ColorbarOrder returns the indices of layers with a visible colorbar,
// last-added first. This is the order colorbars are drawn in, so the
// first index ends up outermost.
func (r *Registry) ColorbarOrder() []int {
	var out []int
	for i := len(r.layers) - 1; i >= 0; i-- {
		if r.layers[i].ShowColorbar {
			out = append(out, i)
		}
	}
	return out
}

// Present returns the hemispheres with a mesh, in canonical order.
func (r *Registry) Present() []surface.Hemisphere { return slices.Clone(r.present) }

// Surfaces returns the hemisphere meshes.
func (r *Registry) Surfaces() map[surface.Hemisphere]surface.Mesh {
	out := make(map[surface.Hemisphere]surface.Mesh, len(r.surfaces))
	for h, m := range r.surfaces {
		out[h] = m
	}
	return out
}
