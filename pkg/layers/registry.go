package layers

import (
	"math"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/surfplot/surfplot/pkg/colormap"
	"github.com/surfplot/surfplot/pkg/errors"
	"github.com/surfplot/surfplot/pkg/scalars"
	"github.com/surfplot/surfplot/pkg/surface"
)

// Layer is one registered overlay.
type Layer struct {
	Index           int
	Name            string
	Data            map[surface.Hemisphere][]float64
	ColorMap        string
	Range           Range
	Outline         bool
	ZeroTransparent bool
	ShowColorbar    bool
	Label           string
}

// Registry accumulates layers for one figure. It is not safe for
// concurrent use.
type Registry struct {
	surfaces map[surface.Hemisphere]surface.Mesh
	present  []surface.Hemisphere
	layers   []Layer
	logger   *log.Logger
}

// NewRegistry creates a registry over the given hemisphere meshes.
func NewRegistry(surfaces map[surface.Hemisphere]surface.Mesh, opts ...RegistryOption) (*Registry, error) {
	r := &Registry{
		surfaces: make(map[surface.Hemisphere]surface.Mesh, len(surfaces)),
		logger:   log.Default(),
	}
	for h, m := range surfaces {
		if !h.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidKey, "invalid hemisphere %q (must be 'left' or 'right')", h)
		}
		if m != nil {
			r.surfaces[h] = m
		}
	}
	r.present = surface.Present(r.surfaces)
	if len(r.present) == 0 {
		return nil, errors.New(errors.ErrCodeConfiguration, "no surfaces are provided")
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Add registers a new layer and attaches its arrays to the meshes.
// When Add fails no layer is appended, and meshes already written are
// restored.
func (r *Registry) Add(data Data, opts ...Option) (Layer, error) {
	o := defaultAddOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !colormap.Known(o.colorMap) {
		return Layer{}, errors.New(errors.ErrCodeInvalidColorMap, "unknown colour map %q", o.colorMap)
	}
	if o.colorRange != nil {
		if err := errors.ValidateColorRange(o.colorRange.Min, o.colorRange.Max); err != nil {
			return Layer{}, err
		}
	}

	supplied, err := r.split(data)
	if err != nil {
		return Layer{}, err
	}

	layer := Layer{
		Index:           len(r.layers),
		Name:            strconv.Itoa(len(r.layers)),
		Data:            make(map[surface.Hemisphere][]float64, len(r.present)),
		ColorMap:        o.colorMap,
		Outline:         o.outline,
		ZeroTransparent: o.zeroTransparent,
		ShowColorbar:    o.showColorbar,
		Label:           o.label,
	}

	for _, h := range r.present {
		values, ok := supplied[h]
		if !ok {
			layer.Data[h] = nanFill(r.surfaces[h].NumPoints())
			continue
		}
		x := values
		if o.outline {
			if x, err = surface.LabelingBorder(r.surfaces[h], values); err != nil {
				return Layer{}, err
			}
		} else {
			x = slices.Clone(values)
		}
		if o.zeroTransparent {
			zeroToNaN(x)
			if !o.outline {
				zeroToNaN(values)
			}
		}
		layer.Data[h] = x
	}

	if o.colorRange != nil {
		layer.Range = *o.colorRange
	} else {
		rng, err := findRange(supplied)
		if err != nil {
			return Layer{}, errors.Wrap(errors.ErrCodeEmptyRange, err, "layer %s", layer.Name)
		}
		layer.Range = rng
	}

	if err := r.attach(layer); err != nil {
		return Layer{}, err
	}
	r.layers = append(r.layers, layer)

	r.logger.Debug("added layer",
		"name", layer.Name,
		"cmap", layer.ColorMap,
		"min", layer.Range.Min,
		"max", layer.Range.Max,
		"outline", layer.Outline,
		"colorbar", layer.ShowColorbar)
	return layer.clone(), nil
}

// attach stores the layer's arrays on every mesh. If a mesh refuses its
// array, the meshes already written are restored: a replaced array is put
// back, a new one is removed when the mesh implements
// [surface.ArrayRemover].
func (r *Registry) attach(layer Layer) error {
	for _, h := range r.present {
		if m, n := r.surfaces[h], len(layer.Data[h]); n != m.NumPoints() {
			return errors.New(errors.ErrCodeShapeMismatch,
				"%s layer %s has %d values, mesh has %d vertices", h, layer.Name, n, m.NumPoints())
		}
	}

	type saved struct {
		h    surface.Hemisphere
		prev []float64
		had  bool
	}
	var done []saved
	for _, h := range r.present {
		m := r.surfaces[h]
		prev, had := m.PointArray(layer.Name)
		if had {
			prev = slices.Clone(prev)
		}
		if err := m.AppendArray(layer.Name, layer.Data[h]); err != nil {
			for _, d := range done {
				r.restore(d.h, layer.Name, d.prev, d.had)
			}
			return err
		}
		done = append(done, saved{h: h, prev: prev, had: had})
	}
	return nil
}

func (r *Registry) restore(h surface.Hemisphere, name string, prev []float64, had bool) {
	m := r.surfaces[h]
	if had {
		if err := m.AppendArray(name, prev); err != nil {
			r.logger.Warn("restore array", "hemisphere", h, "name", name, "err", err)
		}
		return
	}
	if rm, ok := m.(surface.ArrayRemover); ok {
		rm.RemoveArray(name)
	}
}

// split resolves data into validated per-hemisphere arrays owned by the
// registry.
func (r *Registry) split(data Data) (map[surface.Hemisphere][]float64, error) {
	out := make(map[surface.Hemisphere][]float64, 2)
	switch d := data.(type) {
	case Vertices:
		values, err := scalars.Load(d.Source)
		if err != nil {
			return nil, err
		}
		want := 0
		for _, h := range r.present {
			want += r.surfaces[h].NumPoints()
		}
		if len(values) != want {
			return nil, errors.New(errors.ErrCodeShapeMismatch,
				"data has %d values, surfaces have %d vertices in total", len(values), want)
		}
		offset := 0
		for _, h := range r.present {
			n := r.surfaces[h].NumPoints()
			out[h] = values[offset : offset+n : offset+n]
			offset += n
		}
	case ByHemisphere:
		for h, src := range d {
			if !h.Valid() {
				return nil, errors.New(errors.ErrCodeInvalidKey,
					"invalid data key %q (only 'left' and 'right' are allowed)", h)
			}
			mesh, ok := r.surfaces[h]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidKey, "no %s surface for data key %q", h, h)
			}
			values, err := scalars.Load(src)
			if err != nil {
				return nil, err
			}
			if len(values) != mesh.NumPoints() {
				return nil, errors.New(errors.ErrCodeShapeMismatch,
					"%s data has %d values, surface has %d vertices", h, len(values), mesh.NumPoints())
			}
			out[h] = values
		}
	case nil:
		return nil, errors.New(errors.ErrCodeInvalidType, "layer data is nil")
	default:
		return nil, errors.New(errors.ErrCodeInvalidType, "unsupported layer data %T", data)
	}
	return out, nil
}

// findRange returns the NaN-ignoring extent of the supplied arrays.
func findRange(supplied map[surface.Hemisphere][]float64) (Range, error) {
	rng := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, h := range surface.Hemispheres {
		values, ok := supplied[h]
		if !ok {
			continue
		}
		lo, hi, ok := nanExtent(values)
		if !ok {
			return Range{}, errors.New(errors.ErrCodeEmptyRange,
				"%s data has no finite values; supply an explicit color range", h)
		}
		rng.Min = math.Min(rng.Min, lo)
		rng.Max = math.Max(rng.Max, hi)
	}
	return rng, nil
}

func nanExtent(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	return lo, hi, ok
}

func nanFill(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

func zeroToNaN(values []float64) {
	for i, v := range values {
		if v == 0 {
			values[i] = math.NaN()
		}
	}
}

func (l Layer) clone() Layer {
	out := l
	out.Data = make(map[surface.Hemisphere][]float64, len(l.Data))
	for h, v := range l.Data {
		out.Data[h] = slices.Clone(v)
	}
	return out
}
