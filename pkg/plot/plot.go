package plot

import (
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/surfplot/surfplot/pkg/errors"
	"github.com/surfplot/surfplot/pkg/layers"
	"github.com/surfplot/surfplot/pkg/layout"
	"github.com/surfplot/surfplot/pkg/observability"
	"github.com/surfplot/surfplot/pkg/render"
	"github.com/surfplot/surfplot/pkg/scalars"
	"github.com/surfplot/surfplot/pkg/surface"
)

// Surfaces names the meshes to plot. At least one must be set.
type Surfaces struct {
	Left  surface.Source
	Right surface.Source
}

// Plot is a surface figure under construction. It is not safe for
// concurrent use.
type Plot struct {
	opts     options
	surfaces map[surface.Hemisphere]surface.Mesh
	layout   layout.Layout
	registry *layers.Registry
	logger   *log.Logger
}

// New loads the surfaces, computes the layout and registers the backdrop
// layer.
func New(s Surfaces, opts ...Option) (*Plot, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	logger := o.logger
	if logger == nil {
		logger = log.Default()
	}

	surfaces := make(map[surface.Hemisphere]surface.Mesh, 2)
	sources := map[surface.Hemisphere]surface.Source{surface.Left: s.Left, surface.Right: s.Right}
	for _, h := range surface.Hemispheres {
		if sources[h] == nil {
			continue
		}
		m, err := o.loader(sources[h])
		if err != nil {
			if errors.GetCode(err) == "" {
				err = errors.Wrap(errors.ErrCodeInvalidInput, err, "load %s surface", h)
			}
			return nil, err
		}
		if m == nil {
			return nil, errors.New(errors.ErrCodeInvalidType, "%s surface loaded as nil", h)
		}
		surfaces[h] = m
	}
	if len(surfaces) == 0 {
		return nil, errors.New(errors.ErrCodeConfiguration, "no surfaces are provided")
	}

	_, left := surfaces[surface.Left]
	_, right := surfaces[surface.Right]
	l, err := layout.Compute(left, right, o.mode, o.views)
	if err != nil {
		return nil, err
	}

	reg, err := layers.NewRegistry(surfaces, layers.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	p := &Plot{opts: o, surfaces: surfaces, layout: l, registry: reg, logger: logger}
	if err := p.addBackdrop(); err != nil {
		return nil, err
	}
	logger.Debug("created plot", "hemispheres", reg.Present(), "layout", o.mode, "shape", l.Shape())
	return p, nil
}

func (o options) validate() error {
	if o.size[0] <= 0 || o.size[1] <= 0 {
		return errors.New(errors.ErrCodeConfiguration, "size must be positive, got %dx%d", o.size[0], o.size[1])
	}
	if err := errors.ValidatePositive("zoom", o.zoom); err != nil {
		return err
	}
	if err := errors.ValidateFraction("brightness", o.brightness); err != nil {
		return err
	}
	for i, c := range o.background {
		if err := errors.ValidateFraction("background", c); err != nil {
			return errors.Wrap(errors.ErrCodeConfiguration, err, "background component %d", i)
		}
	}
	for edge := range o.labelText {
		switch edge {
		case "left", "right", "top", "bottom":
		default:
			return errors.New(errors.ErrCodeInvalidKey, "label text edge must be 'left', 'right', 'top' or 'bottom', got %q", edge)
		}
	}
	if o.loader == nil {
		return errors.New(errors.ErrCodeConfiguration, "mesh loader is nil")
	}
	return nil
}

func (p *Plot) addBackdrop() error {
	b := p.opts.brightness
	if b == 0 {
		b = minBrightness
	}
	data := make(layers.ByHemisphere, len(p.surfaces))
	for h, m := range p.surfaces {
		ones := make([]float64, m.NumPoints())
		for i := range ones {
			ones[i] = b
		}
		data[h] = scalars.Values(ones)
	}
	_, err := p.registry.Add(data,
		layers.WithColorMap("Greys_r"),
		layers.WithColorRange(0, 1),
		layers.WithColorbar(false),
	)
	return err
}

// AddLayer registers a data overlay. See [layers.Registry.Add].
func (p *Plot) AddLayer(data layers.Data, opts ...layers.Option) (layers.Layer, error) {
	l, err := p.registry.Add(data, opts...)
	if err != nil {
		return layers.Layer{}, err
	}
	observability.Build().OnLayerAdded(context.Background(), l.Name, l.ColorMap, l.Range.Min, l.Range.Max)
	return l, nil
}

// Layout returns the computed layout, before any flip.
func (p *Plot) Layout() layout.Layout { return p.layout }

// Layers returns the registered layers, backdrop first.
func (p *Plot) Layers() []layers.Layer { return p.registry.Layers() }

// Surfaces returns the loaded meshes, with every layer array attached.
func (p *Plot) Surfaces() map[surface.Hemisphere]surface.Mesh { return p.registry.Surfaces() }

// Size returns the render size in pixels.
func (p *Plot) Size() (width, height int) { return p.opts.size[0], p.opts.size[1] }

// Scene describes the figure for a renderer.
func (p *Plot) Scene() render.Scene {
	l := p.layout
	if p.opts.flip && len(p.surfaces) == 2 {
		l = l.Flip()
	}
	names, cmaps, ranges := render.Replicate(l, p.registry.Names(), p.registry.ColorMaps(), p.registry.Ranges())

	var labels map[string][]string
	if len(p.opts.labelText) > 0 {
		labels = make(map[string][]string, len(p.opts.labelText))
		for k, v := range p.opts.labelText {
			labels[k] = slices.Clone(v)
		}
	}
	return render.Scene{
		Surfaces:   p.registry.Surfaces(),
		Layout:     l,
		Names:      names,
		ColorMaps:  cmaps,
		Ranges:     ranges,
		Background: p.opts.background,
		Zoom:       p.opts.zoom,
		NaNColor:   render.Transparent,
		Size:       p.opts.size,
		LabelText:  labels,
	}
}

// Render hands the scene to r.
func (p *Plot) Render(ctx context.Context, r render.Renderer) (render.Rendering, error) {
	if r == nil {
		return nil, errors.New(errors.ErrCodeConfiguration, "renderer is nil")
	}
	scene := p.Scene()
	cells := scene.Layout.Len()
	hooks := observability.Build()
	hooks.OnRenderStart(ctx, cells, p.registry.Len())

	start := time.Now()
	p.logger.Debug("rendering scene", "cells", cells, "layers", p.registry.Len(), "size", scene.Size)
	out, err := r.Render(ctx, scene)
	elapsed := time.Since(start)
	hooks.OnRenderComplete(ctx, cells, elapsed, err)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("rendered scene", "elapsed", elapsed.Round(time.Millisecond))
	return out, nil
}
