package config

import (
	"github.com/charmbracelet/log"
	"gonum.org/v1/plot/vg"

	"github.com/surfplot/surfplot/pkg/datasets"
	"github.com/surfplot/surfplot/pkg/layers"
	"github.com/surfplot/surfplot/pkg/layout"
	"github.com/surfplot/surfplot/pkg/plot"
	"github.com/surfplot/surfplot/pkg/render"
	"github.com/surfplot/surfplot/pkg/scalars"
	"github.com/surfplot/surfplot/pkg/surface"
)

// NewPlot creates the plot described by c and adds its layers.
func (c *Config) NewPlot(logger *log.Logger) (*plot.Plot, error) {
	opts, err := c.PlotOptions()
	if err != nil {
		return nil, err
	}
	p, err := plot.New(c.Surfaces.sources(), append(opts, plot.WithLogger(logger))...)
	if err != nil {
		return nil, err
	}
	for _, l := range c.Layers {
		data, err := l.LayerData()
		if err != nil {
			return nil, err
		}
		if _, err := p.AddLayer(data, l.Options()...); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s Surfaces) sources() plot.Surfaces {
	var out plot.Surfaces
	switch {
	case s.Left != "":
		out.Left = surface.Path(s.Left)
	case s.LeftVertices > 0:
		out.Left = surface.Loaded{Mesh: surface.NewPointSet(s.LeftVertices)}
	}
	switch {
	case s.Right != "":
		out.Right = surface.Path(s.Right)
	case s.RightVertices > 0:
		out.Right = surface.Loaded{Mesh: surface.NewPointSet(s.RightVertices)}
	}
	return out
}

// PlotOptions translates the plot section.
func (c *Config) PlotOptions() ([]plot.Option, error) {
	mode, err := layout.ParseMode(c.Plot.Layout)
	if err != nil {
		return nil, err
	}
	views, err := surface.ParseViews(c.Plot.Views)
	if err != nil {
		return nil, err
	}
	p := c.Plot
	opts := []plot.Option{
		plot.WithLayout(mode),
		plot.WithViews(views...),
		plot.WithFlip(p.Flip),
		plot.WithZoom(p.Zoom),
		plot.WithBrightness(p.Brightness),
	}
	if len(p.Size) == 2 {
		opts = append(opts, plot.WithSize(p.Size[0], p.Size[1]))
	}
	if len(p.Background) == 3 {
		opts = append(opts, plot.WithBackground(render.RGB{p.Background[0], p.Background[1], p.Background[2]}))
	}
	if len(p.LabelText) > 0 {
		opts = append(opts, plot.WithLabelText(p.LabelText))
	}
	return opts, nil
}

// LayerData resolves the layer's values.
func (l Layer) LayerData() (layers.Data, error) {
	switch {
	case l.Example != "":
		hemis, err := datasets.LoadExampleData(l.Example, false)
		if err != nil {
			return nil, err
		}
		return layers.Loaded(scalars.DataArrays(hemis)), nil
	case l.Left != "" || l.Right != "":
		data := layers.ByHemisphere{}
		if l.Left != "" {
			data[surface.Left] = scalars.Path(l.Left)
		}
		if l.Right != "" {
			data[surface.Right] = scalars.Path(l.Right)
		}
		return data, nil
	case l.MedialWall:
		values, err := scalars.Load(scalars.Path(l.Data))
		if err != nil {
			return nil, err
		}
		full, err := datasets.AddMedialWall(values, false)
		if err != nil {
			return nil, err
		}
		return layers.Values(full[0]), nil
	default:
		return layers.File(l.Data), nil
	}
}

// Options translates the layer settings.
func (l Layer) Options() []layers.Option {
	var opts []layers.Option
	if l.ColorMap != "" {
		opts = append(opts, layers.WithColorMap(l.ColorMap))
	}
	if l.Range != nil {
		opts = append(opts, layers.WithColorRange(l.Range.Min, l.Range.Max))
	}
	if l.Outline {
		opts = append(opts, layers.WithOutline())
	}
	if l.ZeroTransparent != nil {
		opts = append(opts, layers.WithZeroTransparent(*l.ZeroTransparent))
	}
	if l.Colorbar != nil {
		opts = append(opts, layers.WithColorbar(*l.Colorbar))
	}
	if l.Label != "" {
		opts = append(opts, layers.WithColorbarLabel(l.Label))
	}
	return opts
}

// BuildOptions translates the colorbar and build sections.
func (c *Config) BuildOptions() []plot.BuildOption {
	opts := []plot.BuildOption{plot.WithColorbarOptions(c.Colorbar)}
	if len(c.Build.Scale) == 2 {
		opts = append(opts, plot.WithScale(c.Build.Scale[0], c.Build.Scale[1]))
	}
	if len(c.Build.FigSize) == 2 {
		opts = append(opts, plot.WithFigSize(vg.Length(c.Build.FigSize[0])*vg.Inch, vg.Length(c.Build.FigSize[1])*vg.Inch))
	}
	if !c.Build.Colorbar {
		opts = append(opts, plot.WithoutColorbar())
	}
	return opts
}
