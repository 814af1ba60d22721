package plot

import (
	"context"
	"image"
	"image/color"
	"io"
	"slices"
	"time"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/surfplot/surfplot/pkg/colorbar"
	"github.com/surfplot/surfplot/pkg/errors"
	"github.com/surfplot/surfplot/pkg/observability"
	"github.com/surfplot/surfplot/pkg/render"
)

// Subplot margins, as fractions of the figure.
const (
	marginLeft   = .125
	marginRight  = .9
	marginBottom = .11
	marginTop    = .88
)

// Figure is a composed figure: the rendered surfaces on a white canvas,
// with their colorbars. Drawing is deferred until the figure is written.
type Figure struct {
	Width, Height vg.Length

	rendered  image.Image
	imageRect vg.Rectangle
	bars      []colorbar.Bar
	barRects  []vg.Rectangle
	cbar      colorbar.Options
}

// Build renders the plot with r and composes the figure.
func (p *Plot) Build(ctx context.Context, r render.Renderer, opts ...BuildOption) (*Figure, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.scale[0] > 0) || !(o.scale[1] > 0) {
		return nil, errors.New(errors.ErrCodeConfiguration, "scale must be positive, got %v", o.scale)
	}
	if o.colorbar {
		if err := o.cbar.Validate(); err != nil {
			return nil, err
		}
		if _, err := colorbar.LabelPlacement(o.cbar.Location, o.cbar.LabelDirection); err != nil {
			return nil, err
		}
	}
	w, h := o.figSize[0], o.figSize[1]
	if w == 0 && h == 0 {
		w, h = defaultFigSize(p.opts.size)
	}
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeConfiguration, "figure size must be positive, got %vx%v", w, h)
	}

	rendering, err := p.Render(ctx, r)
	if err != nil {
		return nil, err
	}
	img, err := rendering.Image(o.scale)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fig := &Figure{Width: w, Height: h, rendered: img, cbar: o.cbar}
	axes := axesRect(w, h)
	var loc *colorbar.Location
	if o.colorbar {
		hooks := observability.Build()
		start := time.Now()
		fig.bars = colorbar.Plan(p.Layers(), o.cbar)
		hooks.OnColorbarsStart(ctx, len(fig.bars))
		fig.barRects, axes = colorbar.Arrange(axes, fig.bars, p.registry.Len(), o.cbar)
		hooks.OnColorbarsComplete(ctx, len(fig.bars), time.Since(start), nil)
		loc = &fig.cbar.Location
	}
	b := img.Bounds()
	fig.imageRect = colorbar.FitImage(axes, b.Dx(), b.Dy(), loc)

	p.logger.Debug("built figure", "width", w, "height", h, "colorbars", len(fig.bars), "image", b.Size())
	return fig, nil
}

// defaultFigSize is the render size in hundreds of pixels, plus one, in
// inches.
func defaultFigSize(size [2]int) (vg.Length, vg.Length) {
	return vg.Length(float64(size[0])/100+1) * vg.Inch, vg.Length(float64(size[1])/100+1) * vg.Inch
}

func axesRect(w, h vg.Length) vg.Rectangle {
	return vg.Rectangle{
		Min: vg.Point{X: marginLeft * w, Y: marginBottom * h},
		Max: vg.Point{X: marginRight * w, Y: marginTop * h},
	}
}

// Rendered returns the surface raster produced by the renderer.
func (f *Figure) Rendered() image.Image { return f.rendered }

// ImageRect returns where the surface raster is drawn.
func (f *Figure) ImageRect() vg.Rectangle { return f.imageRect }

// ColorbarRects returns the colour strip of every colorbar, outermost
// first.
func (f *Figure) ColorbarRects() []vg.Rectangle { return slices.Clone(f.barRects) }

// Draw paints the figure onto c, whose rectangle must start at the origin
// and have the figure's size.
func (f *Figure) Draw(c draw.Canvas) error {
	c.SetColor(color.White)
	c.Fill(c.Rectangle.Path())
	c.DrawImage(f.imageRect, f.rendered)
	for i, b := range f.bars {
		if err := colorbar.Draw(c, b, f.barRects[i], f.cbar); err != nil {
			return err
		}
	}
	return nil
}

// Write encodes the figure to w. format is one of [render.Formats].
func (f *Figure) Write(w io.Writer, format string) error {
	return render.WriteFormatted(w, format, f.Width, f.Height, f.Draw)
}

// Save writes the figure to path; the format follows the extension.
func (f *Figure) Save(path string) error {
	return render.SaveFormatted(path, f.Width, f.Height, f.Draw)
}

// Image rasterises the figure at dpi dots per inch.
func (f *Figure) Image(dpi int) (image.Image, error) {
	if dpi <= 0 {
		return nil, errors.New(errors.ErrCodeConfiguration, "dpi must be positive, got %d", dpi)
	}
	c := vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)
	if err := f.Draw(draw.New(c)); err != nil {
		return nil, err
	}
	return c.Image(), nil
}
