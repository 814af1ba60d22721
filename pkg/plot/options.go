package plot

import (
	"slices"

	"github.com/charmbracelet/log"
	"gonum.org/v1/plot/vg"

	"github.com/surfplot/surfplot/pkg/colorbar"
	"github.com/surfplot/surfplot/pkg/layout"
	"github.com/surfplot/surfplot/pkg/render"
	"github.com/surfplot/surfplot/pkg/surface"
)

// Default figure settings.
const (
	DefaultWidth      = 500
	DefaultHeight     = 400
	DefaultZoom       = 1.5
	DefaultBrightness = 0.5
)

// minBrightness replaces a zero brightness so the backdrop survives
// zero-transparency.
const minBrightness = 1e-6

// Option configures a [Plot].
type Option func(*options)

type options struct {
	mode       layout.Mode
	views      []surface.View
	flip       bool
	size       [2]int
	zoom       float64
	background render.RGB
	labelText  map[string][]string
	brightness float64
	logger     *log.Logger
	loader     func(surface.Source) (surface.Mesh, error)
}

func defaultOptions() options {
	return options{
		mode:       layout.Grid,
		views:      slices.Clone(layout.DefaultViews),
		size:       [2]int{DefaultWidth, DefaultHeight},
		zoom:       DefaultZoom,
		background: render.RGB{1, 1, 1},
		brightness: DefaultBrightness,
		loader:     surface.Load,
	}
}

// WithLayout sets the arrangement mode. The default is [layout.Grid].
func WithLayout(m layout.Mode) Option { return func(o *options) { o.mode = m } }

// WithViews sets the views shown for every hemisphere.
func WithViews(views ...surface.View) Option {
	return func(o *options) { o.views = slices.Clone(views) }
}

// WithFlip swaps the left and right columns when both hemispheres are
// plotted.
func WithFlip(flip bool) Option { return func(o *options) { o.flip = flip } }

// WithSize sets the rendered image size in pixels.
func WithSize(width, height int) Option { return func(o *options) { o.size = [2]int{width, height} } }

// WithZoom sets the camera zoom passed to the renderer.
func WithZoom(zoom float64) Option { return func(o *options) { o.zoom = zoom } }

// WithBackground sets the renderer background colour.
func WithBackground(c render.RGB) Option { return func(o *options) { o.background = c } }

// WithLabelText sets captions keyed by figure edge ("left", "top", ...).
func WithLabelText(text map[string][]string) Option {
	return func(o *options) {
		o.labelText = make(map[string][]string, len(text))
		for k, v := range text {
			o.labelText[k] = slices.Clone(v)
		}
	}
}

// WithBrightness sets the grey level of the backdrop layer, in [0, 1].
func WithBrightness(b float64) Option { return func(o *options) { o.brightness = b } }

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option { return func(o *options) { o.logger = l } }

// WithLoader replaces the mesh loader, [surface.Load] by default.
func WithLoader(fn func(surface.Source) (surface.Mesh, error)) Option {
	return func(o *options) { o.loader = fn }
}

// BuildOption configures [Plot.Build].
type BuildOption func(*buildOptions)

type buildOptions struct {
	figSize  [2]vg.Length // zero means derived from the render size
	colorbar bool
	cbar     colorbar.Options
	scale    [2]float64
}

func defaultBuildOptions() buildOptions {
	return buildOptions{
		colorbar: true,
		cbar:     colorbar.DefaultOptions(),
		scale:    [2]float64{2, 2},
	}
}

// WithFigSize sets the figure size. By default it is the render size in
// hundreds of pixels plus one inch on each axis.
func WithFigSize(width, height vg.Length) BuildOption {
	return func(o *buildOptions) { o.figSize = [2]vg.Length{width, height} }
}

// WithoutColorbar disables all colorbars.
func WithoutColorbar() BuildOption { return func(o *buildOptions) { o.colorbar = false } }

// WithColorbarOptions replaces the colorbar settings.
func WithColorbarOptions(cb colorbar.Options) BuildOption {
	return func(o *buildOptions) { o.cbar = cb }
}

// WithScale sets the factor applied to the render size when the rendering
// is exported to a raster.
func WithScale(sx, sy float64) BuildOption {
	return func(o *buildOptions) { o.scale = [2]float64{sx, sy} }
}
