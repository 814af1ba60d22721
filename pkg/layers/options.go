package layers

import (
	"github.com/charmbracelet/log"

	"github.com/surfplot/surfplot/pkg/colormap"
)

// Range is a colour range.
type Range struct {
	Min float64 `json:"min" toml:"min" yaml:"min"`
	Max float64 `json:"max" toml:"max" yaml:"max"`
}

// Option configures a single [Registry.Add] call.
type Option func(*addOptions)

type addOptions struct {
	colorMap        string
	colorRange      *Range
	outline         bool
	zeroTransparent bool
	showColorbar    bool
	label           string
}

func defaultAddOptions() addOptions {
	return addOptions{
		colorMap:        colormap.Default,
		zeroTransparent: true,
		showColorbar:    true,
	}
}

// WithColorMap sets the colour map name (default "viridis").
func WithColorMap(name string) Option { return func(o *addOptions) { o.colorMap = name } }

// WithColorRange fixes the colour range instead of deriving it from data.
func WithColorRange(min, max float64) Option {
	return func(o *addOptions) { o.colorRange = &Range{Min: min, Max: max} }
}

// WithOutline draws only the borders between label values.
func WithOutline() Option { return func(o *addOptions) { o.outline = true } }

// WithZeroTransparent controls whether exact zeros become transparent
// (default true).
func WithZeroTransparent(on bool) Option { return func(o *addOptions) { o.zeroTransparent = on } }

// WithColorbar controls whether the layer gets a colorbar (default true).
func WithColorbar(show bool) Option { return func(o *addOptions) { o.showColorbar = show } }

// WithColorbarLabel sets the text drawn next to the layer's colorbar.
func WithColorbarLabel(label string) Option { return func(o *addOptions) { o.label = label } }

// RegistryOption configures a [Registry].
type RegistryOption func(*Registry)

// WithLogger sets the logger used for debug output. The default is
// log.Default().
func WithLogger(l *log.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}
