// Package colormap resolves colour-map names to gonum/plot palettes.
//
// Names follow the matplotlib vocabulary the figures are usually described
// in ("viridis", "Greys_r", "coolwarm"). A trailing "_r" reverses any
// registered map. Every call to [Get] returns a fresh map, so callers may
// set its range without affecting others.
package colormap

import (
	"image/color"
	"sort"
	"strings"
	"sync"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/surfplot/surfplot/pkg/errors"
)

// Default is the colour map used for layers that do not name one.
const Default = "viridis"

// Factory builds a new colour map instance.
type Factory func() (palette.ColorMap, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{
		"viridis": luminance(0x440154, 0x482878, 0x3e4989, 0x31688e, 0x26828e, 0x1f9e89, 0x35b779, 0x6ece58, 0xb5de2b, 0xfde725),
		"magma":   luminance(0x000004, 0x1c1044, 0x4f127b, 0x812581, 0xb5367a, 0xe55064, 0xfb8761, 0xfec287, 0xfcfdbf),
		"inferno": luminance(0x000004, 0x210c4a, 0x56106e, 0x89226a, 0xbb3754, 0xe35933, 0xf98e09, 0xfac127, 0xfcffa4),
		"Greys_r": luminance(0x000000, 0xffffff),
		"gray":    luminance(0x000000, 0xffffff),
		"Greys":   reversed(luminance(0x000000, 0xffffff)),
		"Reds":    reversed(luminance(0x67000d, 0xcb181d, 0xfb6a4a, 0xfcbba1, 0xfff5f0)),
		"Blues":   reversed(luminance(0x08306b, 0x2171b5, 0x6baed6, 0xc6dbef, 0xf7fbff)),

		"coolwarm":           fixed(smoothBlueRed),
		"RdBu_r":             fixed(smoothBlueRed),
		"hot":                fixed(moreland.BlackBody),
		"blackbody":          fixed(moreland.BlackBody),
		"extended_blackbody": fixed(moreland.ExtendedBlackBody),
		"kindlmann":          fixed(moreland.Kindlmann),
		"extended_kindlmann": fixed(moreland.ExtendedKindlmann),
	}
)

func hex(v uint32) color.Color {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func luminance(anchors ...uint32) Factory {
	return func() (palette.ColorMap, error) {
		cs := make([]color.Color, len(anchors))
		for i, a := range anchors {
			cs[i] = hex(a)
		}
		return moreland.NewLuminance(cs)
	}
}

func reversed(f Factory) Factory {
	return func() (palette.ColorMap, error) {
		cm, err := f()
		if err != nil {
			return nil, err
		}
		return palette.Reverse(cm), nil
	}
}

// smoothBlueRed narrows moreland's diverging map to a plain ColorMap.
func smoothBlueRed() palette.ColorMap { return moreland.SmoothBlueRed() }

func fixed(f func() palette.ColorMap) Factory {
	return func() (palette.ColorMap, error) { return f(), nil }
}

// Register installs a named colour map, replacing any existing one.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if f != nil {
		registry[name] = f
	}
}

// Known reports whether name resolves, including "_r" reversals.
func Known(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	if _, ok := registry[name]; ok {
		return true
	}
	_, ok := registry[strings.TrimSuffix(name, "_r")]
	return ok && strings.HasSuffix(name, "_r")
}

// Names returns the registered names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Get returns a new colour map for name with its range set to [min, max].
func Get(name string, min, max float64) (palette.ColorMap, error) {
	mu.RLock()
	f, ok := registry[name]
	if !ok && strings.HasSuffix(name, "_r") {
		if base, found := registry[strings.TrimSuffix(name, "_r")]; found {
			f, ok = reversed(base), true
		}
	}
	mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidColorMap, "unknown colour map %q", name)
	}

	cm, err := f()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build colour map %q", name)
	}
	if max < min {
		min, max = max, min
	}
	if min == max {
		// A degenerate range still needs a non-empty domain.
		max = min + 1
	}
	cm.SetMax(max)
	cm.SetMin(min)
	return cm, nil
}

// Color returns the colour for v. NaN values map to transparent and
// values outside the range are clamped.
func Color(cm palette.ColorMap, v float64) color.Color {
	if v != v {
		return color.Transparent
	}
	if v < cm.Min() {
		v = cm.Min()
	}
	if v > cm.Max() {
		v = cm.Max()
	}
	c, err := cm.At(v)
	if err != nil {
		return color.Transparent
	}
	return c
}
