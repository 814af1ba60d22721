package render

import (
	"image/color"
	"math"

	"github.com/surfplot/surfplot/pkg/layers"
	"github.com/surfplot/surfplot/pkg/layout"
	"github.com/surfplot/surfplot/pkg/surface"
)

// RGB is a colour with components in [0, 1].
type RGB [3]float64

// RGBA is a colour with components in [0, 1].
type RGBA [4]float64

// Color converts c to an opaque color.Color.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: unit8(c[0]), G: unit8(c[1]), B: unit8(c[2]), A: 255}
}

// Color converts c to a color.Color.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: unit8(c[0]), G: unit8(c[1]), B: unit8(c[2]), A: unit8(c[3])}
}

func unit8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Transparent is the colour used for NaN values, so that missing and
// zeroed data shows the layer below.
var Transparent = RGBA{0, 0, 0, 0}

// Scene is everything a mesh renderer needs to draw a figure.
//
// Names, ColorMaps and Ranges hold the layer stack, replicated the way
// renderers broadcast per-axis parameters: for a 2-D grid with no unit
// dimension, Names is rows×cols and ColorMaps and Ranges have one entry
// per column; otherwise each holds a single entry. Use [Scene.StackAt]
// instead of indexing them directly.
type Scene struct {
	Surfaces   map[surface.Hemisphere]surface.Mesh
	Layout     layout.Layout
	Names      [][][]string
	ColorMaps  [][]string
	Ranges     [][]layers.Range
	Background RGB
	Zoom       float64
	NaNColor   RGBA
	Size       [2]int
	LabelText  map[string][]string
}

// Replicate builds the broadcast layer stacks for l.
func Replicate(l layout.Layout, names, cmaps []string, ranges []layers.Range) ([][][]string, [][]string, [][]layers.Range) {
	if l.Flat || l.Rows() == 1 || l.Cols() == 1 {
		return [][][]string{{names}}, [][]string{cmaps}, [][]layers.Range{ranges}
	}
	rows, cols := l.Rows(), l.Cols()
	n := make([][][]string, rows)
	for r := range n {
		n[r] = make([][]string, cols)
		for c := range n[r] {
			n[r][c] = names
		}
	}
	cm := make([][]string, cols)
	rg := make([][]layers.Range, cols)
	for c := 0; c < cols; c++ {
		cm[c] = cmaps
		rg[c] = ranges
	}
	return n, cm, rg
}

// StackAt returns the layer stack for the cell at (row, col).
func (s Scene) StackAt(row, col int) (names, cmaps []string, ranges []layers.Range) {
	if len(s.Names) > 0 {
		r := clamp(row, len(s.Names))
		names = s.Names[r][clamp(col, len(s.Names[r]))]
	}
	if len(s.ColorMaps) > 0 {
		cmaps = s.ColorMaps[clamp(col, len(s.ColorMaps))]
	}
	if len(s.Ranges) > 0 {
		ranges = s.Ranges[clamp(col, len(s.Ranges))]
	}
	return names, cmaps, ranges
}

func clamp(i, n int) int {
	if i >= n {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}
