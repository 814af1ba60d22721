package plot_test

import (
	"fmt"

	"github.com/surfplot/surfplot/pkg/layers"
	"github.com/surfplot/surfplot/pkg/plot"
	"github.com/surfplot/surfplot/pkg/surface"
)

func ExampleNew() {
	lh, rh := surface.NewPointSet(4), surface.NewPointSet(4)
	p, err := plot.New(
		plot.Surfaces{Left: surface.Loaded{Mesh: lh}, Right: surface.Loaded{Mesh: rh}},
		plot.WithViews(surface.Lateral, surface.Medial, surface.Dorsal),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	l, err := p.AddLayer(layers.Values([]float64{1, 2, 3, 4, 5, 6, 7, 8}), layers.WithColorMap("magma"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	scene := p.Scene()
	fmt.Println("Shape:", p.Layout().Shape())
	fmt.Println("Views:", scene.Layout.ViewGrid())
	fmt.Println("Layer:", l.Name, l.ColorMap, l.Range.Min, l.Range.Max)
	fmt.Println("Stack:", scene.Names[0][0], scene.ColorMaps[0])
	// Output:
	// Shape: [3 2]
	// Views: [[lateral medial] [medial lateral] [dorsal dorsal]]
	// Layer: 1 magma 1 8
	// Stack: [0 1] [Greys_r magma]
}
