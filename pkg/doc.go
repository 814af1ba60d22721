// Package pkg provides the core libraries for surfplot brain surface figures.
//
// # Overview
//
// Surfplot arranges cortical surface views in a grid, row or column,
// stacks per-vertex data layers on the surfaces, and composes the rendered
// views with colorbars into a figure. The pkg directory is organized into
// three areas:
//
//  1. Domain logic: [surface], [layout], [layers], [colormap], [colorbar]
//  2. Figure assembly: [plot], [render], [datasets]
//  3. Infrastructure: [config], [cache], [errors], [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	Surfaces (OBJ files or vertex counts)
//	         ↓
//	    [layout] package (which hemisphere and view goes in each cell)
//	         ↓
//	    [layers] package (named arrays, colour maps, ranges)
//	         ↓
//	    [render] package (scene → rendered views)
//	         ↓
//	    [colorbar] package (one bar per colorbar-enabled layer)
//	         ↓
//	    PNG/SVG/PDF/EPS output
//
// # Quick Start
//
//	lh := surface.NewPointSet(datasets.HemisphereVertices)
//	rh := surface.NewPointSet(datasets.HemisphereVertices)
//	p, _ := plot.New(plot.Surfaces{
//	    Left:  surface.Loaded{Mesh: lh},
//	    Right: surface.Loaded{Mesh: rh},
//	}, plot.WithLayout(layout.Grid))
//
//	maps, _ := datasets.LoadExampleData(datasets.DefaultMode, false)
//	p.AddLayer(layers.Loaded(scalars.DataArrays(maps)), layers.WithColorMap("magma"))
//
//	fig, _ := p.Build(ctx, render.NewPreview())
//	fig.Save("figure.png")
//
// # Main Packages
//
// [surface] - Meshes, hemispheres and views, with an OBJ reader and a
// registry of mesh readers by file extension.
//
// [scalars] - Flat per-vertex arrays from slices, text files or gonum
// matrices.
//
// [layout] - The grid, row and column arrangements of hemisphere views.
//
// [layers] - The layer registry: data split across hemispheres, colour
// ranges, outlines and colorbar bookkeeping.
//
// [colormap] - Named colour maps, reversible with an "_r" suffix.
//
// [colorbar] - Colorbar placement and drawing with gonum/plot.
//
// [plot] - The figure: layout plus layers plus the build step.
//
// [render] - The scene handed to a renderer, the built-in preview
// renderer, the JSON scene encoder and output formats.
//
// [config] - TOML and YAML figure files.
//
// [cache] - Content-addressed figure cache.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/plot/...      # Specific package
//	go test -run Example ./...  # Examples only
package pkg
