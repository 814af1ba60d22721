// Package render describes what a mesh renderer must draw and provides
// the renderers that ship with surfplot.
//
// # Overview
//
// A [Scene] is the complete, renderer-ready description of a surface
// figure: the hemisphere meshes with their layer arrays attached, the
// computed cell layout, the per-cell layer stacks (array names, colour
// maps and colour ranges), and global settings such as background, zoom
// and size. Any [Renderer] turns a Scene into a [Rendering] that can be
// exported to a raster image or saved to a file.
//
// # Renderers
//
// Real 3-D mesh rendering is delegated to an external renderer that
// implements [Renderer]. Two implementations are provided:
//
//   - [Preview]: draws a schematic tile per cell, filled with the colour
//     of each layer's median value, for checking layouts and colour
//     ranges without a mesh renderer
//   - [EncodeScene]: exports the Scene as JSON for an out-of-process
//     renderer
//
// # Formats
//
// [WriteFormatted] writes any drawing to png, jpg, tiff, svg, pdf or eps
// using gonum/plot's formatted canvases.
package render
