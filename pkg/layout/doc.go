// Package layout maps hemispheres and views onto the cells of a figure.
//
// # Overview
//
// A surface figure is a 1-D strip or a 2-D grid of rendering cells. Each
// cell shows one hemisphere from one view. [Compute] derives two parallel
// structures of identical shape: the view to render at each cell and the
// hemisphere that supplies it.
//
// # Emission Order
//
// The left hemisphere contributes the requested views verbatim. The right
// hemisphere contributes the same views with lateral and medial exchanged
// (see [surface.View.Swap]), so that both hemispheres show matching
// anatomy in mirrored screen positions. Left comes first.
//
// # Modes
//
//   - [Grid]: one row per view, one column per hemisphere
//   - [Column]: an N×1 column in emission order, never collapsed
//   - [Row]: a flat sequence in emission order
//
// A grid with a single hemisphere or a single view collapses to a flat
// sequence.
//
// # Mirroring
//
// [Layout.Flip] reverses the hemisphere axis so that the right hemisphere
// appears on the left of the figure. It is an involution.
//
// # Example
//
//	l, err := layout.Compute(true, true, layout.Grid, layout.DefaultViews)
//	// l.Views       = [[lateral medial] [medial lateral]]
//	// l.Hemispheres = [[left right] [left right]]
package layout
