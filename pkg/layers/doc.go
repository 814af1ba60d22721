// Package layers implements the ordered registry of per-vertex overlays.
//
// # Overview
//
// Each call to [Registry.Add] appends one [Layer]: a per-hemisphere
// scalar array plus the colour map, colour range and colorbar settings
// used to draw it. Layers are append-only; insertion order fixes both the
// render stacking order and the colorbar order.
//
// # Data
//
// Layer data is a [Data] value:
//
//   - [Vertices]: one flat array covering every present hemisphere,
//     left then right, split by vertex count
//   - [ByHemisphere]: one array per hemisphere, keyed by hemisphere
//
// Hemispheres that are present in the figure but not supplied receive
// an all-NaN array, so every mesh carries a field for every layer.
//
// # Side Effects
//
// Add attaches each array to its hemisphere mesh under the layer name
// (the stringified index) so mesh renderers can look it up. The registry
// keeps its own copies; the mesh arrays are never read back.
package layers
