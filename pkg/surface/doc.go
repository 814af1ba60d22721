// Package surface defines the vocabulary shared by every other surfplot
// package: hemisphere and view tags, and the mesh capability that layer
// data is attached to.
//
// # Hemispheres and Views
//
// A figure shows one or both cortical hemispheres ([Left], [Right]) from
// any of six camera angles ([Lateral], [Medial], [Ventral], [Dorsal],
// [Anterior], [Posterior]). Looking at the right hemisphere from the
// brain's right side exchanges what counts as lateral and medial, which
// [View.Swap] expresses.
//
// # Meshes
//
// [Mesh] is the minimal capability the layer registry and the renderers
// need: a vertex count and named per-vertex scalar arrays. [PolyData] is
// the in-memory implementation; [LabelingBorder] derives outline data
// from a labelling using the mesh's edge topology.
//
// # Loading
//
// [Load] resolves a [Source] ([Path] or [Loaded]) into a [Mesh]. Readers
// are registered per file extension with [RegisterReader]; Wavefront OBJ
// is built in. Richer formats (GIFTI, FreeSurfer) are expected to be
// registered by the embedding application.
package surface
