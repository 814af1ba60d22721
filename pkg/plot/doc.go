// Package plot assembles surface figures.
//
// A [Plot] owns the hemisphere meshes, the computed [layout.Layout] and
// the [layers.Registry]. It does not rasterise surfaces itself: [Plot.Scene]
// describes what to draw and a [render.Renderer] turns that description
// into an image. [Plot.Build] then composes the rendered image and the
// colorbars on a figure canvas that can be written to any vector or
// raster format.
//
// # Usage
//
//	p, err := plot.New(plot.Surfaces{Left: surface.Path("lh.obj"), Right: surface.Path("rh.obj")},
//	    plot.WithLayout(layout.Grid),
//	    plot.WithViews(surface.Lateral, surface.Medial),
//	)
//	if err != nil {
//	    return err
//	}
//	if _, err := p.AddLayer(layers.File("lh.rh.tsv.gz"), layers.WithColorMap("magma")); err != nil {
//	    return err
//	}
//	fig, err := p.Build(ctx, render.NewPreview())
//	if err != nil {
//	    return err
//	}
//	return fig.Save("figure.png")
//
// Every plot starts with a backdrop layer at index 0: a constant sheet at
// the configured brightness drawn with Greys_r, without a colorbar.
// Layers added by the caller are therefore numbered from 1.
package plot
