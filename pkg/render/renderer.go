package render

import (
	"context"
	"image"
)

// Renderer synthesises images from a scene. Implementations should
// honour ctx cancellation between cells.
type Renderer interface {
	Render(ctx context.Context, scene Scene) (Rendering, error)
}

// Rendering is the result of a render.
type Rendering interface {
	// Image exports the rendering as a raster, scaled from the scene size
	// by (sx, sy). Pixels without surface are transparent.
	Image(scale [2]float64) (image.Image, error)

	// Save writes the rendering to path; the format follows the extension.
	Save(path string) error
}

// RendererFunc adapts a function to [Renderer].
type RendererFunc func(ctx context.Context, scene Scene) (Rendering, error)

// Render calls f.
func (f RendererFunc) Render(ctx context.Context, scene Scene) (Rendering, error) {
	return f(ctx, scene)
}
