package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/surfplot/surfplot/pkg/colormap"
	"github.com/surfplot/surfplot/pkg/errors"
	"github.com/surfplot/surfplot/pkg/surface"
)

// PreviewOption configures a [Preview] renderer.
type PreviewOption func(*Preview)

// Preview is a [Renderer] that draws each cell as a flat hemisphere
// silhouette coloured by the median of every layer, with one swatch per
// layer underneath. It needs no geometry, only the layer arrays.
type Preview struct {
	fontSize   float64
	cellLabels bool
}

// WithPreviewFontSize sets the label font size in points at scale 1.
func WithPreviewFontSize(size float64) PreviewOption {
	return func(p *Preview) { p.fontSize = size }
}

// WithoutCellLabels hides the "hemisphere view" caption of each cell.
func WithoutCellLabels() PreviewOption { return func(p *Preview) { p.cellLabels = false } }

// NewPreview creates a preview renderer.
func NewPreview(opts ...PreviewOption) *Preview {
	p := &Preview{fontSize: 9, cellLabels: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type previewCell struct {
	row, col int
	view     surface.View
	hemi     surface.Hemisphere
	swatches []color.Color // nil entries are fully transparent layers
}

type previewRendering struct {
	scene      Scene
	cells      []previewCell
	rows, cols int
	fontSize   float64
	cellLabels bool
}

// Render resolves the colour of every layer in every cell.
func (p *Preview) Render(ctx context.Context, s Scene) (Rendering, error) {
	if s.Size[0] <= 0 || s.Size[1] <= 0 {
		return nil, errors.New(errors.ErrCodeConfiguration, "render size must be positive, got %v", s.Size)
	}
	out := &previewRendering{
		scene:      s,
		rows:       s.Layout.Rows(),
		cols:       s.Layout.Cols(),
		fontSize:   p.fontSize,
		cellLabels: p.cellLabels,
	}

	for _, cell := range s.Layout.Cells() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mesh, ok := s.Surfaces[cell.Hemisphere]
		if !ok || mesh == nil {
			return nil, errors.New(errors.ErrCodeConfiguration, "no %s surface for cell (%d, %d)", cell.Hemisphere, cell.Row, cell.Col)
		}
		names, cmaps, ranges := s.StackAt(cell.Row, cell.Col)
		if len(cmaps) != len(names) || len(ranges) != len(names) {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"layer stack mismatch: %d names, %d colour maps, %d ranges", len(names), len(cmaps), len(ranges))
		}

		pc := previewCell{row: cell.Row, col: cell.Col, view: cell.View, hemi: cell.Hemisphere}
		for k, name := range names {
			values, ok := mesh.PointArray(name)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "%s surface has no array %q", cell.Hemisphere, name)
			}
			cm, err := colormap.Get(cmaps[k], ranges[k].Min, ranges[k].Max)
			if err != nil {
				return nil, err
			}
			var c color.Color
			if m, ok := median(values); ok {
				c = colormap.Color(cm, m)
			}
			pc.swatches = append(pc.swatches, c)
		}
		out.cells = append(out.cells, pc)
	}
	return out, nil
}

// median returns the median of the non-NaN values.
func median(values []float64) (float64, bool) {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, false
	}
	sort.Float64s(finite)
	return stat.Quantile(0.5, stat.Empirical, finite, nil), true
}

func (r *previewRendering) size(scale [2]float64) (vg.Length, vg.Length, error) {
	if !(scale[0] > 0) || !(scale[1] > 0) {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", scale)
	}
	return vg.Length(float64(r.scene.Size[0]) * scale[0]), vg.Length(float64(r.scene.Size[1]) * scale[1]), nil
}

// Image draws the preview at one point per pixel on a transparent
// background.
func (r *previewRendering) Image(scale [2]float64) (image.Image, error) {
	w, h, err := r.size(scale)
	if err != nil {
		return nil, err
	}
	c := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(72),
		vgimg.UseBackgroundColor(color.Transparent),
	)
	r.draw(draw.New(c), math.Min(scale[0], scale[1]), false)
	return c.Image(), nil
}

// Save writes the preview at scale 1 with the scene background.
func (r *previewRendering) Save(path string) error {
	w, h, err := r.size([2]float64{1, 1})
	if err != nil {
		return err
	}
	return SaveFormatted(path, w, h, func(c draw.Canvas) error {
		r.draw(c, 1, true)
		return nil
	})
}

func (r *previewRendering) draw(c draw.Canvas, scale float64, background bool) {
	if background {
		c.SetColor(r.scene.Background.Color())
		c.Fill(c.Rectangle.Path())
	}

	fnt := plot.DefaultFont
	fnt.Size = vg.Points(r.fontSize * scale)
	sty := text.Style{Color: color.Black, Font: fnt, Handler: plot.DefaultTextHandler}

	inner := r.drawLabelText(c, sty)
	pad := vg.Points(4 * scale)
	tiles := draw.Tiles{Rows: r.rows, Cols: r.cols, PadX: pad, PadY: pad, PadTop: pad, PadBottom: pad, PadLeft: pad, PadRight: pad}

	for _, cell := range r.cells {
		tc := tiles.At(inner, cell.col, cell.row)
		r.drawCell(tc, cell, sty, scale)
	}
}

// drawLabelText draws the row/column captions at the requested edges and
// returns the area left for the cells.
func (r *previewRendering) drawLabelText(c draw.Canvas, sty text.Style) draw.Canvas {
	if len(r.scene.LabelText) == 0 {
		return c
	}
	margin := sty.Height("M") * 2
	inner := c
	if len(r.scene.LabelText["left"]) > 0 {
		inner.Min.X += margin
	}
	if len(r.scene.LabelText["right"]) > 0 {
		inner.Max.X -= margin
	}
	if len(r.scene.LabelText["top"]) > 0 {
		inner.Max.Y -= margin
	}
	if len(r.scene.LabelText["bottom"]) > 0 {
		inner.Min.Y += margin
	}

	rowH := inner.Size().Y / vg.Length(max(r.rows, 1))
	colW := inner.Size().X / vg.Length(max(r.cols, 1))
	vsty := sty
	vsty.Rotation = math.Pi / 2
	vsty.XAlign, vsty.YAlign = text.XCenter, text.YCenter
	hsty := sty
	hsty.XAlign, hsty.YAlign = text.XCenter, text.YCenter

	for i, label := range r.scene.LabelText["left"] {
		if i < r.rows {
			c.FillText(vsty, vg.Point{X: c.Min.X + margin/2, Y: inner.Max.Y - rowH*(vg.Length(i)+0.5)}, label)
		}
	}
	for i, label := range r.scene.LabelText["right"] {
		if i < r.rows {
			c.FillText(vsty, vg.Point{X: c.Max.X - margin/2, Y: inner.Max.Y - rowH*(vg.Length(i)+0.5)}, label)
		}
	}
	for i, label := range r.scene.LabelText["top"] {
		if i < r.cols {
			c.FillText(hsty, vg.Point{X: inner.Min.X + colW*(vg.Length(i)+0.5), Y: c.Max.Y - margin/2}, label)
		}
	}
	for i, label := range r.scene.LabelText["bottom"] {
		if i < r.cols {
			c.FillText(hsty, vg.Point{X: inner.Min.X + colW*(vg.Length(i)+0.5), Y: c.Min.Y + margin/2}, label)
		}
	}
	return inner
}

func (r *previewRendering) drawCell(c draw.Canvas, cell previewCell, sty text.Style, scale float64) {
	w, h := c.Size().X, c.Size().Y
	center := vg.Point{X: c.Min.X + w/2, Y: c.Min.Y + h/2}

	fx, fy := silhouette(cell.view)
	outline := ellipse(center, vg.Length(fx)*w, vg.Length(fy)*h, 64)
	for _, col := range cell.swatches {
		if col == nil {
			continue
		}
		c.FillPolygon(col, outline)
	}
	c.StrokeLines(draw.LineStyle{Color: color.Gray{Y: 96}, Width: vg.Points(0.5 * scale)}, append(outline, outline[0]))

	side := min(w, h) * 0.08
	gap := side / 4
	total := vg.Length(len(cell.swatches))*(side+gap) - gap
	x := center.X - total/2
	y := c.Min.Y + side/2
	for _, col := range cell.swatches {
		sq := []vg.Point{{X: x, Y: y}, {X: x + side, Y: y}, {X: x + side, Y: y + side}, {X: x, Y: y + side}}
		if col != nil {
			c.FillPolygon(col, sq)
		}
		c.StrokeLines(draw.LineStyle{Color: color.Gray{Y: 160}, Width: vg.Points(0.3 * scale)}, append(sq, sq[0]))
		x += side + gap
	}

	if r.cellLabels {
		top := sty
		top.XAlign, top.YAlign = text.XCenter, text.YTop
		c.FillText(top, vg.Point{X: center.X, Y: c.Max.Y}, fmt.Sprintf("%s %s", cell.hemi, cell.view))
	}
}

// silhouette returns the half-axes of a hemisphere outline seen from v,
// as fractions of the cell size.
func silhouette(v surface.View) (float64, float64) {
	switch v {
	case surface.Lateral, surface.Medial:
		return .45, .3
	case surface.Dorsal, surface.Ventral:
		return .25, .4
	default:
		return .3, .35
	}
}

func ellipse(c vg.Point, rx, ry vg.Length, n int) []vg.Point {
	pts := make([]vg.Point, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vg.Point{X: c.X + rx*vg.Length(math.Cos(t)), Y: c.Y + ry*vg.Length(math.Sin(t))}
	}
	return pts
}
