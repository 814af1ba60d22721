package colorbar

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/surfplot/surfplot/pkg/colormap"
	"github.com/surfplot/surfplot/pkg/layers"
)

// labelPad separates a side label from the bar.
const labelPad = 4

// DrawAll draws the colorbars of ls into c, carving them out of parent,
// and returns the remaining parent area for the surface image.
func DrawAll(c draw.Canvas, parent vg.Rectangle, ls []layers.Layer, o Options) (vg.Rectangle, error) {
	if err := o.Validate(); err != nil {
		return parent, err
	}
	bars := Plan(ls, o)
	rects, rest := Arrange(parent, bars, len(ls), o)
	for i, b := range bars {
		if err := Draw(c, b, rects[i], o); err != nil {
			return rest, err
		}
	}
	return rest, nil
}

// Draw renders one colorbar so that its colour strip fills rect exactly.
// Tick marks and labels are drawn outside rect.
func Draw(c draw.Canvas, b Bar, rect vg.Rectangle, o Options) error {
	cm, err := colormap.Get(b.ColorMap, b.Range.Min, b.Range.Max)
	if err != nil {
		return err
	}

	p := plot.New()
	p.BackgroundColor = color.Transparent
	vertical := o.Location.Vertical()
	p.Add(&plotter.ColorBar{ColorMap: cm, Vertical: vertical})

	axis := &p.X
	if vertical {
		p.HideX()
		axis = &p.Y
	} else {
		p.HideY()
	}
	axis.Padding = 0
	axis.Tick.Label.Font.Size = vg.Points(o.FontSize)
	axis.Tick.Marker = plot.ConstantTicks(ticks(b, o))
	if !o.DrawBorder {
		axis.Tick.Length = 0
		axis.LineStyle.Width = 0
	}

	area := draw.Canvas{Canvas: c.Canvas, Rectangle: rect}
	da := p.DataCanvas(area)
	outer := vg.Rectangle{
		Min: vg.Point{X: rect.Min.X - (da.Min.X - rect.Min.X), Y: rect.Min.Y - (da.Min.Y - rect.Min.Y)},
		Max: vg.Point{X: rect.Max.X + (rect.Max.X - da.Max.X), Y: rect.Max.Y + (rect.Max.Y - da.Max.Y)},
	}
	p.Draw(draw.Canvas{Canvas: c.Canvas, Rectangle: outer})

	if o.DrawBorder {
		c.StrokeLines(draw.LineStyle{Color: color.Black, Width: vg.Points(0.8)}, []vg.Point{
			rect.Min,
			{X: rect.Max.X, Y: rect.Min.Y},
			rect.Max,
			{X: rect.Min.X, Y: rect.Max.Y},
			rect.Min,
		})
	}

	if b.Label != "" {
		pl, err := LabelPlacement(o.Location, o.LabelDirection)
		if err != nil {
			return err
		}
		drawLabel(c, b.Label, rect, pl, o.FontSize)
	}
	return nil
}

func ticks(b Bar, o Options) []plot.Tick {
	values := Ticks(b.Range, o.NTicks)
	labels := TickLabels(values, o.Decimals)
	out := make([]plot.Tick, len(values))
	for i, v := range values {
		out[i] = plot.Tick{Value: v}
		if b.TickLabels {
			out[i].Label = labels[i]
		}
	}
	return out
}

func drawLabel(c draw.Canvas, label string, rect vg.Rectangle, pl Placement, size float64) {
	fnt := plot.DefaultFont
	fnt.Size = vg.Points(size)
	sty := text.Style{
		Color:    color.Black,
		Font:     fnt,
		Handler:  plot.DefaultTextHandler,
		Rotation: pl.Rotation * math.Pi / 180,
	}

	var pt vg.Point
	if pl.Beside {
		pt = vg.Point{X: rect.Min.X - vg.Points(labelPad), Y: (rect.Min.Y + rect.Max.Y) / 2}
	} else {
		pt = vg.Point{X: (rect.Min.X + rect.Max.X) / 2, Y: rect.Max.Y + vg.Points(pl.Pad)}
	}

	// Alignments are given for the rotated box; gonum aligns in the
	// text's own frame.
	switch {
	case pl.Beside:
		sty.XAlign, sty.YAlign = text.XRight, text.YCenter
	case pl.Rotation == 90:
		sty.XAlign, sty.YAlign = text.XLeft, text.YCenter
	case pl.HAlign == AlignCenter:
		sty.XAlign, sty.YAlign = text.XCenter, text.YBottom
	default:
		sty.XAlign, sty.YAlign = text.XLeft, text.YBottom
	}
	c.FillText(sty, pt, label)
}
