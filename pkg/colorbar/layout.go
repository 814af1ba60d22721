package colorbar

import (
	"gonum.org/v1/plot/vg"

	"github.com/surfplot/surfplot/pkg/layers"
)

// FirstPad is the gap used for layer 0's colorbar. Every later layer
// uses [Options.Pad].
const FirstPad = .01

// Bar is one colorbar to draw.
type Bar struct {
	Index      int
	ColorMap   string
	Range      layers.Range
	Label      string
	TickLabels bool
}

// Plan returns the colorbars for ls in draw order: visible layers,
// last-added first. With OuterLabelsOnly, only the last-added bar keeps
// its tick labels.
func Plan(ls []layers.Layer, o Options) []Bar {
	var bars []Bar
	for i := len(ls) - 1; i >= 0; i-- {
		l := ls[i]
		if !l.ShowColorbar {
			continue
		}
		bars = append(bars, Bar{
			Index:      l.Index,
			ColorMap:   l.ColorMap,
			Range:      l.Range,
			Label:      l.Label,
			TickLabels: !o.OuterLabelsOnly || len(bars) == 0,
		})
	}
	return bars
}

// Pads returns the per-layer gap fractions for n layers.
func Pads(n int, pad float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	out[0] = FirstPad
	for i := 1; i < n; i++ {
		out[i] = pad
	}
	return out
}

// Arrange carves one slot per bar from parent, in order, and returns
// the bar rectangles and what is left of parent. nLayers is the total
// number of layers, used to size the pad table.
func Arrange(parent vg.Rectangle, bars []Bar, nLayers int, o Options) ([]vg.Rectangle, vg.Rectangle) {
	pads := Pads(nLayers, o.Pad)
	rects := make([]vg.Rectangle, 0, len(bars))
	for _, b := range bars {
		pad := o.Pad
		if b.Index >= 0 && b.Index < len(pads) {
			pad = pads[b.Index]
		}
		var slot vg.Rectangle
		slot, parent = split(parent, o.Location, o.Fraction, pad)
		rects = append(rects, fitBar(slot, o))
	}
	return rects, parent
}

// split divides r into a colorbar slot of the given fraction at edge
// loc, a gap of pad, and the remaining parent area.
func split(r vg.Rectangle, loc Location, fraction, pad float64) (slot, rest vg.Rectangle) {
	w, h := r.Size().X, r.Size().Y
	slot, rest = r, r
	switch loc {
	case Bottom:
		slot.Max.Y = r.Min.Y + vg.Length(fraction)*h
		rest.Min.Y = r.Min.Y + vg.Length(fraction+pad)*h
	case Top:
		slot.Min.Y = r.Min.Y + vg.Length(1-fraction)*h
		rest.Max.Y = r.Min.Y + vg.Length(1-fraction-pad)*h
	case Left:
		slot.Max.X = r.Min.X + vg.Length(fraction)*w
		rest.Min.X = r.Min.X + vg.Length(fraction+pad)*w
	case Right:
		slot.Min.X = r.Min.X + vg.Length(1-fraction)*w
		rest.Max.X = r.Min.X + vg.Length(1-fraction-pad)*w
	}
	return slot, rest
}

// fitBar shrinks slot along its long side and applies the aspect ratio,
// anchoring the bar against the parent side of the slot.
func fitBar(slot vg.Rectangle, o Options) vg.Rectangle {
	w, h := slot.Size().X, slot.Size().Y
	if o.Location.Vertical() {
		length := vg.Length(o.Shrink) * h
		if max := w * vg.Length(o.Aspect); length > max {
			length = max
		}
		thick := length / vg.Length(o.Aspect)
		ax := 0.0
		if o.Location == Left {
			ax = 1
		}
		return place(slot, thick, length, ax, .5)
	}
	length := vg.Length(o.Shrink) * w
	if max := h * vg.Length(o.Aspect); length > max {
		length = max
	}
	thick := length / vg.Length(o.Aspect)
	ay := 0.0
	if o.Location == Bottom {
		ay = 1
	}
	return place(slot, length, thick, .5, ay)
}

// place positions a w×h box inside r; (ax, ay) are the fractional anchor
// of the box within the free space.
func place(r vg.Rectangle, w, h vg.Length, ax, ay float64) vg.Rectangle {
	x := r.Min.X + vg.Length(ax)*(r.Size().X-w)
	y := r.Min.Y + vg.Length(ay)*(r.Size().Y-h)
	return vg.Rectangle{Min: vg.Point{X: x, Y: y}, Max: vg.Point{X: x + w, Y: y + h}}
}

// FitImage returns the largest rectangle with the image's aspect ratio
// inside r. The image hugs the edge colorbars are attached to; with a
// nil loc it is centred.
func FitImage(r vg.Rectangle, imgW, imgH int, loc *Location) vg.Rectangle {
	if imgW <= 0 || imgH <= 0 {
		return r
	}
	w, h := r.Size().X, r.Size().Y
	scale := w / vg.Length(imgW)
	if s := h / vg.Length(imgH); s < scale {
		scale = s
	}
	fw, fh := vg.Length(imgW)*scale, vg.Length(imgH)*scale

	ax, ay := .5, .5
	if loc != nil {
		switch *loc {
		case Bottom:
			ay = 0
		case Top:
			ay = 1
		case Left:
			ax = 0
		case Right:
			ax = 1
		}
	}
	return place(r, fw, fh, ax, ay)
}
