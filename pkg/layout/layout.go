package layout

import (
	"slices"
	"strings"

	"github.com/surfplot/surfplot/pkg/errors"
	"github.com/surfplot/surfplot/pkg/surface"
)

// Mode selects how cells are arranged.
type Mode string

const (
	Grid   Mode = "grid"
	Row    Mode = "row"
	Column Mode = "column"
)

// Modes lists every recognized layout mode.
var Modes = []Mode{Grid, Row, Column}

// DefaultViews is the view list used when the caller supplies none.
var DefaultViews = []surface.View{surface.Lateral, surface.Medial}

// Valid reports whether m is a recognized mode.
func (m Mode) Valid() bool {
	return m == Grid || m == Row || m == Column
}

func (m Mode) String() string { return string(m) }

// ParseMode parses a layout mode tag.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", errors.New(errors.ErrCodeInvalidLayout,
			"invalid layout %q (must be one of grid, row, column)", s)
	}
	return m, nil
}

// Layout is the computed arrangement of rendering cells.
//
// Views and Hemispheres always have identical shape. A flat sequence is
// stored as a single row with Flat set.
type Layout struct {
	Mode        Mode
	Views       [][]surface.View
	Hemispheres [][]surface.Hemisphere
	Flat        bool
}

// Compute derives the layout for the present hemispheres, a mode, and an
// ordered list of views.
func Compute(left, right bool, mode Mode, views []surface.View) (Layout, error) {
	if !left && !right {
		return Layout{}, errors.New(errors.ErrCodeConfiguration, "no surfaces are provided")
	}
	if !mode.Valid() {
		return Layout{}, errors.New(errors.ErrCodeInvalidLayout,
			"invalid layout %q (must be one of grid, row, column)", mode)
	}
	if len(views) == 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidView, "at least one view is required")
	}
	for _, v := range views {
		if !v.Valid() {
			return Layout{}, errors.New(errors.ErrCodeInvalidView,
				"invalid view %q (must be one of lateral, medial, ventral, dorsal, anterior, posterior)", v)
		}
	}

	var (
		vs []surface.View
		hs []surface.Hemisphere
	)
	if left {
		for _, v := range views {
			vs = append(vs, v)
			hs = append(hs, surface.Left)
		}
	}
	if right {
		for _, v := range views {
			vs = append(vs, v.Swap())
			hs = append(hs, surface.Right)
		}
	}

	nHemi, nViews := len(vs)/len(views), len(views)
	l := Layout{Mode: mode}

	switch mode {
	case Grid:
		// (nHemi × nViews) transposed: row r, column c is emission c*nViews+r.
		l.Views = make([][]surface.View, nViews)
		l.Hemispheres = make([][]surface.Hemisphere, nViews)
		for r := 0; r < nViews; r++ {
			l.Views[r] = make([]surface.View, nHemi)
			l.Hemispheres[r] = make([]surface.Hemisphere, nHemi)
			for c := 0; c < nHemi; c++ {
				l.Views[r][c] = vs[c*nViews+r]
				l.Hemispheres[r][c] = hs[c*nViews+r]
			}
		}
	case Column:
		l.Views = make([][]surface.View, len(vs))
		l.Hemispheres = make([][]surface.Hemisphere, len(hs))
		for i := range vs {
			l.Views[i] = []surface.View{vs[i]}
			l.Hemispheres[i] = []surface.Hemisphere{hs[i]}
		}
	case Row:
		l.Views = [][]surface.View{vs}
		l.Hemispheres = [][]surface.Hemisphere{hs}
		l.Flat = true
	}

	if (nHemi == 1 || nViews == 1) && mode != Column {
		l = l.flatten()
	}
	return l, nil
}

// flatten ravels the grids row-major into a single flat row.
func (l Layout) flatten() Layout {
	var (
		vs []surface.View
		hs []surface.Hemisphere
	)
	for r := range l.Views {
		vs = append(vs, l.Views[r]...)
		hs = append(hs, l.Hemispheres[r]...)
	}
	return Layout{
		Mode:        l.Mode,
		Views:       [][]surface.View{vs},
		Hemispheres: [][]surface.Hemisphere{hs},
		Flat:        true,
	}
}

// Shape returns [n] for a flat sequence and [rows, cols] for a grid.
func (l Layout) Shape() []int {
	if l.Flat {
		if len(l.Views) == 0 {
			return []int{0}
		}
		return []int{len(l.Views[0])}
	}
	if len(l.Views) == 0 {
		return []int{0, 0}
	}
	return []int{len(l.Views), len(l.Views[0])}
}

// Rows returns the number of cell rows. A flat sequence is one row.
func (l Layout) Rows() int { return len(l.Views) }

// Cols returns the number of cell columns.
func (l Layout) Cols() int {
	if len(l.Views) == 0 {
		return 0
	}
	return len(l.Views[0])
}

// Len returns the number of cells.
func (l Layout) Len() int { return l.Rows() * l.Cols() }

// Flip mirrors the hemisphere axis: the columns of a grid with more than
// one column, or the whole of a flat sequence longer than one. Both
// structures move together. Any other layout is returned unchanged.
func (l Layout) Flip() Layout {
	out := l.clone()
	if l.Cols() < 2 {
		return out
	}
	for r := range out.Views {
		slices.Reverse(out.Views[r])
		slices.Reverse(out.Hemispheres[r])
	}
	return out
}

func (l Layout) clone() Layout {
	out := Layout{Mode: l.Mode, Flat: l.Flat}
	out.Views = make([][]surface.View, len(l.Views))
	out.Hemispheres = make([][]surface.Hemisphere, len(l.Hemispheres))
	for r := range l.Views {
		out.Views[r] = slices.Clone(l.Views[r])
		out.Hemispheres[r] = slices.Clone(l.Hemispheres[r])
	}
	return out
}

// Cell is one rendering position.
type Cell struct {
	Row, Col   int
	View       surface.View
	Hemisphere surface.Hemisphere
}

// Cells returns every cell in row-major order.
func (l Layout) Cells() []Cell {
	out := make([]Cell, 0, l.Len())
	for r := range l.Views {
		for c := range l.Views[r] {
			out = append(out, Cell{Row: r, Col: c, View: l.Views[r][c], Hemisphere: l.Hemispheres[r][c]})
		}
	}
	return out
}

// ViewGrid returns the view structure as nested strings: a flat []string
// for a flat sequence, [][]string for a grid. It is the form consumed by
// mesh renderers and the JSON scene.
func (l Layout) ViewGrid() any {
	if l.Flat {
		return toStrings(l.Views[0])
	}
	out := make([][]string, len(l.Views))
	for r := range l.Views {
		out[r] = toStrings(l.Views[r])
	}
	return out
}

// HemisphereGrid is the hemisphere counterpart of [Layout.ViewGrid].
func (l Layout) HemisphereGrid() any {
	if l.Flat {
		return toStrings(l.Hemispheres[0])
	}
	out := make([][]string, len(l.Hemispheres))
	for r := range l.Hemispheres {
		out[r] = toStrings(l.Hemispheres[r])
	}
	return out
}

func toStrings[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
