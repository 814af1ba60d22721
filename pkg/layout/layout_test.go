package layout

import (
	"reflect"
	"testing"

	"github.com/surfplot/surfplot/pkg/errors"
	"github.com/surfplot/surfplot/pkg/surface"
)

const (
	lat = surface.Lateral
	med = surface.Medial
	ven = surface.Ventral
	dor = surface.Dorsal
	ant = surface.Anterior
	pos = surface.Posterior
	L   = surface.Left
	R   = surface.Right
)

type hemis struct{ left, right bool }

var (
	both      = hemis{true, true}
	leftOnly  = hemis{true, false}
	rightOnly = hemis{false, true}
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		hemis     hemis
		mode      Mode
		views     []surface.View
		wantViews [][]surface.View
		wantHemis [][]surface.Hemisphere
		wantFlat  bool
		wantShape []int
	}{
		{
			name:      "grid both hemispheres",
			hemis:     both,
			mode:      Grid,
			views:     []surface.View{lat, med},
			wantViews: [][]surface.View{{lat, med}, {med, lat}},
			wantHemis: [][]surface.Hemisphere{{L, R}, {L, R}},
			wantShape: []int{2, 2},
		},
		{
			name:      "grid three views",
			hemis:     both,
			mode:      Grid,
			views:     []surface.View{lat, dor, med},
			wantViews: [][]surface.View{{lat, med}, {dor, dor}, {med, lat}},
			wantHemis: [][]surface.Hemisphere{{L, R}, {L, R}, {L, R}},
			wantShape: []int{3, 2},
		},
		{
			name:      "row single view",
			hemis:     leftOnly,
			mode:      Row,
			views:     []surface.View{lat},
			wantViews: [][]surface.View{{lat}},
			wantHemis: [][]surface.Hemisphere{{L}},
			wantFlat:  true,
			wantShape: []int{1},
		},
		{
			name:      "grid left only collapses",
			hemis:     leftOnly,
			mode:      Grid,
			views:     []surface.View{lat, med, ven},
			wantViews: [][]surface.View{{lat, med, ven}},
			wantHemis: [][]surface.Hemisphere{{L, L, L}},
			wantFlat:  true,
			wantShape: []int{3},
		},
		{
			name:      "grid right only collapses swapped",
			hemis:     rightOnly,
			mode:      Grid,
			views:     []surface.View{lat, med, ant},
			wantViews: [][]surface.View{{med, lat, ant}},
			wantHemis: [][]surface.Hemisphere{{R, R, R}},
			wantFlat:  true,
			wantShape: []int{3},
		},
		{
			name:      "grid single view collapses",
			hemis:     both,
			mode:      Grid,
			views:     []surface.View{lat},
			wantViews: [][]surface.View{{lat, med}},
			wantHemis: [][]surface.Hemisphere{{L, R}},
			wantFlat:  true,
			wantShape: []int{2},
		},
		{
			name:      "row both hemispheres",
			hemis:     both,
			mode:      Row,
			views:     []surface.View{lat, med},
			wantViews: [][]surface.View{{lat, med, med, lat}},
			wantHemis: [][]surface.Hemisphere{{L, L, R, R}},
			wantFlat:  true,
			wantShape: []int{4},
		},
		{
			name:      "column both hemispheres",
			hemis:     both,
			mode:      Column,
			views:     []surface.View{lat, med},
			wantViews: [][]surface.View{{lat}, {med}, {med}, {lat}},
			wantHemis: [][]surface.Hemisphere{{L}, {L}, {R}, {R}},
			wantShape: []int{4, 1},
		},
		{
			name:      "column never collapses",
			hemis:     leftOnly,
			mode:      Column,
			views:     []surface.View{pos},
			wantViews: [][]surface.View{{pos}},
			wantHemis: [][]surface.Hemisphere{{L}},
			wantShape: []int{1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Compute(tt.hemis.left, tt.hemis.right, tt.mode, tt.views)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if !reflect.DeepEqual(l.Views, tt.wantViews) {
				t.Errorf("Views = %v, want %v", l.Views, tt.wantViews)
			}
			if !reflect.DeepEqual(l.Hemispheres, tt.wantHemis) {
				t.Errorf("Hemispheres = %v, want %v", l.Hemispheres, tt.wantHemis)
			}
			if l.Flat != tt.wantFlat {
				t.Errorf("Flat = %v, want %v", l.Flat, tt.wantFlat)
			}
			if !reflect.DeepEqual(l.Shape(), tt.wantShape) {
				t.Errorf("Shape() = %v, want %v", l.Shape(), tt.wantShape)
			}
		})
	}
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name  string
		hemis hemis
		mode  Mode
		views []surface.View
		code  errors.Code
	}{
		{"no hemispheres", hemis{}, Grid, DefaultViews, errors.ErrCodeConfiguration},
		{"bad mode", both, Mode("diagonal"), DefaultViews, errors.ErrCodeInvalidLayout},
		{"bad view", both, Grid, []surface.View{lat, "superior"}, errors.ErrCodeInvalidView},
		{"empty views", both, Grid, nil, errors.ErrCodeInvalidView},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.hemis.left, tt.hemis.right, tt.mode, tt.views)
			if !errors.Is(err, tt.code) {
				t.Errorf("Compute() error = %v, want %s", err, tt.code)
			}
		})
	}
}

// allCombinations enumerates hemisphere presence, modes, and a spread of
// view lists.
func allCombinations() []struct {
	hemis hemis
	mode  Mode
	views []surface.View
} {
	viewLists := [][]surface.View{
		{lat},
		{med},
		{lat, med},
		{dor, ven},
		{lat, med, ven, dor, ant, pos},
		{pos, lat},
	}
	var out []struct {
		hemis hemis
		mode  Mode
		views []surface.View
	}
	for _, h := range []hemis{both, leftOnly, rightOnly} {
		for _, m := range Modes {
			for _, vs := range viewLists {
				out = append(out, struct {
					hemis hemis
					mode  Mode
					views []surface.View
				}{h, m, vs})
			}
		}
	}
	return out
}

func TestComputeInvariants(t *testing.T) {
	for _, c := range allCombinations() {
		l, err := Compute(c.hemis.left, c.hemis.right, c.mode, c.views)
		if err != nil {
			t.Fatalf("Compute(%v, %v, %v): %v", c.hemis, c.mode, c.views, err)
		}

		if len(l.Views) != len(l.Hemispheres) {
			t.Fatalf("row count mismatch: %d vs %d", len(l.Views), len(l.Hemispheres))
		}
		for r := range l.Views {
			if len(l.Views[r]) != len(l.Hemispheres[r]) {
				t.Errorf("%v %v %v: row %d shape mismatch", c.hemis, c.mode, c.views, r)
			}
		}

		seen := make(map[Cell]bool)
		for _, cell := range l.Cells() {
			key := Cell{View: cell.View, Hemisphere: cell.Hemisphere}
			if seen[key] {
				t.Errorf("%v %v %v: duplicate cell %v/%v", c.hemis, c.mode, c.views, cell.View, cell.Hemisphere)
			}
			seen[key] = true
		}

		nHemi := 0
		if c.hemis.left {
			nHemi++
		}
		if c.hemis.right {
			nHemi++
		}
		if l.Len() != nHemi*len(c.views) {
			t.Errorf("%v %v %v: Len() = %d, want %d", c.hemis, c.mode, c.views, l.Len(), nHemi*len(c.views))
		}
		if c.mode == Column && (l.Flat || l.Cols() != 1) {
			t.Errorf("%v %v: column layout collapsed to shape %v", c.hemis, c.views, l.Shape())
		}
	}
}

func TestFlip(t *testing.T) {
	tests := []struct {
		name      string
		hemis     hemis
		mode      Mode
		views     []surface.View
		wantViews [][]surface.View
		wantHemis [][]surface.Hemisphere
	}{
		{
			name:      "grid mirrors columns",
			hemis:     both,
			mode:      Grid,
			views:     []surface.View{lat, med},
			wantViews: [][]surface.View{{med, lat}, {lat, med}},
			wantHemis: [][]surface.Hemisphere{{R, L}, {R, L}},
		},
		{
			name:      "flat sequence reverses",
			hemis:     both,
			mode:      Row,
			views:     []surface.View{lat, dor},
			wantViews: [][]surface.View{{dor, med, dor, lat}},
			wantHemis: [][]surface.Hemisphere{{R, R, L, L}},
		},
		{
			name:      "single cell is a no-op",
			hemis:     leftOnly,
			mode:      Row,
			views:     []surface.View{lat},
			wantViews: [][]surface.View{{lat}},
			wantHemis: [][]surface.Hemisphere{{L}},
		},
		{
			name:      "column is a no-op",
			hemis:     both,
			mode:      Column,
			views:     []surface.View{lat},
			wantViews: [][]surface.View{{lat}, {med}},
			wantHemis: [][]surface.Hemisphere{{L}, {R}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Compute(tt.hemis.left, tt.hemis.right, tt.mode, tt.views)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			f := l.Flip()
			if !reflect.DeepEqual(f.Views, tt.wantViews) {
				t.Errorf("Flip().Views = %v, want %v", f.Views, tt.wantViews)
			}
			if !reflect.DeepEqual(f.Hemispheres, tt.wantHemis) {
				t.Errorf("Flip().Hemispheres = %v, want %v", f.Hemispheres, tt.wantHemis)
			}
		})
	}
}

func TestFlipIsInvolution(t *testing.T) {
	for _, c := range allCombinations() {
		l, err := Compute(c.hemis.left, c.hemis.right, c.mode, c.views)
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}
		twice := l.Flip().Flip()
		if !reflect.DeepEqual(twice, l) {
			t.Errorf("%v %v %v: Flip().Flip() = %+v, want %+v", c.hemis, c.mode, c.views, twice, l)
		}
	}
}

func TestFlipDoesNotMutate(t *testing.T) {
	l, err := Compute(true, true, Grid, DefaultViews)
	if err != nil {
		t.Fatal(err)
	}
	_ = l.Flip()
	if l.Hemispheres[0][0] != L {
		t.Errorf("Flip mutated receiver: %v", l.Hemispheres)
	}
}

func TestParseMode(t *testing.T) {
	for _, in := range []string{"grid", "Row", " column "} {
		if _, err := ParseMode(in); err != nil {
			t.Errorf("ParseMode(%q) error = %v", in, err)
		}
	}
	if _, err := ParseMode("stack"); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("ParseMode(stack) error = %v, want INVALID_LAYOUT", err)
	}
}

func TestStringGrids(t *testing.T) {
	l, err := Compute(true, false, Row, []surface.View{lat})
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := l.ViewGrid().([]string); !ok || !reflect.DeepEqual(got, []string{"lateral"}) {
		t.Errorf("ViewGrid() = %#v", l.ViewGrid())
	}

	l, err = Compute(true, true, Grid, DefaultViews)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"left", "right"}, {"left", "right"}}
	if got, ok := l.HemisphereGrid().([][]string); !ok || !reflect.DeepEqual(got, want) {
		t.Errorf("HemisphereGrid() = %#v, want %v", l.HemisphereGrid(), want)
	}
}
