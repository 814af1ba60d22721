package render

import (
	"encoding/json"
	"math"

	"github.com/surfplot/surfplot/pkg/surface"
)

// JSONOption configures [EncodeScene].
type JSONOption func(*jsonEncoder)

type jsonEncoder struct {
	arrays bool
}

// WithJSONArrays includes every layer array of every mesh in the output.
// NaN values are encoded as null.
func WithJSONArrays() JSONOption { return func(e *jsonEncoder) { e.arrays = true } }

type jsonScene struct {
	Surfaces   map[string]jsonSurface `json:"surfaces"`
	Shape      []int                  `json:"shape"`
	Layout     any                    `json:"layout"`
	View       any                    `json:"view"`
	ArrayName  [][][]string           `json:"array_name"`
	Cmap       [][]string             `json:"cmap"`
	ColorRange [][][2]float64         `json:"color_range"`
	Background RGB                    `json:"background"`
	Zoom       float64                `json:"zoom"`
	NaNColor   RGBA                   `json:"nan_color"`
	Size       [2]int                 `json:"size"`
	LabelText  map[string][]string    `json:"label_text,omitempty"`
}

type jsonSurface struct {
	NPoints int                   `json:"n_points"`
	Arrays  map[string][]*float64 `json:"arrays,omitempty"`
}

// EncodeScene exports the scene as pretty-printed JSON for an external
// renderer. The keys mirror the parameters mesh renderers conventionally
// accept: layout, view, array_name, cmap, color_range and so on.
func EncodeScene(s Scene, opts ...JSONOption) ([]byte, error) {
	var e jsonEncoder
	for _, opt := range opts {
		opt(&e)
	}

	out := jsonScene{
		Surfaces:   make(map[string]jsonSurface, len(s.Surfaces)),
		Shape:      s.Layout.Shape(),
		Layout:     s.Layout.HemisphereGrid(),
		View:       s.Layout.ViewGrid(),
		ArrayName:  s.Names,
		Cmap:       s.ColorMaps,
		ColorRange: make([][][2]float64, len(s.Ranges)),
		Background: s.Background,
		Zoom:       s.Zoom,
		NaNColor:   s.NaNColor,
		Size:       s.Size,
		LabelText:  s.LabelText,
	}
	for i, col := range s.Ranges {
		out.ColorRange[i] = make([][2]float64, len(col))
		for j, r := range col {
			out.ColorRange[i][j] = [2]float64{r.Min, r.Max}
		}
	}

	names, _, _ := s.StackAt(0, 0)
	for _, h := range surface.Present(s.Surfaces) {
		m := s.Surfaces[h]
		js := jsonSurface{NPoints: m.NumPoints()}
		if e.arrays {
			js.Arrays = make(map[string][]*float64, len(names))
			for _, name := range names {
				if values, ok := m.PointArray(name); ok {
					js.Arrays[name] = nullable(values)
				}
			}
		}
		out.Surfaces[string(h)] = js
	}

	return json.MarshalIndent(out, "", "  ")
}

func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if !math.IsNaN(values[i]) {
			v := values[i]
			out[i] = &v
		}
	}
	return out
}
