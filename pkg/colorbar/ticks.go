package colorbar

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/surfplot/surfplot/pkg/layers"
)

// Ticks returns n evenly spaced values from r.Min to r.Max inclusive.
func Ticks(r layers.Range, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{r.Min}
	}
	return floats.Span(make([]float64, n), r.Min, r.Max)
}

// TickLabels formats tick values. With decimals > 0 values are rounded
// half-to-even to that many places; otherwise they are truncated to
// integers.
func TickLabels(ticks []float64, decimals int) []string {
	out := make([]string, len(ticks))
	for i, v := range ticks {
		if decimals > 0 {
			out[i] = formatRounded(v, decimals)
		} else {
			out[i] = strconv.FormatInt(int64(v), 10)
		}
	}
	return out
}

func formatRounded(v float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	r := math.RoundToEven(v*scale) / scale
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
