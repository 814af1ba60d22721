package surface

import (
	"strings"

	"github.com/surfplot/surfplot/pkg/errors"
)

// Hemisphere identifies one half of a bilateral cortical surface.
type Hemisphere string

const (
	Left  Hemisphere = "left"
	Right Hemisphere = "right"
)

// Hemispheres lists both hemispheres in canonical (left-then-right) order.
var Hemispheres = []Hemisphere{Left, Right}

// Valid reports whether h is one of the two recognized hemispheres.
func (h Hemisphere) Valid() bool {
	return h == Left || h == Right
}

func (h Hemisphere) String() string { return string(h) }

// ParseHemisphere parses a hemisphere tag. "lh" and "rh" are accepted
// as aliases.
func ParseHemisphere(s string) (Hemisphere, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "lh":
		return Left, nil
	case "right", "rh":
		return Right, nil
	}
	return "", errors.New(errors.ErrCodeInvalidKey, "invalid hemisphere %q (must be 'left' or 'right')", s)
}

// Present returns the hemispheres that have a mesh in surfaces, in
// canonical order.
func Present(surfaces map[Hemisphere]Mesh) []Hemisphere {
	out := make([]Hemisphere, 0, 2)
	for _, h := range Hemispheres {
		if m, ok := surfaces[h]; ok && m != nil {
			out = append(out, h)
		}
	}
	return out
}
