package surface

import (
	"strings"

	"github.com/surfplot/surfplot/pkg/errors"
)

// View is a camera-angle tag used to render a hemisphere.
type View string

const (
	Lateral   View = "lateral"
	Medial    View = "medial"
	Ventral   View = "ventral"
	Dorsal    View = "dorsal"
	Anterior  View = "anterior"
	Posterior View = "posterior"
)

// Views lists every recognized view.
var Views = []View{Lateral, Medial, Ventral, Dorsal, Anterior, Posterior}

// Valid reports whether v is one of the recognized views.
func (v View) Valid() bool {
	switch v {
	case Lateral, Medial, Ventral, Dorsal, Anterior, Posterior:
		return true
	}
	return false
}

func (v View) String() string { return string(v) }

// Swap exchanges lateral and medial. All other views are fixed points,
// so Swap is an involution.
func (v View) Swap() View {
	switch v {
	case Lateral:
		return Medial
	case Medial:
		return Lateral
	}
	return v
}

// ParseView parses a single view tag.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", errors.New(errors.ErrCodeInvalidView,
			"invalid view %q (must be one of lateral, medial, ventral, dorsal, anterior, posterior)", s)
	}
	return v, nil
}

// ParseViews parses a list of view tags, preserving order.
func ParseViews(ss []string) ([]View, error) {
	out := make([]View, 0, len(ss))
	for _, s := range ss {
		v, err := ParseView(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
