package colorbar

import "github.com/surfplot/surfplot/pkg/errors"

// Horizontal and vertical text anchors.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
	AlignBottom = "bottom"
)

// Placement describes how a colorbar label is positioned. Alignment is
// that of the rotated text's bounding box against its anchor point.
type Placement struct {
	Rotation float64 // degrees
	HAlign   string
	VAlign   string

	// Beside places the label level with the bar, before its start.
	// Otherwise the label sits above the bar like a title, Pad points away.
	Beside bool
	Pad    float64
}

// LabelPlacement returns the label placement for a colorbar at loc.
// rotation, in degrees, may be nil to use the edge's default.
func LabelPlacement(loc Location, rotation *float64) (Placement, error) {
	switch loc {
	case Top, Bottom:
		p := Placement{HAlign: AlignRight, VAlign: AlignCenter, Beside: true}
		if rotation != nil {
			p.Rotation = *rotation
		}
		return p, nil
	case Left, Right:
		p := Placement{Rotation: 90, Pad: 10}
		if rotation != nil {
			p.Rotation = *rotation
		}
		if p.Rotation == 90 || p.Rotation == 0 {
			p.HAlign, p.VAlign = AlignCenter, AlignBottom
		} else {
			p.HAlign, p.VAlign = AlignLeft, AlignBottom
		}
		return p, nil
	}
	return Placement{}, errors.New(errors.ErrCodeInvalidLocation,
		"location must be 'top', 'bottom', 'left' or 'right', got %q", loc)
}
