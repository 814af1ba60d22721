// Package colorbar lays out and draws the colorbars of a surface figure.
//
// Colorbars are drawn for every layer that asks for one, last-added
// first. Each bar carves a slot from the edge of the parent area (the
// region that will hold the rendered surfaces), so the first bar drawn
// ends up outermost and the parent shrinks toward the centre with every
// bar. The geometry follows the usual fraction/pad/shrink/aspect model of
// plotting libraries.
package colorbar

import (
	"strings"

	"github.com/surfplot/surfplot/pkg/errors"
)

// Location is the figure edge colorbars are attached to.
type Location string

const (
	Bottom Location = "bottom"
	Top    Location = "top"
	Left   Location = "left"
	Right  Location = "right"
)

// Vertical reports whether bars at l run vertically.
func (l Location) Vertical() bool { return l == Left || l == Right }

// Valid reports whether l is one of the four edges.
func (l Location) Valid() bool {
	switch l {
	case Bottom, Top, Left, Right:
		return true
	}
	return false
}

// ParseLocation parses an edge name.
func ParseLocation(s string) (Location, error) {
	l := Location(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", errors.New(errors.ErrCodeInvalidLocation,
			"location must be 'top', 'bottom', 'left' or 'right', got %q", s)
	}
	return l, nil
}

// Options controls colorbar appearance and placement. Fractions are
// relative to the current parent area.
type Options struct {
	Location Location `json:"location" toml:"location" yaml:"location"`

	// LabelDirection is the label angle in degrees. Nil picks horizontal
	// for top/bottom bars and vertical for left/right bars.
	LabelDirection *float64 `json:"label_direction,omitempty" toml:"label_direction,omitempty" yaml:"label_direction,omitempty"`

	NTicks          int     `json:"n_ticks" toml:"n_ticks" yaml:"n_ticks"`
	Decimals        int     `json:"decimals" toml:"decimals" yaml:"decimals"`
	FontSize        float64 `json:"fontsize" toml:"fontsize" yaml:"fontsize"`
	DrawBorder      bool    `json:"draw_border" toml:"draw_border" yaml:"draw_border"`
	OuterLabelsOnly bool    `json:"outer_labels_only" toml:"outer_labels_only" yaml:"outer_labels_only"`
	Aspect          float64 `json:"aspect" toml:"aspect" yaml:"aspect"`
	Pad             float64 `json:"pad" toml:"pad" yaml:"pad"`
	Shrink          float64 `json:"shrink" toml:"shrink" yaml:"shrink"`
	Fraction        float64 `json:"fraction" toml:"fraction" yaml:"fraction"`
}

// DefaultOptions returns the default colorbar settings.
func DefaultOptions() Options {
	return Options{
		Location:   Bottom,
		NTicks:     3,
		Decimals:   2,
		FontSize:   10,
		DrawBorder: true,
		Aspect:     20,
		Pad:        .08,
		Shrink:     .3,
		Fraction:   .05,
	}
}

// Validate checks that o describes drawable colorbars.
func (o Options) Validate() error {
	if !o.Location.Valid() {
		return errors.New(errors.ErrCodeInvalidLocation,
			"location must be 'top', 'bottom', 'left' or 'right', got %q", o.Location)
	}
	if o.NTicks < 0 {
		return errors.New(errors.ErrCodeConfiguration, "n_ticks must not be negative, got %d", o.NTicks)
	}
	if err := errors.ValidatePositive("fontsize", o.FontSize); err != nil {
		return err
	}
	if err := errors.ValidatePositive("aspect", o.Aspect); err != nil {
		return err
	}
	if err := errors.ValidateFraction("pad", o.Pad); err != nil {
		return err
	}
	if err := errors.ValidateFraction("shrink", o.Shrink); err != nil {
		return err
	}
	if err := errors.ValidateFraction("fraction", o.Fraction); err != nil {
		return err
	}
	if o.Fraction+o.Pad >= 1 {
		return errors.New(errors.ErrCodeConfiguration,
			"fraction + pad must be below 1, got %v", o.Fraction+o.Pad)
	}
	return nil
}
