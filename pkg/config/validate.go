package config

import (
	"slices"

	"github.com/surfplot/surfplot/pkg/colormap"
	"github.com/surfplot/surfplot/pkg/datasets"
	"github.com/surfplot/surfplot/pkg/errors"
	"github.com/surfplot/surfplot/pkg/layout"
	"github.com/surfplot/surfplot/pkg/surface"
)

// Validate checks every section of c.
func (c *Config) Validate() error {
	if err := c.Surfaces.validate(); err != nil {
		return err
	}
	if err := c.Plot.validate(); err != nil {
		return err
	}
	for i, l := range c.Layers {
		if err := l.validate(); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "layer %d", i+1)
		}
	}
	if err := c.Colorbar.Validate(); err != nil {
		return err
	}
	return c.Build.validate()
}

func (s Surfaces) validate() error {
	if s.Left != "" && s.LeftVertices != 0 || s.Right != "" && s.RightVertices != 0 {
		return errors.New(errors.ErrCodeConfiguration, "a surface is either a path or a vertex count, not both")
	}
	if s.LeftVertices < 0 || s.RightVertices < 0 {
		return errors.New(errors.ErrCodeConfiguration, "vertex counts must not be negative")
	}
	if s.Left == "" && s.Right == "" && s.LeftVertices == 0 && s.RightVertices == 0 {
		return errors.New(errors.ErrCodeConfiguration, "no surfaces are provided")
	}
	return nil
}

func (p Plot) validate() error {
	if _, err := layout.ParseMode(p.Layout); err != nil {
		return err
	}
	views, err := surface.ParseViews(p.Views)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		return errors.New(errors.ErrCodeInvalidView, "at least one view is required")
	}
	if len(p.Size) != 2 || p.Size[0] <= 0 || p.Size[1] <= 0 {
		return errors.New(errors.ErrCodeConfiguration, "size must be two positive integers, got %v", p.Size)
	}
	if err := errors.ValidatePositive("zoom", p.Zoom); err != nil {
		return err
	}
	if len(p.Background) != 3 {
		return errors.New(errors.ErrCodeConfiguration, "background must have three components, got %v", p.Background)
	}
	for _, c := range p.Background {
		if err := errors.ValidateFraction("background", c); err != nil {
			return err
		}
	}
	return errors.ValidateFraction("brightness", p.Brightness)
}

func (l Layer) validate() error {
	sources := 0
	if l.Data != "" {
		sources++
	}
	if l.Left != "" || l.Right != "" {
		sources++
	}
	if l.Example != "" {
		sources++
	}
	if sources != 1 {
		return errors.New(errors.ErrCodeInvalidType, "exactly one of data, left/right or example must be set")
	}
	if l.Example != "" && !slices.Contains(datasets.Names(), l.Example) {
		return errors.New(errors.ErrCodeInvalidDataset, "unknown example dataset %q", l.Example)
	}
	if l.MedialWall && l.Data == "" {
		return errors.New(errors.ErrCodeConfiguration, "medial_wall applies to flat data files only")
	}
	if l.ColorMap != "" && !colormap.Known(l.ColorMap) {
		return errors.New(errors.ErrCodeInvalidColorMap, "unknown colour map %q", l.ColorMap)
	}
	if l.Range != nil {
		return errors.ValidateColorRange(l.Range.Min, l.Range.Max)
	}
	return nil
}

func (b Build) validate() error {
	if len(b.FigSize) != 0 {
		if len(b.FigSize) != 2 || !(b.FigSize[0] > 0) || !(b.FigSize[1] > 0) {
			return errors.New(errors.ErrCodeConfiguration, "figsize must be two positive numbers, got %v", b.FigSize)
		}
	}
	if len(b.Scale) != 2 || !(b.Scale[0] > 0) || !(b.Scale[1] > 0) {
		return errors.New(errors.ErrCodeConfiguration, "scale must be two positive numbers, got %v", b.Scale)
	}
	return nil
}
