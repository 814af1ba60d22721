// Package config reads and writes figure description files.
//
// A figure file names the surfaces, the plot settings, the layers to
// overlay and the colorbar and build settings. TOML and YAML are
// supported; the format follows the file extension. Relative paths in a
// loaded file are resolved against the file's directory.
//
//	[surfaces]
//	left = "lh.obj"
//	right = "rh.obj"
//
//	[plot]
//	layout = "grid"
//	views = ["lateral", "medial"]
//
//	[[layers]]
//	example = "default_mode"
//	cmap = "YlOrRd_r"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/surfplot/surfplot/pkg/colorbar"
	"github.com/surfplot/surfplot/pkg/errors"
	"github.com/surfplot/surfplot/pkg/layers"
	"github.com/surfplot/surfplot/pkg/plot"
)

// Config is a complete figure description.
type Config struct {
	Surfaces Surfaces         `toml:"surfaces" yaml:"surfaces"`
	Plot     Plot             `toml:"plot" yaml:"plot"`
	Layers   []Layer          `toml:"layers" yaml:"layers"`
	Colorbar colorbar.Options `toml:"colorbar" yaml:"colorbar"`
	Build    Build            `toml:"build" yaml:"build"`
}

// Surfaces names the hemisphere meshes. A vertex count stands in for a
// mesh without geometry, which is enough for layout previews.
type Surfaces struct {
	Left          string `toml:"left,omitempty" yaml:"left,omitempty"`
	Right         string `toml:"right,omitempty" yaml:"right,omitempty"`
	LeftVertices  int    `toml:"left_vertices,omitempty" yaml:"left_vertices,omitempty"`
	RightVertices int    `toml:"right_vertices,omitempty" yaml:"right_vertices,omitempty"`
}

// Plot holds the renderer-facing settings.
type Plot struct {
	Layout     string              `toml:"layout" yaml:"layout"`
	Views      []string            `toml:"views" yaml:"views"`
	Flip       bool                `toml:"flip" yaml:"flip"`
	Size       []int               `toml:"size" yaml:"size"`
	Zoom       float64             `toml:"zoom" yaml:"zoom"`
	Background []float64           `toml:"background" yaml:"background"`
	Brightness float64             `toml:"brightness" yaml:"brightness"`
	LabelText  map[string][]string `toml:"label_text,omitempty" yaml:"label_text,omitempty"`
}

// Layer is one data overlay. Exactly one of Data, Left/Right or Example
// supplies the values.
type Layer struct {
	Data    string `toml:"data,omitempty" yaml:"data,omitempty"`
	Left    string `toml:"left,omitempty" yaml:"left,omitempty"`
	Right   string `toml:"right,omitempty" yaml:"right,omitempty"`
	Example string `toml:"example,omitempty" yaml:"example,omitempty"`

	// MedialWall pads 59412-vertex data to the full fs_LR layout.
	MedialWall bool `toml:"medial_wall,omitempty" yaml:"medial_wall,omitempty"`

	ColorMap        string        `toml:"cmap,omitempty" yaml:"cmap,omitempty"`
	Range           *layers.Range `toml:"color_range,omitempty" yaml:"color_range,omitempty"`
	Outline         bool          `toml:"as_outline,omitempty" yaml:"as_outline,omitempty"`
	ZeroTransparent *bool         `toml:"zero_transparent,omitempty" yaml:"zero_transparent,omitempty"`
	Colorbar        *bool         `toml:"cbar,omitempty" yaml:"cbar,omitempty"`
	Label           string        `toml:"cbar_label,omitempty" yaml:"cbar_label,omitempty"`
}

// Build holds the figure composition settings.
type Build struct {
	// FigSize is the figure size in inches. Empty derives it from the
	// render size.
	FigSize  []float64 `toml:"figsize,omitempty" yaml:"figsize,omitempty"`
	Scale    []float64 `toml:"scale" yaml:"scale"`
	Colorbar bool      `toml:"colorbar" yaml:"colorbar"`
	Output   string    `toml:"output,omitempty" yaml:"output,omitempty"`
}

// Default returns a configuration with every setting at its default and
// no surfaces or layers.
func Default() *Config {
	return &Config{
		Plot: Plot{
			Layout:     "grid",
			Views:      []string{"lateral", "medial"},
			Size:       []int{plot.DefaultWidth, plot.DefaultHeight},
			Zoom:       plot.DefaultZoom,
			Background: []float64{1, 1, 1},
			Brightness: plot.DefaultBrightness,
		},
		Colorbar: colorbar.DefaultOptions(),
		Build: Build{
			Scale:    []float64{2, 2},
			Colorbar: true,
		},
	}
}

// Load reads a figure file over the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	cfg, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "config %s", path)
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes a figure description in the given format ("toml" or
// "yaml") over the defaults and validates it.
func Parse(data []byte, format string) (*Config, error) {
	cfg := Default()
	switch format {
	case "toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse toml")
		}
	case "yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "config format must be toml or yaml, got %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in the format implied by its extension.
func Save(cfg *Config, path string) error {
	var buf bytes.Buffer
	switch formatOf(path) {
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
	case "yaml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "config file must end in .toml, .yaml or .yml: %s", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

// resolve makes relative file paths relative to dir.
func (c *Config) resolve(dir string) {
	abs := func(p *string) {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	abs(&c.Surfaces.Left)
	abs(&c.Surfaces.Right)
	for i := range c.Layers {
		abs(&c.Layers[i].Data)
		abs(&c.Layers[i].Left)
		abs(&c.Layers[i].Right)
	}
	if c.Build.Output != "" {
		abs(&c.Build.Output)
	}
}
