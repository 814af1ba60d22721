package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/surfplot/surfplot/pkg/config"
	"github.com/surfplot/surfplot/pkg/errors"
)

const testFigure = `
[surfaces]
left_vertices = 32492
right_vertices = 32492

[plot]
size = [100, 80]

[[layers]]
example = "default_mode"
cmap = "magma"
cbar_label = "association"

[build]
scale = [1.0, 1.0]
figsize = [3.0, 2.5]
`

// writeFigure writes the test figure file into a temp dir and points the
// cache there too.
func writeFigure(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	path := filepath.Join(dir, "figure.toml")
	if err := os.WriteFile(path, []byte(testFigure), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderCommand(t *testing.T) {
	c, _, logs := newTestCLI(t)
	input := writeFigure(t)
	output := filepath.Join(filepath.Dir(input), "out", "figure.png")

	if err := execute(t, c, "render", input, "-o", output); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
	if !strings.Contains(logs.String(), "cache miss") {
		t.Errorf("first render should miss the cache:\n%s", logs.String())
	}

	logs.Reset()
	if err := os.Remove(output); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, c, "render", input, "-o", output); err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !strings.Contains(logs.String(), "cache hit") {
		t.Errorf("second render should hit the cache:\n%s", logs.String())
	}
	again, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read cached output: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Error("cached figure differs from the rendered one")
	}
}

func TestRenderCommandNoCache(t *testing.T) {
	c, _, logs := newTestCLI(t)
	input := writeFigure(t)
	output := filepath.Join(filepath.Dir(input), "figure.svg")

	for i := 0; i < 2; i++ {
		if err := execute(t, c, "render", input, "-o", output, "--no-cache"); err != nil {
			t.Fatalf("render: %v", err)
		}
	}
	if strings.Contains(logs.String(), "cache hit") {
		t.Error("--no-cache should never hit the cache")
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("output is not an SVG")
	}
}

func TestRenderCommandScene(t *testing.T) {
	c, _, _ := newTestCLI(t)
	input := writeFigure(t)

	if err := execute(t, c, "render", input, "--scene"); err != nil {
		t.Fatalf("render --scene: %v", err)
	}
	data, err := os.ReadFile(strings.TrimSuffix(input, ".toml") + ".scene.json")
	if err != nil {
		t.Fatalf("read scene: %v", err)
	}
	var scene map[string]any
	if err := json.Unmarshal(data, &scene); err != nil {
		t.Fatalf("scene is not JSON: %v", err)
	}
	if _, ok := scene["color_range"]; !ok {
		t.Errorf("scene keys = %v, want color_range", keys(scene))
	}
}

func TestRenderCommandErrors(t *testing.T) {
	c, _, _ := newTestCLI(t)
	input := writeFigure(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing config", []string{"render", filepath.Join(t.TempDir(), "nope.toml")}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"render", input, "-o", "figure.bmp"}, errors.ErrCodeInvalidFormat},
		{"scene not json", []string{"render", input, "--scene", "-o", "scene.txt"}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, c, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRenderOutput(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		opts       renderOpts
		wantPath   string
		wantFormat string
	}{
		{"derived", "", renderOpts{}, "fig.png", "png"},
		{"configured", "out/fig.pdf", renderOpts{}, "out/fig.pdf", "pdf"},
		{"flag wins", "out/fig.pdf", renderOpts{output: "a.svg"}, "a.svg", "svg"},
		{"scene derived", "", renderOpts{scene: true}, "fig.scene.json", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, format, err := renderOutput("fig.toml", tt.configured, tt.opts)
			if err != nil {
				t.Fatalf("renderOutput: %v", err)
			}
			if path != tt.wantPath || format != tt.wantFormat {
				t.Errorf("renderOutput = (%q, %q), want (%q, %q)", path, format, tt.wantPath, tt.wantFormat)
			}
		})
	}
}

func TestInputFiles(t *testing.T) {
	cfg := config.Default()
	cfg.Surfaces.Left = "lh.obj"
	cfg.Layers = []config.Layer{{Data: "both.txt"}, {Left: "lh.txt"}, {Example: "default_mode"}}

	got := inputFiles("fig.toml", cfg)
	want := []string{"fig.toml", "lh.obj", "both.txt", "lh.txt"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("inputFiles = %v, want %v", got, want)
	}
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
