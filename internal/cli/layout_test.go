package cli

import (
	"strings"
	"testing"

	"github.com/surfplot/surfplot/pkg/errors"
	"github.com/surfplot/surfplot/pkg/layout"
	"github.com/surfplot/surfplot/pkg/surface"
)

func TestLayoutCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantShape string
		wantCells []string // in output order
	}{
		{
			name:      "default grid",
			args:      []string{"layout"},
			wantShape: "[2 2]",
			wantCells: []string{"left lateral", "right medial", "left medial", "right lateral"},
		},
		{
			name:      "single hemisphere row",
			args:      []string{"layout", "--hemispheres", "right", "--layout", "row", "--views", "lateral,medial,dorsal"},
			wantShape: "[3]",
			wantCells: []string{"right medial", "right lateral", "right dorsal"},
		},
		{
			name:      "column",
			args:      []string{"layout", "--layout", "column", "--views", "lateral"},
			wantShape: "[2 1]",
			wantCells: []string{"left lateral", "right medial"},
		},
		{
			name:      "flipped row",
			args:      []string{"layout", "--layout", "row", "--views", "lateral", "--flip"},
			wantShape: "[2]",
			wantCells: []string{"right medial", "left lateral"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out, _ := newTestCLI(t)
			if err := execute(t, c, tt.args...); err != nil {
				t.Fatalf("execute: %v", err)
			}
			got := out.String()
			if !strings.Contains(got, tt.wantShape) {
				t.Errorf("output missing shape %s:\n%s", tt.wantShape, got)
			}
			last := -1
			for _, cell := range tt.wantCells {
				i := strings.Index(got, cell)
				if i < 0 {
					t.Errorf("output missing cell %q:\n%s", cell, got)
					continue
				}
				if i < last {
					t.Errorf("cell %q out of order:\n%s", cell, got)
				}
				last = i
			}
		})
	}
}

func TestLayoutCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad hemisphere", []string{"layout", "--hemispheres", "both"}, errors.ErrCodeInvalidKey},
		{"bad mode", []string{"layout", "--layout", "spiral"}, errors.ErrCodeInvalidLayout},
		{"bad view", []string{"layout", "--views", "inferior"}, errors.ErrCodeInvalidView},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCLI(t)
			err := execute(t, c, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLayoutTable(t *testing.T) {
	l, err := layout.Compute(true, true, layout.Grid, []surface.View{surface.Lateral, surface.Medial})
	if err != nil {
		t.Fatal(err)
	}
	got := layoutTable(l)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	// Rounded border: top, header, separator, two rows, bottom.
	if len(lines) != 6 {
		t.Errorf("table has %d lines, want 6:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[3], "left lateral") || !strings.Contains(lines[3], "right medial") {
		t.Errorf("first row = %q", lines[3])
	}
}
