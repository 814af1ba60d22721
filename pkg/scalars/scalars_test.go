package scalars

import (
	"bytes"
	"compress/gzip"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/surfplot/surfplot/pkg/errors"
)

func equalNaN(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.IsNaN(a[i]) && math.IsNaN(b[i]) {
			continue
		}
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLoadValuesCopies(t *testing.T) {
	in := Values{1, 2, 3}
	got, err := Load(in)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	in[0] = 42
	if got[0] != 1 {
		t.Errorf("Load(Values) aliases input: got[0] = %v", got[0])
	}
}

func TestLoadResources(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		want []float64
	}{
		{
			name: "data arrays concatenate",
			src:  DataArrays{{1, 2}, {3}, {}},
			want: []float64{1, 2, 3},
		},
		{
			name: "dense matrix ravels row-major",
			src:  Matrix{M: mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})},
			want: []float64{1, 2, 3, 4, 5, 6},
		},
		{
			name: "transposed matrix ravels row-major",
			src:  Matrix{M: mat.NewDense(2, 2, []float64{1, 2, 3, 4}).T()},
			want: []float64{1, 3, 2, 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !equalNaN(got, tt.want) {
				t.Errorf("Load() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		code errors.Code
	}{
		{"nil", nil, errors.ErrCodeInvalidType},
		{"nil matrix", Matrix{}, errors.ErrCodeInvalidType},
		{"missing file", Path(filepath.Join(t.TempDir(), "nope.txt")), errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.src); !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestReadText(t *testing.T) {
	input := "# comment\n1 2\t3\n4,5\n\nnan\nNaN\n-1e3\n"
	got, err := ReadText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	want := []float64{1, 2, 3, 4, 5, math.NaN(), math.NaN(), -1000}
	if !equalNaN(got, want) {
		t.Errorf("ReadText() = %v, want %v", got, want)
	}

	if _, err := ReadText(strings.NewReader("1\nx\n")); err == nil {
		t.Error("ReadText(bad) error = nil, want error")
	}
}

func TestWriteTextRoundTrip(t *testing.T) {
	in := []float64{0, 1.5, math.NaN(), -2}
	var buf bytes.Buffer
	if err := WriteText(&buf, in); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	got, err := ReadText(&buf)
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if !equalNaN(got, in) {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}

func TestLoadPath(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "lh.tsv")
	if err := os.WriteFile(plain, []byte("1\n2\n3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte("4\n5\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	compressed := filepath.Join(dir, "rh.TSV.gz")
	if err := os.WriteFile(compressed, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	unknown := filepath.Join(dir, "lh.func.gii")
	if err := os.WriteFile(unknown, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(Path(plain))
	if err != nil {
		t.Fatalf("Load(plain): %v", err)
	}
	if !equalNaN(got, []float64{1, 2, 3}) {
		t.Errorf("Load(plain) = %v", got)
	}

	got, err = Load(Path(compressed))
	if err != nil {
		t.Fatalf("Load(gz): %v", err)
	}
	if !equalNaN(got, []float64{4, 5}) {
		t.Errorf("Load(gz) = %v", got)
	}

	if _, err := Load(Path(unknown)); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Load(unknown) error = %v, want INVALID_FORMAT", err)
	}
}
