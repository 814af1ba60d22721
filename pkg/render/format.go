package render

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps" // register eps
	_ "gonum.org/v1/plot/vg/vgimg" // register png, jpg, tiff
	_ "gonum.org/v1/plot/vg/vgpdf" // register pdf
	_ "gonum.org/v1/plot/vg/vgsvg" // register svg

	"github.com/surfplot/surfplot/pkg/errors"
)

// Formats lists the output formats accepted by [WriteFormatted].
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

// FormatFromPath returns the output format implied by path's extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats {
		if f == ext {
			return ext, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported output format %q (supported: %s)", ext, strings.Join(Formats, ", "))
}

// WriteFormatted draws fn onto a width×height canvas of the given format
// and writes the encoded result to w.
func WriteFormatted(w io.Writer, format string, width, height vg.Length, fn func(draw.Canvas) error) error {
	format = strings.ToLower(format)
	if _, err := FormatFromPath("x." + format); err != nil {
		return err
	}
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "create %s canvas", format)
	}
	if err := fn(draw.New(c)); err != nil {
		return err
	}
	if _, err := c.WriteTo(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", format)
	}
	return nil
}

// SaveFormatted is [WriteFormatted] into a file, with the format taken
// from the extension.
func SaveFormatted(path string, width, height vg.Length, fn func(draw.Canvas) error) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	if err := WriteFormatted(f, format, width, height, fn); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
