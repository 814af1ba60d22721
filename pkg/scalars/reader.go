package scalars

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/surfplot/surfplot/pkg/errors"
)

// Reader decodes a flat scalar array from r.
type Reader func(r io.Reader) ([]float64, error)

var (
	readersMu sync.RWMutex
	readers   = map[string]Reader{
		".txt": ReadText,
		".tsv": ReadText,
		".csv": ReadText,
	}
)

// RegisterReader installs fn for files with extension ext. A ".gz"
// suffix is handled before lookup, so fn always sees decompressed bytes.
func RegisterReader(ext string, fn Reader) {
	readersMu.Lock()
	defer readersMu.Unlock()
	if fn != nil {
		readers[strings.ToLower(ext)] = fn
	}
}

// Extensions returns the registered file extensions, sorted.
func Extensions() []string {
	readersMu.RLock()
	defer readersMu.RUnlock()
	out := make([]string, 0, len(readers))
	for ext := range readers {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// ReadText parses numbers separated by whitespace, commas, or tabs.
// "nan" and "NaN" are accepted. Lines starting with '#' are skipped.
func ReadText(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Decode reads a scalar file named name from r, choosing the reader by
// extension and transparently decompressing ".gz" files.
func Decode(name string, r io.Reader) ([]float64, error) {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".gz") {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decompress %s", name)
		}
		defer zr.Close()
		r = zr
		lower = strings.TrimSuffix(lower, ".gz")
	}

	ext := filepath.Ext(lower)
	readersMu.RLock()
	read, ok := readers[ext]
	readersMu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"no scalar reader for %q (registered: %s)", ext, strings.Join(Extensions(), ", "))
	}

	data, err := read(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read %s", name)
	}
	return data, nil
}

func loadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scalar file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Decode(filepath.Base(path), f)
}

// WriteText writes one value per line, formatted with the shortest
// representation that round-trips.
func WriteText(w io.Writer, data []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range data {
		if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
