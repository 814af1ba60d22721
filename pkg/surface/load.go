package surface

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/surfplot/surfplot/pkg/errors"
)

// Source is a mesh input: either a [Path] to read or an already [Loaded] mesh.
type Source interface {
	meshSource()
}

// Path is a mesh file on disk.
type Path string

func (Path) meshSource() {}

// Loaded wraps a mesh that is already in memory.
type Loaded struct {
	Mesh Mesh
}

func (Loaded) meshSource() {}

// Reader decodes a mesh from r.
type Reader func(r io.Reader) (*PolyData, error)

var (
	readersMu sync.RWMutex
	readers   = map[string]Reader{
		".obj": ReadOBJ,
	}
)

// RegisterReader installs fn for files with extension ext (for example
// ".gii"). It should be called once at startup; a later registration for
// the same extension replaces the earlier one.
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

// Load resolves src into a mesh. A [Loaded] mesh is passed through
// unchanged; a [Path] is decoded by the reader registered for its extension.
func Load(src Source) (Mesh, error) {
	switch s := src.(type) {
	case Loaded:
		if s.Mesh == nil {
			return nil, errors.New(errors.ErrCodeInvalidType, "loaded surface is nil")
		}
		return s.Mesh, nil
	case Path:
		return loadFile(string(s))
	case nil:
		return nil, errors.New(errors.ErrCodeInvalidType, "surface must be a file path or a loaded mesh")
	default:
		return nil, errors.New(errors.ErrCodeInvalidType, "unsupported surface source %T", src)
	}
}

func loadFile(path string) (Mesh, error) {
	ext := strings.ToLower(filepath.Ext(path))
	readersMu.RLock()
	read, ok := readers[ext]
	readersMu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"no surface reader for %q (registered: %s)", ext, strings.Join(Extensions(), ", "))
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "surface %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open surface %s", path)
	}
	defer f.Close()

	mesh, err := read(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read surface %s", path)
	}
	return mesh, nil
}
