package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/surfplot/surfplot/pkg/errors"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashFiles hashes the contents of the given files, in order. Names are
// not part of the hash, so a renamed input keeps its key.
func HashFiles(paths ...string) (string, error) {
	h := sha256.New()
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "hash %s", p)
			}
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "hash %s", p)
		}
		err = hashFile(h, f)
		f.Close()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "hash %s", p)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// hashFile writes the size and contents of f to w, so that ("ab", "c")
// and ("a", "bc") hash differently.
func hashFile(w io.Writer, f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d:", info.Size())
	_, err = io.Copy(w, f)
	return err
}

// FigureKeyOpts identifies how an artifact was produced from its inputs.
type FigureKeyOpts struct {
	Format   string `json:"format"`
	Renderer string `json:"renderer"`
	Version  string `json:"version"`
}

// FigureKey returns the cache key of a figure artifact built from inputs
// with the given content hash.
func FigureKey(inputHash string, opts FigureKeyOpts) string {
	return hashKey("figure", inputHash, opts)
}
