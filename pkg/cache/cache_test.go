package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/surfplot/surfplot/pkg/errors"
	"github.com/surfplot/surfplot/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "figure:a"); hit || err != nil {
		t.Fatalf("Get(empty) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "figure:a", []byte("png bytes"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "figure:a")
	if err != nil || !hit || string(data) != "png bytes" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "figure:a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "figure:a"); hit {
		t.Error("entry survived Delete")
	}
	if err := c.Delete(ctx, "figure:a"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry returned")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry not removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("Get(corrupt) = hit %v, err %v, want miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir still has %d entries", len(entries))
	}
	if n, err := c.Clear(); n != 0 || err != nil {
		t.Errorf("Clear(empty) = %d, %v", n, err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestHashFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}
	ab, c := write("ab", "ab"), write("c", "c")
	a, bc := write("a", "a"), write("bc", "bc")
	renamed := write("renamed", "ab")

	h1, err := HashFiles(ab, c)
	if err != nil {
		t.Fatalf("HashFiles: %v", err)
	}
	h2, _ := HashFiles(a, bc)
	if h1 == h2 {
		t.Error("split point should change the hash")
	}
	h3, _ := HashFiles(renamed, c)
	if h1 != h3 {
		t.Error("file names should not change the hash")
	}

	if _, err := HashFiles(filepath.Join(dir, "missing")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("HashFiles(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestFigureKey(t *testing.T) {
	k1 := FigureKey("hash123", FigureKeyOpts{Format: "png", Renderer: "preview"})
	k2 := FigureKey("hash123", FigureKeyOpts{Format: "svg", Renderer: "preview"})
	k3 := FigureKey("hash456", FigureKeyOpts{Format: "png", Renderer: "preview"})
	if k1 == k2 || k1 == k3 {
		t.Error("different inputs or options should produce different keys")
	}
	if !strings.HasPrefix(k1, "figure:") {
		t.Errorf("FigureKey() = %q, want figure: prefix", k1)
	}
}

func TestObserve(t *testing.T) {
	defer observability.Reset()
	rec := &countingHooks{}
	observability.SetCacheHooks(rec)

	ctx := context.Background()
	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := Observe(fc)

	c.Get(ctx, "figure:x")
	c.Set(ctx, "figure:x", []byte("1234"), 0)
	c.Get(ctx, "figure:x")

	if rec.hits != 1 || rec.misses != 1 || rec.bytes != 4 {
		t.Errorf("hooks = %+v, want 1 hit, 1 miss, 4 bytes", *rec)
	}
	if rec.lastType != "figure" {
		t.Errorf("key type = %q, want figure", rec.lastType)
	}
	if got := keyType("nocolon"); got != "unknown" {
		t.Errorf("keyType(nocolon) = %q", got)
	}
}

type countingHooks struct {
	observability.NoopCacheHooks
	hits, misses, bytes int
	lastType            string
}

func (h *countingHooks) OnCacheHit(_ context.Context, kt string)  { h.hits++; h.lastType = kt }
func (h *countingHooks) OnCacheMiss(_ context.Context, kt string) { h.misses++; h.lastType = kt }
func (h *countingHooks) OnCacheSet(_ context.Context, kt string, size int) {
	h.bytes += size
	h.lastType = kt
}
