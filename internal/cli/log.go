// Package cli implements the surfplot command-line interface.
//
// This package provides commands for previewing figure layouts, building
// figures from TOML or YAML descriptions, exporting the bundled example
// data, and managing the figure cache. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Print the view and hemisphere grids for a layout
//   - render: Build a figure (or its JSON scene) from a figure file
//   - example: Write an example dataset as text
//   - medial-wall: Pad 59412-vertex fs_LR data to 64984 vertices
//   - cache: Manage the figure cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and build and cache events are logged
// through observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Built figure (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks writes build and cache events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnLayerAdded(_ context.Context, name, cmap string, min, max float64) {
	h.logger.Debug("layer added", "name", name, "cmap", cmap, "min", min, "max", max)
}

func (h logHooks) OnRenderStart(_ context.Context, cells, layers int) {
	h.logger.Debug("render start", "cells", cells, "layers", layers)
}

func (h logHooks) OnRenderComplete(_ context.Context, cells int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "cells", cells, "err", err)
		return
	}
	h.logger.Debug("render complete", "cells", cells, "elapsed", d.Round(time.Millisecond))
}

func (h logHooks) OnColorbarsStart(_ context.Context, count int) {
	h.logger.Debug("colorbars start", "count", count)
}

func (h logHooks) OnColorbarsComplete(_ context.Context, count int, d time.Duration, err error) {
	h.logger.Debug("colorbars complete", "count", count, "elapsed", d, "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
