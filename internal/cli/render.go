package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/surfplot/surfplot/pkg/buildinfo"
	"github.com/surfplot/surfplot/pkg/cache"
	"github.com/surfplot/surfplot/pkg/config"
	"github.com/surfplot/surfplot/pkg/errors"
	"github.com/surfplot/surfplot/pkg/plot"
	"github.com/surfplot/surfplot/pkg/render"
)

const (
	rendererPreview = "preview" // built-in silhouette renderer
	rendererScene   = "scene"   // JSON scene for an external renderer
	figureTTL       = 30 * 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file (default: build.output or <config>.png)
	scene   bool   // write the JSON scene instead of a figure
	noCache bool   // bypass the figure cache
}

// renderCommand creates the render command for building figures from a
// figure file.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [figure.toml]",
		Short: "Build a figure from a figure file",
		Long: `Build a figure from a TOML or YAML figure file.

The figure file names the surfaces, the plot settings, the data layers and
the colorbar settings. The output format follows the file extension of
--output: png, jpg, tiff, svg, pdf or eps.

With --scene, the layout, layer stacks and colour ranges are written as
JSON for an external mesh renderer instead.

Results are cached locally, keyed by the content of every input file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: build.output or <figure>.png)")
	cmd.Flags().BoolVar(&opts.scene, "scene", false, "write the JSON scene instead of rendering")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender loads the figure file, builds the figure (or scene), and
// writes it, consulting the cache first.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(input)
	if err != nil {
		return err
	}

	outputPath, format, err := renderOutput(input, cfg.Build.Output, opts)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	p, err := cfg.NewPlot(logger)
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}
	cells, nLayers := p.Layout().Len(), len(p.Layers())

	fc, err := newCache(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer fc.Close()

	inputHash, err := cache.HashFiles(inputFiles(input, cfg)...)
	if err != nil {
		return err
	}
	renderer := rendererPreview
	if opts.scene {
		renderer = rendererScene
	}
	key := cache.FigureKey(inputHash, cache.FigureKeyOpts{
		Format:   format,
		Renderer: renderer,
		Version:  buildinfo.CacheTag(),
	})

	data, cacheHit, err := fc.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}
	if !cacheHit {
		data, err = c.produce(ctx, p, cfg, format, opts.scene)
		if err != nil {
			return err
		}
		if err := fc.Set(ctx, key, data, figureTTL); err != nil {
			logger.Warn("cache write failed", "err", err)
		}
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	prog.done("Rendered " + filepath.Base(outputPath))

	printSuccess("Figure complete")
	printFile(outputPath)
	printStats(cells, nLayers, cacheHit)
	return nil
}

// produce builds the figure (or encodes the scene) in memory.
func (c *CLI) produce(ctx context.Context, p *plot.Plot, cfg *config.Config, format string, scene bool) ([]byte, error) {
	if scene {
		return render.EncodeScene(p.Scene())
	}

	spinner := newSpinnerWithContext(ctx, "Building figure...")
	spinner.Start()

	fig, err := p.Build(ctx, render.NewPreview(), cfg.BuildOptions()...)
	if err != nil {
		spinner.StopWithError("Build failed")
		return nil, fmt.Errorf("build figure: %w", err)
	}
	spinner.Update("Encoding " + format + "...")

	var buf bytes.Buffer
	if err := fig.Write(&buf, format); err != nil {
		spinner.StopWithError("Encoding failed")
		return nil, err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return buf.Bytes(), nil
}

// renderOutput picks the output path and its format. The --output flag
// wins over build.output in the figure file, which wins over a path
// derived from the figure file name.
func renderOutput(input, configured string, opts renderOpts) (string, string, error) {
	path := opts.output
	if path == "" {
		path = configured
	}
	if opts.scene {
		if path == "" {
			path = strings.TrimSuffix(input, filepath.Ext(input)) + ".scene.json"
		}
		if !strings.EqualFold(filepath.Ext(path), ".json") {
			return "", "", errors.New(errors.ErrCodeInvalidFormat, "scene output must be .json: %s", path)
		}
		return path, "json", nil
	}
	if path == "" {
		path = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}
	format, err := render.FormatFromPath(path)
	if err != nil {
		return "", "", err
	}
	return path, format, nil
}

// inputFiles lists every file whose content determines the figure.
func inputFiles(input string, cfg *config.Config) []string {
	files := []string{input}
	add := func(p string) {
		if p != "" {
			files = append(files, p)
		}
	}
	add(cfg.Surfaces.Left)
	add(cfg.Surfaces.Right)
	for _, l := range cfg.Layers {
		add(l.Data)
		add(l.Left)
		add(l.Right)
	}
	return files
}
