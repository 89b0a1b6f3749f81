package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mathroadmap/mathroadmap/pkg/bookshelf"
	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	"github.com/mathroadmap/mathroadmap/pkg/graph"
	"github.com/mathroadmap/mathroadmap/pkg/layout"
	"github.com/mathroadmap/mathroadmap/pkg/observability"
	"github.com/mathroadmap/mathroadmap/pkg/render"
	"github.com/mathroadmap/mathroadmap/pkg/render/nodelink"
)

// Runner executes pipeline stages and reports them to its logger and the
// registered observability hooks.
//
// The Runner is stateless except for the logger; it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete build → layout → render pipeline over cat.
// The context is checked between stages.
func (r *Runner) Execute(ctx context.Context, cat *catalog.Catalog, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{ID: uuid.NewString()}
	logger := r.Logger.With("run", result.ID[:8])

	// Stage 1: Build
	buildStart := time.Now()
	g, err := r.Build(ctx, cat)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Graph = g
	result.Shelf = bookshelf.Build(g)
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	logger.Info("built graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.BuildTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	pos, err := r.ComputeLayout(ctx, g, opts.Layout)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Positions = pos
	result.Stats.LayoutTime = time.Since(layoutStart)

	logger.Info("computed layout",
		"algorithm", opts.Layout.Algorithm,
		"nodes", len(pos),
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	scene, artifacts, err := r.Render(ctx, g, pos, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Scene = scene
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build loads cat into a graph.
func (r *Runner) Build(ctx context.Context, cat *catalog.Catalog) (g *graph.Graph, err error) {
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, cat.Len())
	start := time.Now()
	defer func() {
		nodes, edges := 0, 0
		if g != nil {
			nodes, edges = g.NodeCount(), g.EdgeCount()
		}
		hooks.OnBuildComplete(ctx, nodes, edges, time.Since(start), err)
	}()
	return graph.Build(cat)
}

// ComputeLayout positions every node of g.
func (r *Runner) ComputeLayout(ctx context.Context, g *graph.Graph, opts layout.Options) (pos layout.Positions, err error) {
	opts.SetDefaults()
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, string(opts.Algorithm), g.NodeCount())
	start := time.Now()
	defer func() {
		hooks.OnLayoutComplete(ctx, string(opts.Algorithm), time.Since(start), err)
	}()

	r.Logger.Debug("computing layout",
		"algorithm", opts.Algorithm,
		"seed", opts.Seed,
		"iterations", opts.Iterations,
		"k", opts.K)
	return layout.Compute(g, opts)
}

// Render builds the scene for g at pos and encodes it in every format in
// opts.Formats. Options are defaulted and validated first.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, pos layout.Positions, opts Options) (scene *render.Scene, artifacts map[string][]byte, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	styles := render.Styles()
	scene, err = render.Render(g, pos, styles, opts.RenderOptions()...)
	if err != nil {
		return nil, nil, err
	}

	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := r.encode(ctx, format, g, pos, scene, styles, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
		r.Logger.Debug("encoded artifact", "format", format, "bytes", len(data))
	}
	return scene, artifacts, nil
}

func (r *Runner) encode(ctx context.Context, format string, g *graph.Graph, pos layout.Positions, scene *render.Scene, styles render.StyleTable, opts Options) ([]byte, error) {
	switch format {
	case FormatPNG:
		canvas, err := scene.Rasterize()
		if err != nil {
			return nil, err
		}
		defer canvas.Close()
		var buf bytes.Buffer
		if err := canvas.EncodePNG(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatSVG:
		if opts.Graphviz {
			return r.graphvizSVG(ctx, g, pos, styles, opts)
		}
		return scene.SVG(), nil

	case FormatDOT:
		dot, err := nodelink.ToDOT(g, pos, styles, nodelink.Options{Title: opts.Title})
		if err != nil {
			return nil, err
		}
		return []byte(dot), nil

	case FormatHTML:
		var buf bytes.Buffer
		err := bookshelf.WriteHTML(&buf, bookshelf.Page{
			Title: opts.Title,
			SVG:   scene.SVG(),
			Shelf: bookshelf.Build(g),
		})
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	default:
		return nil, ValidateFormat(format)
	}
}

func (r *Runner) graphvizSVG(ctx context.Context, g *graph.Graph, pos layout.Positions, styles render.StyleTable, opts Options) ([]byte, error) {
	dot, err := nodelink.ToDOT(g, pos, styles, nodelink.Options{Title: opts.Title})
	if err != nil {
		return nil, err
	}
	return nodelink.RenderSVG(ctx, dot)
}
