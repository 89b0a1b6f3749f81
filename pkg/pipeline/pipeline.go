// Package pipeline runs the roadmap build → layout → render pipeline.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Load the catalog into a directed graph
//  2. Layout: Compute a 2D position for every subject
//  3. Render: Paint the scene and encode it in the requested formats
//
// Every call rebuilds the graph and recomputes the layout from the immutable
// catalog, so concurrent runs share nothing mutable.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, catalog.Default(), pipeline.Options{
//	    Layout:  layout.Options{Algorithm: layout.Spring},
//	    Formats: []string{"png", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// Run individual stages:
//
//	g, err := runner.Build(ctx, cat)
//	pos, err := runner.ComputeLayout(ctx, g, opts)
//	scene, artifacts, err := runner.Render(ctx, g, pos, opts)
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mathroadmap/mathroadmap/pkg/bookshelf"
	"github.com/mathroadmap/mathroadmap/pkg/config"
	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
	"github.com/mathroadmap/mathroadmap/pkg/graph"
	"github.com/mathroadmap/mathroadmap/pkg/layout"
	"github.com/mathroadmap/mathroadmap/pkg/render"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatHTML = "html"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatPNG, FormatSVG, FormatDOT, FormatHTML}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Layout options
	Layout layout.Options `json:"layout"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Title      string   `json:"title,omitempty"` // empty selects the layout's default title
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	NodeRadius float64  `json:"node_radius,omitempty"`
	Margin     float64  `json:"margin,omitempty"`
	Graphviz   bool     `json:"graphviz,omitempty"` // render svg through Graphviz neato instead of the native sink

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies the run in logs.
	ID string

	// Graph is the roadmap graph built from the catalog.
	Graph *graph.Graph

	// Positions holds one coordinate per node.
	Positions layout.Positions

	// Scene is the display list all raster and vector outputs share.
	Scene *render.Scene

	// Shelf holds the tabbed reading lists.
	Shelf bookshelf.Shelf

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	BuildTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Total returns the combined duration of all stages.
func (s Stats) Total() time.Duration {
	return s.BuildTime + s.LayoutTime + s.RenderTime
}

// FromConfig converts a loaded configuration into pipeline options.
func FromConfig(cfg config.Config) Options {
	return Options{
		Layout:     cfg.Layout,
		Formats:    slices.Clone(cfg.Render.Formats),
		Title:      cfg.Render.Title,
		Width:      cfg.Render.Width,
		Height:     cfg.Render.Height,
		NodeRadius: cfg.Render.NodeRadius,
		Margin:     cfg.Render.Margin,
	}
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats(), format) {
		return rmerrors.New(rmerrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, svg, dot, html)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and checks every field.
func (o *Options) ValidateAndSetDefaults() error {
	o.Layout.SetDefaults()
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Title == "" {
		o.Title = render.DefaultTitle(o.Layout.Algorithm)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// RenderOptions returns the scene options selected by o. Zero sizes keep
// the renderer defaults.
func (o Options) RenderOptions() []render.Option {
	opts := []render.Option{render.WithTitle(o.Title)}
	if o.Width > 0 && o.Height > 0 {
		opts = append(opts, render.WithSize(o.Width, o.Height))
	}
	if o.NodeRadius > 0 {
		opts = append(opts, render.WithNodeRadius(o.NodeRadius))
	}
	if o.Margin > 0 {
		opts = append(opts, render.WithMargin(o.Margin))
	}
	return opts
}

