package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	"github.com/mathroadmap/mathroadmap/pkg/layout"
	"github.com/mathroadmap/mathroadmap/pkg/observability"
	"github.com/mathroadmap/mathroadmap/pkg/pipeline"
)

// renderFlags holds the command-line flags for the render command. They
// override values from the config file only when set explicitly.
type renderFlags struct {
	output     string  // output file (single format) or base path
	configPath string  // config file, empty for the default location
	metrics    string  // Prometheus textfile to write after the run
	formats    string  // comma-separated output formats
	algorithm  string  // layout algorithm name
	seed       uint64  // spring seed
	iterations int     // spring iterations
	k          float64 // spring optimal distance
	width      int     // canvas width in pixels
	height     int     // canvas height in pixels
	title      string  // figure title
	graphviz   bool    // route svg through Graphviz neato
}

// renderCommand creates the render command for drawing the roadmap.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the roadmap to PNG, SVG, DOT or HTML",
		Long: `Draw the mathematics roadmap.

The catalog is built into a graph, laid out with the selected algorithm and
rendered to every requested format. Values from the config file
($XDG_CONFIG_HOME/mathroadmap/config.toml or --config) apply unless a flag
overrides them.

Formats:
  png   raster image
  svg   vector image (add --graphviz to draw it with Graphviz neato)
  dot   Graphviz source with pinned positions
  html  single page with the roadmap and the tabbed reading lists`,
		Example: `  mathroadmap render
  mathroadmap render --layout spring -f png,svg -o out/roadmap
  mathroadmap render -f html --metrics roadmap.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.renderOptions(cmd, flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, flags.output, flags.metrics)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (default: roadmap)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/mathroadmap/config.toml)")
	cmd.Flags().StringVar(&flags.metrics, "metrics", "", "write pipeline metrics in Prometheus text format to this file")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): png (default), svg, dot, html (comma-separated)")
	cmd.Flags().StringVar(&flags.algorithm, "layout", "", "layout algorithm: kamada-kawai (default), spring")
	cmd.Flags().Uint64Var(&flags.seed, "seed", layout.DefaultSeed, "random seed (spring)")
	cmd.Flags().IntVar(&flags.iterations, "iterations", layout.DefaultIterations, "iterations (spring)")
	cmd.Flags().Float64Var(&flags.k, "k", layout.DefaultK, "optimal node distance (spring)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&flags.height, "height", 0, "canvas height in pixels")
	cmd.Flags().StringVar(&flags.title, "title", "", "figure title (default depends on the layout)")
	cmd.Flags().BoolVar(&flags.graphviz, "graphviz", false, "render svg with Graphviz neato")

	return cmd
}

// renderOptions merges the config file with explicitly set flags and
// validates the result.
func (c *CLI) renderOptions(cmd *cobra.Command, flags renderFlags) (pipeline.Options, error) {
	opts, err := c.loadOptions(flags.configPath)
	if err != nil {
		return pipeline.Options{}, err
	}
	if err := applyLayoutFlags(cmd, &opts.Layout, flags); err != nil {
		return pipeline.Options{}, err
	}

	set := cmd.Flags().Changed
	if set("format") {
		opts.Formats = parseFormats(flags.formats)
	}
	if set("width") {
		opts.Width = flags.width
	}
	if set("height") {
		opts.Height = flags.height
	}
	if set("title") {
		opts.Title = flags.title
	}
	opts.Graphviz = flags.graphviz

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// applyLayoutFlags copies the layout flags the user set onto opts.
func applyLayoutFlags(cmd *cobra.Command, opts *layout.Options, flags renderFlags) error {
	set := cmd.Flags().Changed
	if set("layout") {
		alg, err := layout.ParseAlgorithm(flags.algorithm)
		if err != nil {
			return err
		}
		opts.Algorithm = alg
	}
	if set("seed") {
		opts.Seed = flags.seed
	}
	if set("iterations") {
		opts.Iterations = flags.iterations
	}
	if set("k") {
		opts.K = flags.k
	}
	return nil
}

// runRender runs the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output, metricsPath string) error {
	logger := loggerFromContext(ctx)

	var metrics *observability.Metrics
	if metricsPath != "" {
		metrics = observability.NewMetrics(appName)
		observability.SetPipelineHooks(metrics)
		defer observability.Reset()
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s roadmap...", opts.Layout.Algorithm))
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, catalog.Default(), opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	prog := newProgress(logger)
	paths := outputPaths(output, opts.Formats)
	for _, format := range opts.Formats {
		if err := writeFile(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(opts.Formats)))

	printSuccess("Roadmap rendered")
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.Total())

	if metrics != nil {
		if err := metrics.WriteTextfile(metricsPath); err != nil {
			return fmt.Errorf("write metrics %s: %w", metricsPath, err)
		}
		printDetail("metrics written to %s", metricsPath)
	}

	printNewline()
	printNextStep("Reading list", appName+" books --tab essential")
	return nil
}

// outputPaths maps every format to the file it is written to.
//
// An empty output uses the base "roadmap". An output ending in a known
// format extension is used verbatim when it is the only format; otherwise
// the extension is stripped and every format gets base.<format>.
func outputPaths(output string, formats []string) map[string]string {
	base := output
	if base == "" {
		base = defaultBase
	}
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	known := slices.Contains(pipeline.Formats(), strings.ToLower(ext))

	paths := make(map[string]string, len(formats))
	if known && len(formats) == 1 {
		paths[formats[0]] = base
		return paths
	}
	if known {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
