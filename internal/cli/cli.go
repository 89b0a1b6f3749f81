package cli

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mathroadmap/mathroadmap/pkg/buildinfo"
	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	"github.com/mathroadmap/mathroadmap/pkg/config"
	"github.com/mathroadmap/mathroadmap/pkg/graph"
	"github.com/mathroadmap/mathroadmap/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "mathroadmap"

	// defaultBase is the output base path when -o is not given.
	defaultBase = "roadmap"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Mathroadmap draws a learning roadmap of mathematics",
		Long: `Mathroadmap draws the prerequisite graph of mathematical subjects as a
roadmap picture and prints the recommended reading list for every subject.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			bridgeRasterLogger(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.booksCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// buildGraph builds the default catalog into a graph. Commands that only
// need the graph or the shelf use it instead of a full pipeline run.
func (c *CLI) buildGraph(ctx context.Context) (*graph.Graph, error) {
	return c.newRunner().Build(ctx, catalog.Default())
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadOptions reads the config file (empty path: default location) and
// converts it to pipeline options.
func (c *CLI) loadOptions(path string) (pipeline.Options, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.FromConfig(cfg)
	opts.Logger = c.Logger
	return opts, nil
}

// parseFormats parses a comma-separated format string into a slice.
// Blank and repeated items are dropped; an empty string yields nil.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
