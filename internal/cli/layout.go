package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mathroadmap/mathroadmap/pkg/layout"
)

// layoutCommand creates the layout command for printing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  renderFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed position of every subject",
		Long: `Print the computed position of every subject.

The catalog is built into a graph and laid out exactly as 'render' would,
but instead of drawing, the coordinates are printed as a table or as JSON
sorted by subject id.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions(flags.configPath)
			if err != nil {
				return err
			}
			if err := applyLayoutFlags(cmd, &opts.Layout, flags); err != nil {
				return err
			}
			opts.Layout.SetDefaults()
			if err := opts.Layout.Validate(); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), opts.Layout, asJSON)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/mathroadmap/config.toml)")
	cmd.Flags().StringVar(&flags.algorithm, "layout", "", "layout algorithm: kamada-kawai (default), spring")
	cmd.Flags().Uint64Var(&flags.seed, "seed", layout.DefaultSeed, "random seed (spring)")
	cmd.Flags().IntVar(&flags.iterations, "iterations", layout.DefaultIterations, "iterations (spring)")
	cmd.Flags().Float64Var(&flags.k, "k", layout.DefaultK, "optimal node distance (spring)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

// runLayout builds the graph, computes positions and prints them to w.
func (c *CLI) runLayout(ctx context.Context, w io.Writer, opts layout.Options, asJSON bool) error {
	g, err := c.buildGraph(ctx)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	prog := newProgress(loggerFromContext(ctx))
	pos, err := c.newRunner().ComputeLayout(ctx, g, opts)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	prog.done(fmt.Sprintf("Computed %s layout for %d subjects", opts.Algorithm, len(pos)))

	if asJSON {
		data, err := pos.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	rows := make([][]string, 0, len(pos))
	for _, n := range g.Nodes() {
		p := pos[n.ID]
		rows = append(rows, []string{
			n.ID,
			categoryStyle(n.Category).Render(string(n.Category)),
			strconv.FormatFloat(p.X, 'f', 4, 64),
			strconv.FormatFloat(p.Y, 'f', 4, 64),
		})
	}
	return writeTable(w, []string{"Subject", "Category", "X", "Y"}, rows)
}
