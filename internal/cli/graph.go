package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mathroadmap/mathroadmap/pkg/graph"
)

// graphCommand creates the graph command for exporting the roadmap graph.
func (c *CLI) graphCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the roadmap graph as JSON",
		Long: `Export the roadmap graph as JSON.

Nodes are sorted by id and carry their category and flattened book list;
edges keep catalog order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// runGraph writes the graph JSON to output, or to w when output is empty.
func (c *CLI) runGraph(ctx context.Context, w io.Writer, output string) error {
	g, err := c.buildGraph(ctx)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	if output == "" {
		return graph.WriteGraph(g, w)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := graph.WriteGraph(g, f); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Graph exported")
	printFile(output)
	printStats(g.NodeCount(), g.EdgeCount(), 0)
	return nil
}
