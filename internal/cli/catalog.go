package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	"github.com/mathroadmap/mathroadmap/pkg/graph"
	"github.com/mathroadmap/mathroadmap/pkg/render"
)

// catalogReport is the result of checking the built-in catalog.
type catalogReport struct {
	Stats    catalog.Stats
	Roots    []string // subjects nothing leads to
	Isolated []string // subjects with no connection at all
	NoBooks  []string // subjects left out of the reading lists
}

// catalogCommand creates the catalog command for validating the built-in data.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate the subject catalog and print statistics",
		Long: `Validate the subject catalog and print statistics.

The catalog is built into a graph, which fails if a connection names an
unknown subject, and every category is checked against the render styles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.checkCatalog(cmd.Context(), catalog.Default())
			if err != nil {
				printError("Catalog is invalid")
				return err
			}
			return printCatalogReport(cmd.OutOrStdout(), report)
		},
	}
	return cmd
}

// checkCatalog builds cat and verifies that every node can be drawn.
func (c *CLI) checkCatalog(ctx context.Context, cat *catalog.Catalog) (catalogReport, error) {
	g, err := c.newRunner().Build(ctx, cat)
	if err != nil {
		return catalogReport{}, err
	}
	styles := render.Styles()
	for _, n := range g.Nodes() {
		if _, err := styles.StyleFor(n.Category); err != nil {
			return catalogReport{}, fmt.Errorf("subject %s: %w", n.ID, err)
		}
	}
	return newCatalogReport(cat.Stats(), g), nil
}

func newCatalogReport(st catalog.Stats, g *graph.Graph) catalogReport {
	r := catalogReport{Stats: st, Roots: g.Roots()}
	for _, n := range g.Nodes() {
		if g.InDegree(n.ID) == 0 && g.OutDegree(n.ID) == 0 {
			r.Isolated = append(r.Isolated, n.ID)
		}
		if len(n.Books) == 0 {
			r.NoBooks = append(r.NoBooks, n.ID)
		}
	}
	return r
}

func printCatalogReport(w io.Writer, r catalogReport) error {
	printSuccess("Catalog is valid")
	printKeyValue("Subjects", strconv.Itoa(r.Stats.Subjects))
	printKeyValue("Books", strconv.Itoa(r.Stats.Books))
	printKeyValue("Connections", strconv.Itoa(r.Stats.Connections))
	printKeyValue("Roots", strings.Join(r.Roots, ", "))
	printNewline()

	rows := make([][]string, 0, len(catalog.Categories()))
	for _, cat := range catalog.Categories() {
		rows = append(rows, []string{
			categoryStyle(cat).Render(string(cat)),
			strconv.Itoa(r.Stats.ByCategory[cat]),
		})
	}
	if err := writeTable(w, []string{"Category", "Subjects"}, rows); err != nil {
		return err
	}

	if len(r.NoBooks) > 0 {
		printInfo("%d subjects have no books: %s", len(r.NoBooks), strings.Join(r.NoBooks, ", "))
	}
	if len(r.Isolated) > 0 {
		printWarning("%d subjects are not connected: %s", len(r.Isolated), strings.Join(r.Isolated, ", "))
	}
	return nil
}
