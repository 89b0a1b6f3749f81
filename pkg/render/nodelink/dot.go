package nodelink

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	"github.com/mathroadmap/mathroadmap/pkg/graph"
	"github.com/mathroadmap/mathroadmap/pkg/layout"
	"github.com/mathroadmap/mathroadmap/pkg/render"
)

// DefaultScale is the number of inches one layout unit spans.
const DefaultScale = 8.0

// Options configures node-link diagram rendering.
type Options struct {
	// Title is drawn as the graph label. Empty means no label.
	Title string

	// Scale converts layout units to Graphviz inches. Zero means
	// [DefaultScale].
	Scale float64
}

// ToDOT converts a laid-out graph to Graphviz DOT. Every node is pinned at
// its layout position (pos="x,y!") and filled with its category colors, so
// the neato engine used by [RenderSVG] keeps the computed layout.
//
// A node whose category has no style fails with an UnknownCategoryError.
func ToDOT(g *graph.Graph, pos layout.Positions, styles render.StyleTable, opts Options) (string, error) {
	scale := opts.Scale
	if scale == 0 {
		scale = DefaultScale
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  outputorder=nodesfirst;\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=16;\n", opts.Title)
	}
	buf.WriteString("  node [shape=circle, style=filled, fixedsize=true, width=0.86, fontsize=8];\n")
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=1.5, arrowsize=1.2];\n", render.EdgeColor)
	buf.WriteString("\n")

	for _, n := range nodesInDrawOrder(g) {
		st, err := styles.StyleFor(n.Category)
		if err != nil {
			return "", err
		}
		p, ok := pos[n.ID]
		if !ok {
			return "", fmt.Errorf("no position for node %q", n.ID)
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, color=%q, pos=\"%.4f,%.4f!\"];\n",
			n.ID, n.Label(), st.Fill, st.Border, p.X*scale, p.Y*scale)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// nodesInDrawOrder groups nodes essential, recommended, optional, then any
// other category by name, keeping id order within a group. It matches the
// layer order of [render.Render].
func nodesInDrawOrder(g *graph.Graph) []graph.Node {
	known := catalog.Categories()
	rank := func(c catalog.Category) int {
		if i := slices.Index(known, c); i >= 0 {
			return i
		}
		return len(known)
	}
	nodes := g.Nodes()
	slices.SortStableFunc(nodes, func(a, b graph.Node) int {
		if d := cmp.Compare(rank(a.Category), rank(b.Category)); d != 0 {
			return d
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return nodes
}

// RenderSVG renders DOT produced by [ToDOT] to SVG with the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// width and height match the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
