// Package nodelink renders laid-out roadmaps through Graphviz.
//
// [ToDOT] writes DOT source with each subject pinned at the position computed
// by the layout package and colored from the render style table.
// [RenderSVG] runs the in-process neato engine from
// [github.com/goccy/go-graphviz], which keeps pinned positions and routes
// the arrows:
//
//	dot, err := nodelink.ToDOT(g, pos, render.Styles(), nodelink.Options{Title: "Roadmap"})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT text can also be saved and processed with external Graphviz tools.
package nodelink
