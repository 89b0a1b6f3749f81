// Package render draws laid-out roadmap graphs.
//
// # Overview
//
// [Render] turns a graph and its positions into a [Scene], an ordered
// display list. Painting always follows the same order:
//
//  1. Node discs, grouped by category: essential, then recommended, then
//     optional. Each group uses its fill and border color from the
//     [StyleTable].
//  2. Every directed edge as a gray line with an arrowhead.
//  3. The subject name centered on each node.
//  4. The title.
//
// No axes are drawn. A node whose category is missing from the style table
// makes [Render] fail with an UnknownCategoryError.
//
// # Sinks
//
// Sinks never touch the filesystem; callers decide where bytes go.
//
//	scene, err := render.Render(g, pos, render.Styles(), render.WithTitle(render.TitleKamadaKawai))
//	canvas, err := scene.Rasterize() // gogpu/gg raster, Go Regular labels
//	defer canvas.Close()
//	err = canvas.EncodePNG(w)
//	svg := scene.SVG()
//
// The [nodelink] subpackage offers a Graphviz rendering of the same
// positions.
//
// [nodelink]: github.com/mathroadmap/mathroadmap/pkg/render/nodelink
package render
