// Package pkg provides the core libraries for the mathematics roadmap.
//
// # Overview
//
// Mathroadmap draws the prerequisite graph of mathematical subjects and
// collects a reading list for each subject. The pkg directory is organized
// into three areas:
//
//  1. Domain data and structure ([catalog], [graph])
//  2. Layout and drawing ([layout], [render], [render/nodelink], [bookshelf])
//  3. Orchestration and support ([pipeline], [config], [observability], [errors], [buildinfo])
//
// # Architecture
//
// The data flow through a render:
//
//	compiled-in subjects and connections
//	         ↓
//	    [catalog] (immutable registry, validated once)
//	         ↓
//	    [graph] (one node per subject, one edge per connection)
//	         ↓
//	    [layout] (Kamada–Kawai or seeded spring positions)
//	         ↓
//	    [render] (scene: discs by category, arrows, labels, title)
//	         ↓
//	    PNG / SVG / DOT / HTML bytes
//
// [bookshelf] groups the same graph into the All, Essential, Recommended and
// Optional reading-list tabs.
//
// # Quick Start
//
//	g, err := graph.Build(catalog.Default())
//	pos, err := layout.Compute(g, layout.DefaultOptions())
//	scene, err := render.Render(g, pos, render.Styles(),
//	    render.WithTitle(render.TitleKamadaKawai))
//	svg := scene.SVG()
//
// Or run every stage at once:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, catalog.Default(), pipeline.Options{
//	    Formats: []string{pipeline.FormatPNG, pipeline.FormatHTML},
//	})
//
// # Errors
//
// Failures carry codes from [errors]: a connection naming an unknown subject
// is a DANGLING_EDGE, a node whose category has no style is an
// UNKNOWN_CATEGORY. Both abort the run; nothing is drawn partially.
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Specific package
//	go test -run Example ./...   # Examples only
//
// [catalog]: https://pkg.go.dev/github.com/mathroadmap/mathroadmap/pkg/catalog
// [graph]: https://pkg.go.dev/github.com/mathroadmap/mathroadmap/pkg/graph
// [layout]: https://pkg.go.dev/github.com/mathroadmap/mathroadmap/pkg/layout
// [render]: https://pkg.go.dev/github.com/mathroadmap/mathroadmap/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/mathroadmap/mathroadmap/pkg/render/nodelink
// [bookshelf]: https://pkg.go.dev/github.com/mathroadmap/mathroadmap/pkg/bookshelf
// [pipeline]: https://pkg.go.dev/github.com/mathroadmap/mathroadmap/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/mathroadmap/mathroadmap/pkg/config
// [observability]: https://pkg.go.dev/github.com/mathroadmap/mathroadmap/pkg/observability
// [errors]: https://pkg.go.dev/github.com/mathroadmap/mathroadmap/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/mathroadmap/mathroadmap/pkg/buildinfo
package pkg
