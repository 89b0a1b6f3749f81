// Package graph assembles the roadmap catalog into a directed graph.
//
// # Overview
//
// [Build] turns a [catalog.Catalog] into a [Graph] with one [Node] per
// subject and one [Edge] per connection. Nodes are explicit records: their
// name, category and flattened book strings are copied from the catalog so
// later stages never reach back into it.
//
//	g, err := graph.Build(catalog.Default())
//	if err != nil {
//	    var de *errors.DanglingEdgeError
//	    // errors.As(err, &de) reports the missing endpoint
//	}
//
// # Edges
//
// Edges are kept in insertion order with their multiplicity: declaring the
// same connection twice yields two parallel edges, and a self-loop is
// accepted. Both endpoints must already be nodes; [Graph.AddEdge] never
// creates a node implicitly.
//
// # Serialization
//
// [WriteGraph] and [ReadGraph] exchange graphs as JSON using [Document].
// Nodes are sorted by ID so output is stable across runs.
package graph
