package graph

import (
	"github.com/mathroadmap/mathroadmap/pkg/catalog"
)

// Build converts a catalog into a graph: one node per subject and one edge
// per connection, in declaration order. Duplicate connections become
// parallel edges.
//
// A connection naming a subject the catalog does not define fails with an
// errors.DanglingEdgeError; nothing is created implicitly for it.
func Build(cat *catalog.Catalog) (*Graph, error) {
	g := New()
	subjects := cat.Subjects()
	for _, id := range cat.SubjectIDs() {
		if err := g.AddNode(nodeFromSubject(subjects[id])); err != nil {
			return nil, err
		}
	}
	for _, c := range cat.Connections() {
		if err := g.AddEdge(Edge{From: c.From, To: c.To}); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func nodeFromSubject(s catalog.Subject) Node {
	n := Node{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
	}
	if len(s.Books) > 0 {
		n.Books = make([]string, len(s.Books))
		for i, b := range s.Books {
			n.Books[i] = b.String()
		}
	}
	return n
}
