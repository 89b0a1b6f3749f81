package graph

import (
	"errors"
	"maps"
	"slices"

	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")
)

// Node is a subject in the roadmap graph. Its attributes are copied from the
// catalog; Books holds the flattened "<title> by <author>" strings in the
// subject's reading order.
type Node struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category catalog.Category `json:"category"`
	Books    []string         `json:"books,omitempty"`
}

// Label returns the display name, falling back to the ID.
func (n Node) Label() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// Edge is a directed prerequisite connection between two nodes.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is a directed multigraph of roadmap subjects. Parallel edges and
// self-loops are kept exactly as added; edges preserve insertion order.
//
// The zero value is not usable - use [New] or [Build].
// Graph is not safe for concurrent mutation. Each pipeline run builds its own.
type Graph struct {
	nodes    map[string]*Node
	edges    []Edge
	outgoing map[string][]string // nodeID -> children IDs
	incoming map[string][]string // nodeID -> parent IDs
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a node to the graph. Returns ErrInvalidNodeID if the ID is
// empty, or ErrDuplicateNodeID if a node with the same ID already exists.
// The Books slice is copied.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	n.Books = slices.Clone(n.Books)
	g.nodes[n.ID] = &n
	return nil
}

// AddEdge adds a directed edge between two existing nodes. An endpoint that
// is not a node fails with an [rmerrors.DanglingEdgeError]; the source is
// reported first when both are missing. Duplicates and self-loops are allowed.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return &rmerrors.DanglingEdgeError{From: e.From, To: e.To, Missing: e.From}
	}
	if _, ok := g.nodes[e.To]; !ok {
		return &rmerrors.DanglingEdgeError{From: e.From, To: e.To, Missing: e.To}
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// Node returns a copy of the node with the given ID and true, or the zero
// Node and false if not found.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	out := *n
	out.Books = slices.Clone(n.Books)
	return out, true
}

// HasNode reports whether the graph contains a node with the given ID.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeIDs returns all node IDs in ascending order.
func (g *Graph) NodeIDs() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Nodes returns copies of all nodes sorted by ID.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.nodes))
	for _, id := range g.NodeIDs() {
		n, _ := g.Node(id)
		nodes = append(nodes, n)
	}
	return nodes
}

// NodesByCategory returns copies of the nodes in category c sorted by ID.
func (g *Graph) NodesByCategory(c catalog.Category) []Node {
	var nodes []Node
	for _, n := range g.Nodes() {
		if n.Category == c {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph, counting duplicates.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Children returns the IDs of the subjects this node is a prerequisite for.
// The returned slice should not be modified.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the IDs of the prerequisites of this node.
// The returned slice should not be modified.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// OutDegree returns the number of outgoing edges from the node.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges to the node.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Roots returns the IDs of nodes without prerequisites, sorted.
// These are the natural starting points of the roadmap.
func (g *Graph) Roots() []string {
	var roots []string
	for _, id := range g.NodeIDs() {
		if len(g.incoming[id]) == 0 {
			roots = append(roots, id)
		}
	}
	return roots
}
