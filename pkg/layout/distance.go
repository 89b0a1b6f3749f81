package layout

import (
	"fmt"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"

	"github.com/mathroadmap/mathroadmap/pkg/graph"
)

// hopDistances returns the all-pairs shortest path lengths of the
// undirected view of g, indexed like ids. Pairs in different components get
// one more than the largest finite distance so they settle just beyond the
// farthest connected pair.
func hopDistances(g *graph.Graph, ids []string) ([][]float64, error) {
	ug := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for _, id := range ids {
		if err := ug.AddVertex(id); err != nil {
			return nil, fmt.Errorf("add vertex %s: %w", id, err)
		}
	}
	for _, e := range g.Edges() {
		if _, err := ug.AddEdge(e.From, e.To, 0); err != nil {
			return nil, fmt.Errorf("add edge %s -> %s: %w", e.From, e.To, err)
		}
	}

	n := len(ids)
	dist := make([][]float64, n)
	maxDist := 0.0
	for i, id := range ids {
		res, err := bfs.BFS(ug, id)
		if err != nil {
			return nil, fmt.Errorf("bfs from %s: %w", id, err)
		}
		dist[i] = make([]float64, n)
		for j, other := range ids {
			d, ok := res.Depth[other]
			if !ok {
				dist[i][j] = -1
				continue
			}
			dist[i][j] = float64(d)
			if dist[i][j] > maxDist {
				maxDist = dist[i][j]
			}
		}
	}

	unreachable := maxDist + 1
	for i := range dist {
		for j := range dist[i] {
			if dist[i][j] < 0 {
				dist[i][j] = unreachable
			}
		}
	}
	return dist, nil
}
