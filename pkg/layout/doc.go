// Package layout computes 2D positions for roadmap graphs.
//
// # Algorithms
//
// Two strategies are available and selected by name through [Options]:
//
//   - [KamadaKawai] (default): hop distances between all pairs are computed
//     by breadth-first search on the undirected graph, and node positions
//     are refined by Newton-Raphson until the spring energy is stationary.
//     The start is a circle in node-ID order, so there is no randomness.
//   - [Spring]: a Fruchterman-Reingold simulation with a fixed seed (42),
//     iteration count (50) and optimal distance k (2). Changing the seed
//     changes the picture.
//
// Both return one coordinate per node, centered on the origin and scaled so
// the largest absolute coordinate equals [Options.Scale].
//
//	pos, err := layout.Compute(g, layout.Options{Algorithm: layout.Spring})
//
// Nodes in different connected components are treated as one hop farther
// apart than the most distant connected pair.
package layout
