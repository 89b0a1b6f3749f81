package layout

import (
	"math"
	"math/rand/v2"

	"github.com/mathroadmap/mathroadmap/pkg/graph"
)

const springMinDistance = 0.01

// SpringLayout is a Fruchterman-Reingold simulation: every pair of nodes
// repels with force K²/d, connected nodes attract with force d²/K, and the
// maximum step shrinks linearly to zero over Iterations rounds.
//
// Initial positions are uniform in the unit square, drawn in ID order from
// a PCG generator seeded with Seed, so equal inputs give equal outputs.
type SpringLayout struct {
	Seed       uint64
	Iterations int
	K          float64
	Scale      float64
}

// Layout implements [Layouter].
func (l SpringLayout) Layout(g *graph.Graph) (Positions, error) {
	l.setDefaults()
	ids := g.NodeIDs()
	n := len(ids)
	if n == 0 {
		return Positions{}, nil
	}
	if n == 1 {
		return Positions{ids[0]: {}}, nil
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		if i == j {
			continue
		}
		adj[i][j]++
		adj[j][i]++
	}

	rng := rand.New(rand.NewPCG(l.Seed, l.Seed^0xdeadbeef))
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: rng.Float64(), Y: rng.Float64()}
	}

	l.simulate(pts, adj)
	rescale(pts, l.Scale)
	return collect(ids, pts)
}

func (l *SpringLayout) setDefaults() {
	if l.Seed == 0 {
		l.Seed = DefaultSeed
	}
	if l.Iterations == 0 {
		l.Iterations = DefaultIterations
	}
	if l.K == 0 {
		l.K = DefaultK
	}
	if l.Scale == 0 {
		l.Scale = DefaultScale
	}
}

func (l SpringLayout) simulate(pts []Point, adj [][]float64) {
	n := len(pts)
	k := l.K

	// Initial temperature is a tenth of the spread of the start positions.
	lo, hi := bounds(pts)
	t := math.Max(hi.X-lo.X, hi.Y-lo.Y) * 0.1
	dt := t / float64(l.Iterations+1)

	disp := make([]Point, n)
	for range l.Iterations {
		for i := range n {
			disp[i] = Point{}
			for j := range n {
				if i == j {
					continue
				}
				dx, dy := pts[i].X-pts[j].X, pts[i].Y-pts[j].Y
				d := math.Max(math.Hypot(dx, dy), springMinDistance)
				f := k*k/(d*d) - adj[i][j]*d/k
				disp[i].X += dx * f
				disp[i].Y += dy * f
			}
		}
		for i := range n {
			length := math.Max(math.Hypot(disp[i].X, disp[i].Y), springMinDistance)
			pts[i].X += disp[i].X * t / length
			pts[i].Y += disp[i].Y * t / length
		}
		t -= dt
	}
}
