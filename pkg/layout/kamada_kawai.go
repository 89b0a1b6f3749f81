package layout

import (
	"math"

	"github.com/mathroadmap/mathroadmap/pkg/graph"
)

const (
	kkEpsilon       = 1e-4 // stop once every node's gradient norm is below this
	kkMaxOuterSteps = 5000 // node moves across the whole run
	kkMaxInnerSteps = 50   // Newton steps per selected node
	kkMinDistance   = 1e-9
)

// KamadaKawaiLayout minimises the Kamada-Kawai spring energy, where the
// ideal length between two nodes is proportional to their hop distance.
// Nodes start on a circle in ID order, so the result depends only on the
// graph.
type KamadaKawaiLayout struct {
	Scale float64
}

// Layout implements [Layouter].
func (l KamadaKawaiLayout) Layout(g *graph.Graph) (Positions, error) {
	ids := g.NodeIDs()
	n := len(ids)
	scale := l.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	if n == 0 {
		return Positions{}, nil
	}
	if n == 1 {
		return Positions{ids[0]: {}}, nil
	}

	dist, err := hopDistances(g, ids)
	if err != nil {
		return nil, err
	}
	pts := circle(n)
	kk := newKKSystem(dist, pts)
	kk.minimise()

	rescale(kk.pts, scale)
	return collect(ids, kk.pts)
}

// circle places n points evenly on the unit circle, starting at angle 0.
func circle(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return pts
}

type kkSystem struct {
	pts []Point
	l   [][]float64 // ideal lengths
	k   [][]float64 // spring strengths
}

func newKKSystem(dist [][]float64, pts []Point) *kkSystem {
	n := len(pts)
	maxDist := 0.0
	for i := range dist {
		for j := range dist[i] {
			maxDist = math.Max(maxDist, dist[i][j])
		}
	}
	// Side length of the display square is 2 (the unit circle's diameter).
	unit := 2.0 / maxDist

	s := &kkSystem{pts: pts, l: make([][]float64, n), k: make([][]float64, n)}
	for i := range n {
		s.l[i] = make([]float64, n)
		s.k[i] = make([]float64, n)
		for j := range n {
			if i == j || dist[i][j] == 0 {
				continue
			}
			s.l[i][j] = unit * dist[i][j]
			s.k[i][j] = 1 / (dist[i][j] * dist[i][j])
		}
	}
	return s
}

// gradient returns the partial derivatives of the energy with respect to
// node m's coordinates.
func (s *kkSystem) gradient(m int) (ex, ey float64) {
	pm := s.pts[m]
	for i, pi := range s.pts {
		if i == m || s.k[m][i] == 0 {
			continue
		}
		dx, dy := pm.X-pi.X, pm.Y-pi.Y
		d := math.Hypot(dx, dy)
		if d < kkMinDistance {
			continue
		}
		ex += s.k[m][i] * (dx - s.l[m][i]*dx/d)
		ey += s.k[m][i] * (dy - s.l[m][i]*dy/d)
	}
	return ex, ey
}

// hessian returns the second partial derivatives for node m.
func (s *kkSystem) hessian(m int) (exx, exy, eyy float64) {
	pm := s.pts[m]
	for i, pi := range s.pts {
		if i == m || s.k[m][i] == 0 {
			continue
		}
		dx, dy := pm.X-pi.X, pm.Y-pi.Y
		d := math.Hypot(dx, dy)
		if d < kkMinDistance {
			continue
		}
		d3 := d * d * d
		exx += s.k[m][i] * (1 - s.l[m][i]*dy*dy/d3)
		exy += s.k[m][i] * (s.l[m][i] * dx * dy / d3)
		eyy += s.k[m][i] * (1 - s.l[m][i]*dx*dx/d3)
	}
	return exx, exy, eyy
}

// maxDelta returns the node with the largest gradient norm. Ties go to the
// lowest index.
func (s *kkSystem) maxDelta() (int, float64) {
	best, bestDelta := -1, -1.0
	for m := range s.pts {
		ex, ey := s.gradient(m)
		if delta := math.Hypot(ex, ey); delta > bestDelta {
			best, bestDelta = m, delta
		}
	}
	return best, bestDelta
}

func (s *kkSystem) minimise() {
	for range kkMaxOuterSteps {
		m, delta := s.maxDelta()
		if delta < kkEpsilon {
			return
		}
		for range kkMaxInnerSteps {
			ex, ey := s.gradient(m)
			if math.Hypot(ex, ey) < kkEpsilon {
				break
			}
			exx, exy, eyy := s.hessian(m)
			det := exx*eyy - exy*exy
			if math.Abs(det) < 1e-12 {
				break
			}
			dx := (-ex*eyy + exy*ey) / det
			dy := (-exx*ey + exy*ex) / det
			if !finite(dx) || !finite(dy) {
				break
			}
			s.pts[m].X += dx
			s.pts[m].Y += dy
		}
	}
}
