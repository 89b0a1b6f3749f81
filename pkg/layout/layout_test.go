package layout

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
	"github.com/mathroadmap/mathroadmap/pkg/graph"
)

func defaultGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build(catalog.Default())
	require.NoError(t, err)
	return g
}

func pathGraph(t *testing.T, ids ...string) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range ids {
		require.NoError(t, g.AddNode(graph.Node{ID: id, Name: id, Category: catalog.Essential}))
	}
	for i := 1; i < len(ids); i++ {
		require.NoError(t, g.AddEdge(graph.Edge{From: ids[i-1], To: ids[i]}))
	}
	return g
}

func assertWellFormed(t *testing.T, g *graph.Graph, pos Positions, scale float64) {
	t.Helper()
	require.Len(t, pos, g.NodeCount())
	for _, id := range g.NodeIDs() {
		p, ok := pos[id]
		require.True(t, ok, "missing position for %s", id)
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "NaN position for %s", id)
		assert.False(t, math.IsInf(p.X, 0) || math.IsInf(p.Y, 0), "infinite position for %s", id)
		assert.LessOrEqual(t, math.Abs(p.X), scale+1e-9, "%s x out of bounds", id)
		assert.LessOrEqual(t, math.Abs(p.Y), scale+1e-9, "%s y out of bounds", id)
	}
}

func TestComputeAllAlgorithms(t *testing.T) {
	g := defaultGraph(t)

	for _, alg := range Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			pos, err := Compute(g, Options{Algorithm: alg})
			require.NoError(t, err)
			assertWellFormed(t, g, pos, DefaultScale)
		})
	}
}

func TestComputeScale(t *testing.T) {
	g := defaultGraph(t)
	pos, err := Compute(g, Options{Algorithm: Spring, Scale: 10})
	require.NoError(t, err)
	assertWellFormed(t, g, pos, 10)

	lo, hi := pos.Bounds()
	span := math.Max(math.Max(-lo.X, hi.X), math.Max(-lo.Y, hi.Y))
	assert.InDelta(t, 10, span, 1e-9, "largest coordinate should touch the scale")
}

func TestKamadaKawaiDeterministic(t *testing.T) {
	g := defaultGraph(t)
	a, err := Compute(g, Options{Algorithm: KamadaKawai})
	require.NoError(t, err)
	b, err := Compute(defaultGraph(t), Options{Algorithm: KamadaKawai})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSpringDeterministic(t *testing.T) {
	g := defaultGraph(t)
	opts := Options{Algorithm: Spring, Seed: 42, Iterations: 50, K: 2}

	a, err := Compute(g, opts)
	require.NoError(t, err)
	b, err := Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSpringSeedChangesLayout(t *testing.T) {
	g := defaultGraph(t)
	a, err := Compute(g, Options{Algorithm: Spring, Seed: 42})
	require.NoError(t, err)
	b, err := Compute(g, Options{Algorithm: Spring, Seed: 7})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestKamadaKawaiPathIsStretched(t *testing.T) {
	g := pathGraph(t, "a", "b", "c", "d")
	pos, err := Compute(g, Options{Algorithm: KamadaKawai})
	require.NoError(t, err)

	d := func(x, y string) float64 {
		return math.Hypot(pos[x].X-pos[y].X, pos[x].Y-pos[y].Y)
	}
	assert.Greater(t, d("a", "d"), d("a", "b"), "ends of a path should be farther apart than neighbours")
	assert.Greater(t, d("a", "c"), d("a", "b"))
}

func TestSmallGraphs(t *testing.T) {
	tests := []struct {
		name string
		g    *graph.Graph
	}{
		{"empty", graph.New()},
		{"single", pathGraph(t, "only")},
		{"pair", pathGraph(t, "a", "b")},
		{"disconnected", func() *graph.Graph {
			g := pathGraph(t, "a", "b")
			require.NoError(t, g.AddNode(graph.Node{ID: "lonely", Category: catalog.Optional}))
			return g
		}()},
		{"self loop and duplicate", func() *graph.Graph {
			g := pathGraph(t, "a", "b")
			require.NoError(t, g.AddEdge(graph.Edge{From: "a", To: "b"}))
			require.NoError(t, g.AddEdge(graph.Edge{From: "b", To: "b"}))
			return g
		}()},
	}

	for _, tt := range tests {
		for _, alg := range Algorithms() {
			t.Run(tt.name+"/"+string(alg), func(t *testing.T) {
				pos, err := Compute(tt.g, Options{Algorithm: alg})
				require.NoError(t, err)
				assertWellFormed(t, tt.g, pos, DefaultScale)
			})
		}
	}
}

func TestSingleNodeAtOrigin(t *testing.T) {
	pos, err := Compute(pathGraph(t, "only"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Point{}, pos["only"])
}

func TestHopDistances(t *testing.T) {
	g := pathGraph(t, "a", "b", "c")
	require.NoError(t, g.AddNode(graph.Node{ID: "z"}))

	ids := g.NodeIDs()
	dist, err := hopDistances(g, ids)
	require.NoError(t, err)

	// ids: a b c z
	assert.Equal(t, []float64{0, 1, 2, 3}, dist[0])
	assert.Equal(t, []float64{1, 0, 1, 3}, dist[1])
	assert.Equal(t, 3.0, dist[3][0], "unreachable pairs use max distance + 1")
	assert.Equal(t, 0.0, dist[3][3])
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"", KamadaKawai, false},
		{"kamada-kawai", KamadaKawai, false},
		{"spring", Spring, false},
		{"circular", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if tt.wantErr {
				assert.True(t, rmerrors.Is(err, rmerrors.ErrCodeInvalidLayout))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", DefaultOptions(), false},
		{"unknown algorithm", Options{Algorithm: "circular"}, true},
		{"negative iterations", Options{Iterations: -1}, true},
		{"negative k", Options{K: -2}, true},
		{"negative scale", Options{Scale: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.True(t, rmerrors.Is(err, rmerrors.ErrCodeInvalidLayout), "err = %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, err := Compute(graph.New(), Options{Algorithm: "circular"})
	assert.True(t, rmerrors.Is(err, rmerrors.ErrCodeInvalidLayout))
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, KamadaKawai, o.Algorithm)
	assert.Equal(t, uint64(42), o.Seed)
	assert.Equal(t, 50, o.Iterations)
	assert.Equal(t, 2.0, o.K)
	assert.Equal(t, 1.0, o.Scale)
}

func TestPositionsMarshalJSON(t *testing.T) {
	pos := Positions{"b": {X: 1, Y: 2}, "a": {X: -1, Y: 0.5}}
	data, err := json.Marshal(pos)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","x":-1,"y":0.5},{"id":"b","x":1,"y":2}]`, string(data))
}
