package render

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
	"github.com/mathroadmap/mathroadmap/pkg/graph"
	"github.com/mathroadmap/mathroadmap/pkg/layout"
)

// threeCategories has one node per category, deliberately added in reverse
// draw order.
func threeCategories(t *testing.T) (*graph.Graph, layout.Positions) {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode(graph.Node{ID: "Opt", Name: "Optional Thing", Category: catalog.Optional}))
	require.NoError(t, g.AddNode(graph.Node{ID: "Rec", Name: "Recommended Thing", Category: catalog.Recommended}))
	require.NoError(t, g.AddNode(graph.Node{ID: "Ess", Name: "Essential Thing", Category: catalog.Essential}))
	require.NoError(t, g.AddEdge(graph.Edge{From: "Ess", To: "Rec"}))
	require.NoError(t, g.AddEdge(graph.Edge{From: "Rec", To: "Opt"}))

	pos := layout.Positions{
		"Ess": {X: -1, Y: -1},
		"Rec": {X: 0, Y: 1},
		"Opt": {X: 1, Y: -1},
	}
	return g, pos
}

func TestRenderOneNodePerCategory(t *testing.T) {
	g, pos := threeCategories(t)
	s, err := Render(g, pos, Styles(), WithSize(800, 600))
	require.NoError(t, err)

	require.Len(t, s.Layers, 3)
	fills := map[string]bool{}
	for _, l := range s.Layers {
		require.Len(t, l.Nodes, 1)
		fills[l.Nodes[0].Fill] = true
	}
	assert.Len(t, fills, 3, "each category has its own fill")

	assert.Equal(t, "Ess", s.Layers[0].Nodes[0].ID)
	assert.Equal(t, "#dae8fc", s.Layers[0].Nodes[0].Fill)
	assert.Equal(t, "#6c8ebf", s.Layers[0].Nodes[0].Border)
	assert.Equal(t, "#e1d5e7", s.Layers[1].Nodes[0].Fill)
	assert.Equal(t, "#9673a6", s.Layers[1].Nodes[0].Border)
	assert.Equal(t, "#fff2cc", s.Layers[2].Nodes[0].Fill)
	assert.Equal(t, "#d6b656", s.Layers[2].Nodes[0].Border)
}

func TestRenderDrawOrder(t *testing.T) {
	g, pos := threeCategories(t)
	s, err := Render(g, pos, Styles(), WithTitle("Roadmap"))
	require.NoError(t, err)

	var cats []catalog.Category
	for _, l := range s.Layers {
		cats = append(cats, l.Category)
	}
	assert.Equal(t, catalog.Categories(), cats)

	require.Len(t, s.Edges, 2)
	for _, e := range s.Edges {
		assert.Equal(t, EdgeColor, e.Color)
		assert.Equal(t, EdgeWidth, e.Width)
		assert.Positive(t, e.HeadLength)
	}

	require.Len(t, s.Labels, 3)
	for _, l := range s.Labels {
		assert.Equal(t, LabelSize, l.Size)
	}
	require.NotNil(t, s.Title)
	assert.Equal(t, "Roadmap", s.Title.Text)
	assert.Equal(t, TitleSize, s.Title.Size)
}

func TestRenderUnknownCategory(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode(graph.Node{ID: "X", Category: "bonus"}))

	_, err := Render(g, layout.Positions{"X": {}}, Styles())
	var uce *rmerrors.UnknownCategoryError
	require.True(t, errors.As(err, &uce), "err = %v", err)
	assert.Equal(t, "bonus", uce.Category)
	assert.True(t, rmerrors.Is(err, rmerrors.ErrCodeUnknownCategory))
}

func TestRenderPartialStyleTable(t *testing.T) {
	g, pos := threeCategories(t)
	styles := Styles()
	delete(styles, catalog.Optional)

	_, err := Render(g, pos, styles)
	assert.True(t, rmerrors.Is(err, rmerrors.ErrCodeUnknownCategory))
}

func TestRenderMissingPosition(t *testing.T) {
	g, pos := threeCategories(t)
	delete(pos, "Rec")

	_, err := Render(g, pos, Styles())
	assert.True(t, rmerrors.Is(err, rmerrors.ErrCodeInvalidInput))
}

func TestRenderOptionsValidated(t *testing.T) {
	g, pos := threeCategories(t)
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero width", WithSize(0, 100)},
		{"negative radius", WithNodeRadius(-1)},
		{"negative margin", WithMargin(-5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(g, pos, Styles(), tt.opt)
			assert.True(t, rmerrors.Is(err, rmerrors.ErrCodeInvalidInput))
		})
	}
}

func TestRenderFitsCanvas(t *testing.T) {
	g, err := graph.Build(catalog.Default())
	require.NoError(t, err)
	pos, err := layout.Compute(g, layout.DefaultOptions())
	require.NoError(t, err)

	s, err := Render(g, pos, Styles(), WithSize(1200, 900), WithNodeRadius(20), WithMargin(10), WithTitle(TitleKamadaKawai))
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), s.NodeCount())
	assert.Len(t, s.Labels, g.NodeCount())

	for _, l := range s.Layers {
		for _, n := range l.Nodes {
			assert.GreaterOrEqual(t, n.X-n.R, 10.0-1e-9, n.ID)
			assert.LessOrEqual(t, n.X+n.R, 1200.0-10+1e-9, n.ID)
			assert.Greater(t, n.Y-n.R, s.Title.Y, "%s overlaps the title", n.ID)
			assert.LessOrEqual(t, n.Y+n.R, 900.0-10+1e-9, n.ID)
		}
	}
}

func TestRenderYAxisPointsUp(t *testing.T) {
	g, pos := threeCategories(t)
	s, err := Render(g, pos, Styles())
	require.NoError(t, err)

	centers := map[string]Circle{}
	for _, l := range s.Layers {
		for _, n := range l.Nodes {
			centers[n.ID] = n
		}
	}
	assert.Less(t, centers["Rec"].Y, centers["Ess"].Y, "higher layout y is nearer the top")
	assert.Less(t, centers["Ess"].X, centers["Opt"].X)
}

func TestRenderSkipsSelfLoops(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode(graph.Node{ID: "A", Category: catalog.Essential}))
	require.NoError(t, g.AddEdge(graph.Edge{From: "A", To: "A"}))

	s, err := Render(g, layout.Positions{"A": {}}, Styles())
	require.NoError(t, err)
	assert.Empty(t, s.Edges)
	assert.Equal(t, 1, s.NodeCount())
}

func TestArrowHead(t *testing.T) {
	a := arrowBetween(layout.Point{X: 0, Y: 0}, layout.Point{X: 100, Y: 0}, 10)
	assert.InDelta(t, 10, a.X1, 1e-9)
	assert.InDelta(t, 90, a.X2, 1e-9)

	bx, by := a.Shaft()
	assert.InDelta(t, 90-a.HeadLength, bx, 1e-9)
	assert.InDelta(t, 0, by, 1e-9)

	h := a.Head()
	assert.Equal(t, layout.Point{X: 90, Y: 0}, h[0])
	assert.InDelta(t, a.HeadWidth, h[1].Y-h[2].Y, 1e-9)
}

func TestArrowBetweenCloseDiscs(t *testing.T) {
	tests := []struct {
		name      string
		to        layout.Point
		x1, x2    float64
		maxLength float64
	}{
		{"narrow gap", layout.Point{X: 24}, 10, 14, 4},
		{"overlapping", layout.Point{X: 5}, 0, 5, 2.5},
		{"touching", layout.Point{X: 20}, 0, 20, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := arrowBetween(layout.Point{}, tt.to, 10)
			assert.InDelta(t, tt.x1, a.X1, 1e-9)
			assert.InDelta(t, tt.x2, a.X2, 1e-9)
			assert.Positive(t, a.HeadLength)
			assert.LessOrEqual(t, a.HeadLength, tt.maxLength+1e-9)

			bx, _ := a.Shaft()
			assert.GreaterOrEqual(t, bx, a.X1-1e-9, "head must not reach behind the tail")
		})
	}

	same := arrowBetween(layout.Point{X: 3, Y: 4}, layout.Point{X: 3, Y: 4}, 10)
	assert.Zero(t, same.HeadLength)
	assert.Equal(t, same.X1, same.X2)
}

func TestRenderKeepsEveryEdge(t *testing.T) {
	g, err := graph.Build(catalog.Default())
	require.NoError(t, err)

	for _, alg := range []layout.Algorithm{layout.KamadaKawai, layout.Spring} {
		t.Run(string(alg), func(t *testing.T) {
			opts := layout.DefaultOptions()
			opts.Algorithm = alg
			pos, err := layout.Compute(g, opts)
			require.NoError(t, err)

			s, err := Render(g, pos, Styles(), WithTitle(DefaultTitle(alg)))
			require.NoError(t, err)
			require.Len(t, s.Edges, g.EdgeCount())
			for i, e := range g.Edges() {
				assert.Equal(t, e.From, s.Edges[i].From)
				assert.Equal(t, e.To, s.Edges[i].To)
			}
		})
	}
}

func TestRenderSmallCanvasKeepsEdges(t *testing.T) {
	cat := catalog.MustNew([]catalog.Subject{
		{ID: "A", Name: "A", Category: catalog.Essential},
		{ID: "B", Name: "B", Category: catalog.Optional},
	}, []catalog.Connection{{From: "A", To: "B"}})
	g, err := graph.Build(cat)
	require.NoError(t, err)
	pos, err := layout.Compute(g, layout.DefaultOptions())
	require.NoError(t, err)

	s, err := Render(g, pos, Styles(), WithSize(150, 150))
	require.NoError(t, err)
	require.Len(t, s.Edges, 1)
	assert.Equal(t, "A", s.Edges[0].From)
	assert.Equal(t, "B", s.Edges[0].To)
}

func TestDefaultTitle(t *testing.T) {
	assert.Equal(t, "Mathematics Learning Roadmap", DefaultTitle(layout.KamadaKawai))
	assert.Equal(t, "Complete Mathematics Learning Roadmap", DefaultTitle(layout.Spring))
}

func TestSceneSVG(t *testing.T) {
	g, pos := threeCategories(t)
	g2 := graph.New()
	for _, n := range g.Nodes() {
		if n.ID == "Ess" {
			n.Name = "Logic & Sets"
		}
		require.NoError(t, g2.AddNode(n))
	}
	for _, e := range g.Edges() {
		require.NoError(t, g2.AddEdge(e))
	}

	s, err := Render(g2, pos, Styles(), WithTitle("Roadmap"))
	require.NoError(t, err)
	svg := string(s.SVG())

	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.Contains(t, svg, "Logic &amp; Sets")
	assert.NotContains(t, svg, "axis")

	order := []string{`data-category="essential"`, `data-category="recommended"`, `data-category="optional"`,
		`class="edges"`, `class="labels"`, `class="title"`}
	last := -1
	for _, marker := range order {
		i := strings.Index(svg, marker)
		require.GreaterOrEqual(t, i, 0, "missing %s", marker)
		assert.Greater(t, i, last, "%s out of order", marker)
		last = i
	}
	assert.Equal(t, 2, strings.Count(svg, "<polygon"))
}

func TestSceneRasterize(t *testing.T) {
	g, pos := threeCategories(t)
	s, err := Render(g, pos, Styles(), WithSize(320, 240), WithNodeRadius(20), WithTitle("Roadmap"))
	require.NoError(t, err)

	c, err := s.Rasterize()
	require.NoError(t, err)
	defer c.Close()

	b := c.Image().Bounds()
	assert.Equal(t, 320, b.Dx())
	assert.Equal(t, 240, b.Dy())

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, b, img.Bounds())

	// Background stays white in the corner; the essential disc is not white.
	r, gr, bl, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, gr, bl})
	ess := s.Layers[0].Nodes[0]
	r, gr, bl, _ = img.At(int(ess.X)+int(ess.R/2), int(ess.Y)+int(ess.R/2)).RGBA()
	assert.NotEqual(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, gr, bl})
}
