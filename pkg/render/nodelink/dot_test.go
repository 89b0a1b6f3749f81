package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
	"github.com/mathroadmap/mathroadmap/pkg/graph"
	"github.com/mathroadmap/mathroadmap/pkg/layout"
	"github.com/mathroadmap/mathroadmap/pkg/render"
)

func sample(t *testing.T) (*graph.Graph, layout.Positions) {
	t.Helper()
	g := graph.New()
	for _, n := range []graph.Node{
		{ID: "Logic", Name: "Logic", Category: catalog.Essential},
		{ID: "Physics", Name: "Physics", Category: catalog.Optional},
	} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge(graph.Edge{From: "Logic", To: "Physics"}); err != nil {
		t.Fatal(err)
	}
	return g, layout.Positions{"Logic": {X: -0.5, Y: 0.25}, "Physics": {X: 1, Y: -1}}
}

func TestToDOT(t *testing.T) {
	g, pos := sample(t)
	dot, err := ToDOT(g, pos, render.Styles(), Options{Title: "Roadmap", Scale: 2})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	for _, want := range []string{
		"digraph G {",
		"layout=neato;",
		`label="Roadmap";`,
		`"Logic" [label="Logic", fillcolor="#dae8fc", color="#6c8ebf", pos="-1.0000,0.5000!"];`,
		`"Physics" [label="Physics", fillcolor="#fff2cc", color="#d6b656", pos="2.0000,-2.0000!"];`,
		`"Logic" -> "Physics";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
}

func TestToDOTNodesFollowDrawOrder(t *testing.T) {
	g := graph.New()
	for _, n := range []graph.Node{
		{ID: "A", Name: "A", Category: catalog.Optional},
		{ID: "B", Name: "B", Category: catalog.Essential},
		{ID: "C", Name: "C", Category: catalog.Recommended},
		{ID: "D", Name: "D", Category: catalog.Essential},
	} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	pos := layout.Positions{"A": {}, "B": {}, "C": {}, "D": {}}

	dot, err := ToDOT(g, pos, render.Styles(), Options{})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}
	var order []int
	for _, id := range []string{"B", "D", "C", "A"} {
		i := strings.Index(dot, `"`+id+`" [label=`)
		if i < 0 {
			t.Fatalf("DOT missing node %s", id)
		}
		order = append(order, i)
	}
	for i := 1; i < len(order); i++ {
		if order[i] < order[i-1] {
			t.Errorf("nodes not grouped essential, recommended, optional:\n%s", dot)
			break
		}
	}
}

func TestToDOTUnknownCategory(t *testing.T) {
	g := graph.New()
	if err := g.AddNode(graph.Node{ID: "X", Category: "bonus"}); err != nil {
		t.Fatal(err)
	}
	_, err := ToDOT(g, layout.Positions{"X": {}}, render.Styles(), Options{})
	if !rmerrors.Is(err, rmerrors.ErrCodeUnknownCategory) {
		t.Fatalf("err = %v, want UNKNOWN_CATEGORY", err)
	}
}

func TestToDOTMissingPosition(t *testing.T) {
	g, _ := sample(t)
	if _, err := ToDOT(g, layout.Positions{}, render.Styles(), Options{}); err == nil {
		t.Fatal("expected error for missing position")
	}
}

func TestRenderSVG(t *testing.T) {
	g, pos := sample(t)
	dot, err := ToDOT(g, pos, render.Styles(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	s := string(svg)
	if !strings.Contains(s, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("header not normalized:\n%.300s", s)
	}
	if !strings.Contains(s, "Physics") {
		t.Error("label missing from SVG")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}
