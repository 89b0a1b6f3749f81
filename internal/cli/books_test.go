package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/mathroadmap/mathroadmap/pkg/bookshelf"
	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	"github.com/mathroadmap/mathroadmap/pkg/graph"
)

// smallShelf builds the two-subject roadmap A -> B where only A has a book.
func smallShelf(t *testing.T) bookshelf.Shelf {
	t.Helper()
	cat, err := catalog.New([]catalog.Subject{
		{ID: "A", Name: "Alpha", Category: catalog.Essential, Books: []catalog.Book{
			{Title: "T", Author: "Au", Category: catalog.Essential},
		}},
		{ID: "B", Name: "Beta", Category: catalog.Optional},
	}, []catalog.Connection{{From: "A", To: "B"}})
	if err != nil {
		t.Fatal(err)
	}
	g, err := graph.Build(cat)
	if err != nil {
		t.Fatal(err)
	}
	return bookshelf.Build(g)
}

func TestWriteBooks(t *testing.T) {
	shelf := smallShelf(t)

	tests := []struct {
		name   string
		tab    string
		format string
		want   string
	}{
		{"markdown all", "all", "markdown", "### Alpha\n\n- T by Au\n\n---\n\n"},
		{"markdown alias", "Essential", "md", "### Alpha\n\n- T by Au\n\n---\n\n"},
		{"empty tab", "optional", "markdown", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeBooks(&buf, shelf, tt.tab, tt.format); err != nil {
				t.Fatalf("writeBooks: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteBooksStructured(t *testing.T) {
	shelf := smallShelf(t)

	var js bytes.Buffer
	if err := writeBooks(&js, shelf, "essential", "json"); err != nil {
		t.Fatal(err)
	}
	var tab bookshelf.Tab
	if err := json.Unmarshal(js.Bytes(), &tab); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if tab.Name != bookshelf.TabEssential || len(tab.Entries) != 1 || tab.Entries[0].Books[0] != "T by Au" {
		t.Errorf("unexpected tab %+v", tab)
	}

	var ym bytes.Buffer
	if err := writeBooks(&ym, shelf, "all", "yaml"); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := yaml.Unmarshal(ym.Bytes(), &decoded); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if decoded["name"] != bookshelf.TabAll {
		t.Errorf("yaml name = %v, want All", decoded["name"])
	}
}

func TestWriteBooksErrors(t *testing.T) {
	shelf := smallShelf(t)

	if err := writeBooks(&bytes.Buffer{}, shelf, "bonus", "markdown"); err == nil || !strings.Contains(err.Error(), "INVALID_INPUT") {
		t.Errorf("unknown tab: err = %v", err)
	}
	if err := writeBooks(&bytes.Buffer{}, shelf, "all", "pdf"); err == nil || !strings.Contains(err.Error(), "INVALID_FORMAT") {
		t.Errorf("unknown format: err = %v", err)
	}
}

func TestBooksCommand(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "books", "--tab", "optional")
	if err != nil {
		t.Fatalf("books: %v", err)
	}
	if !strings.HasPrefix(out, "### Introduction to Physics\n") {
		t.Errorf("optional tab should start with Introduction to Physics, got %q", firstLine(out))
	}
	if strings.Contains(out, "### Calculus") {
		t.Error("essential subject leaked into the optional tab")
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// =============================================================================
// BookBrowserModel
// =============================================================================

func press(m tea.Model, keys ...string) BookBrowserModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m.(BookBrowserModel)
}

func TestBookBrowserTabs(t *testing.T) {
	m := NewBookBrowserModel(smallShelf(t))

	if got := press(m, "right").Tab; got != 1 {
		t.Errorf("right: tab = %d, want 1", got)
	}
	if got := press(m, "left").Tab; got != 3 {
		t.Errorf("left wraps: tab = %d, want 3", got)
	}
	if got := press(m, "3").Tab; got != 2 {
		t.Errorf("3: tab = %d, want 2", got)
	}

	m.SelectTab("OPTIONAL")
	if m.Tab != 3 {
		t.Errorf("SelectTab: tab = %d, want 3", m.Tab)
	}
	m.SelectTab("bonus")
	if m.Tab != 3 {
		t.Error("unknown tab name should be ignored")
	}
}

func TestBookBrowserCursor(t *testing.T) {
	g, err := graph.Build(catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	m := NewBookBrowserModel(bookshelf.Build(g))
	m.Height = 3

	m = press(m, "down", "down", "down", "down")
	if m.Cursor != 4 || m.Offset != 2 {
		t.Errorf("cursor/offset = %d/%d, want 4/2", m.Cursor, m.Offset)
	}
	m = press(m, "up", "up", "up", "up", "up", "up")
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("cursor/offset = %d/%d, want 0/0", m.Cursor, m.Offset)
	}

	m = press(m, "down", "right")
	if m.Cursor != 0 {
		t.Error("switching tabs should reset the cursor")
	}
}

func TestBookBrowserView(t *testing.T) {
	m := NewBookBrowserModel(smallShelf(t))

	view := m.View()
	for _, want := range []string{"All (1)", "Optional (0)", "Alpha", "T by Au"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}

	m.SelectTab("optional")
	if !strings.Contains(m.View(), "no subjects with books") {
		t.Error("empty tab should say so")
	}
}

func TestBookBrowserQuit(t *testing.T) {
	m := NewBookBrowserModel(smallShelf(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}
