package bookshelf

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
	"github.com/mathroadmap/mathroadmap/pkg/graph"
)

// Tab names, in display order.
const (
	TabAll         = "All"
	TabEssential   = "Essential"
	TabRecommended = "Recommended"
	TabOptional    = "Optional"
)

// TabNames returns the tab names in display order.
func TabNames() []string {
	return []string{TabAll, TabEssential, TabRecommended, TabOptional}
}

// Entry is one subject with its reading list.
type Entry struct {
	ID       string           `json:"id" yaml:"id"`
	Name     string           `json:"name" yaml:"name"`
	Category catalog.Category `json:"category" yaml:"category"`
	Books    []string         `json:"books" yaml:"books"`
}

// Tab is a filtered view of the shelf. Category is empty for the All tab.
type Tab struct {
	Name     string           `json:"name" yaml:"name"`
	Category catalog.Category `json:"category,omitempty" yaml:"category,omitempty"`
	Entries  []Entry          `json:"entries" yaml:"entries"`
}

// BookCount returns the number of books listed in the tab.
func (t Tab) BookCount() int {
	n := 0
	for _, e := range t.Entries {
		n += len(e.Books)
	}
	return n
}

// Shelf holds the four tabs.
type Shelf struct {
	Tabs []Tab `json:"tabs" yaml:"tabs"`
}

// Tab returns the tab with the given name, compared case-insensitively.
func (s Shelf) Tab(name string) (Tab, bool) {
	for _, t := range s.Tabs {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Tab{}, false
}

// Lookup is like [Shelf.Tab] but reports unknown names as INVALID_INPUT.
func (s Shelf) Lookup(name string) (Tab, error) {
	t, ok := s.Tab(name)
	if !ok {
		return Tab{}, rmerrors.New(rmerrors.ErrCodeInvalidInput,
			"unknown tab %q (must be one of %s)", name, strings.ToLower(strings.Join(TabNames(), ", ")))
	}
	return t, nil
}

// Build collects the reading lists of g into tabs. Entries are sorted by
// subject name, ties broken by ID. A subject appears under All and under the
// tab of its category; subjects without books appear nowhere.
func Build(g *graph.Graph) Shelf {
	entries := []Entry{}
	for _, n := range g.Nodes() {
		if len(n.Books) == 0 {
			continue
		}
		entries = append(entries, Entry{
			ID:       n.ID,
			Name:     n.Label(),
			Category: n.Category,
			Books:    slices.Clone(n.Books),
		})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})

	shelf := Shelf{Tabs: []Tab{{Name: TabAll, Entries: entries}}}
	for _, c := range catalog.Categories() {
		tab := Tab{Name: tabName(c), Category: c, Entries: []Entry{}}
		for _, e := range entries {
			if e.Category == c {
				tab.Entries = append(tab.Entries, e)
			}
		}
		shelf.Tabs = append(shelf.Tabs, tab)
	}
	return shelf
}

func tabName(c catalog.Category) string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
