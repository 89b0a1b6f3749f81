package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mathroadmap/mathroadmap/pkg/bookshelf"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	tabActiveStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true).Padding(0, 1)
	tabInactiveStyle  = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
	bookStyle         = lipgloss.NewStyle().Foreground(colorWhite).PaddingLeft(4)
)

// =============================================================================
// BookBrowserModel - Interactive reading list
// =============================================================================

// BookBrowserModel is the bubbletea model for browsing the shelf tab by tab.
// The subject under the cursor shows its books below the list.
type BookBrowserModel struct {
	Shelf  bookshelf.Shelf
	Tab    int
	Cursor int
	Offset int
	Height int
}

// NewBookBrowserModel creates a browser showing the first tab.
func NewBookBrowserModel(shelf bookshelf.Shelf) BookBrowserModel {
	return BookBrowserModel{
		Shelf:  shelf,
		Height: 12,
	}
}

// SelectTab switches to the named tab. Unknown names are ignored.
func (m *BookBrowserModel) SelectTab(name string) {
	for i, t := range m.Shelf.Tabs {
		if strings.EqualFold(t.Name, name) {
			m.setTab(i)
			return
		}
	}
}

func (m *BookBrowserModel) setTab(i int) {
	n := len(m.Shelf.Tabs)
	if n == 0 {
		return
	}
	m.Tab = (i%n + n) % n
	m.Cursor = 0
	m.Offset = 0
}

// current returns the entries of the active tab.
func (m BookBrowserModel) current() []bookshelf.Entry {
	if m.Tab >= len(m.Shelf.Tabs) {
		return nil
	}
	return m.Shelf.Tabs[m.Tab].Entries
}

func (m BookBrowserModel) Init() tea.Cmd {
	return nil
}

func (m BookBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "tab":
			m.setTab(m.Tab + 1)
		case "left", "h", "shift+tab":
			m.setTab(m.Tab - 1)
		case "1", "2", "3", "4":
			if i := int(msg.String()[0] - '1'); i < len(m.Shelf.Tabs) {
				m.setTab(i)
			}
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.current())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height/2 - 4
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BookBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Book Recommendations by Subject"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ tab  ↑/↓ subject  q quit"))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.Shelf.Tabs))
	for i, t := range m.Shelf.Tabs {
		label := fmt.Sprintf("%s (%d)", t.Name, len(t.Entries))
		if i == m.Tab {
			tabs[i] = tabActiveStyle.Render(label)
		} else {
			tabs[i] = tabInactiveStyle.Render(label)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	entries := m.current()
	if len(entries) == 0 {
		b.WriteString(listDimStyle.Render("  no subjects with books"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(entries))
	for i := m.Offset; i < end; i++ {
		e := entries[i]
		cursor := "  "
		name := categoryStyle(e.Category).Render(e.Name)
		if i == m.Cursor {
			cursor = "▸ "
			name = listSelectedStyle.Render(e.Name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, name, listDimStyle.Render(fmt.Sprintf("%d books", len(e.Books)))))
	}

	sel := entries[m.Cursor]
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")
	for _, book := range sel.Books {
		b.WriteString(bookStyle.Render(iconBullet + " " + book))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(entries))))

	return b.String()
}
