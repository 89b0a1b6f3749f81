package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mathroadmap/mathroadmap/pkg/bookshelf"
	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
)

// Book list output formats.
const (
	booksMarkdown = "markdown"
	booksJSON     = "json"
	booksYAML     = "yaml"
)

// booksCommand creates the books command for printing the reading lists.
func (c *CLI) booksCommand() *cobra.Command {
	var (
		tab         string
		format      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "books",
		Short: "Print the recommended books for every subject",
		Long: `Print the recommended books for every subject.

Subjects are grouped into four tabs: All, Essential, Recommended and
Optional. Subjects without books are left out. Use -i to browse the tabs
interactively.`,
		Example: `  mathroadmap books
  mathroadmap books --tab essential --format yaml
  mathroadmap books -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shelf, err := c.loadShelf(cmd.Context())
			if err != nil {
				return err
			}
			if interactive {
				return browseBooks(cmd.Context(), shelf, tab)
			}
			return writeBooks(cmd.OutOrStdout(), shelf, tab, format)
		},
	}

	cmd.Flags().StringVar(&tab, "tab", strings.ToLower(bookshelf.TabAll), "tab: all, essential, recommended, optional")
	cmd.Flags().StringVar(&format, "format", booksMarkdown, "output format: markdown, json, yaml")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the tabs interactively")

	return cmd
}

// loadShelf builds the catalog and collects its reading lists.
func (c *CLI) loadShelf(ctx context.Context) (bookshelf.Shelf, error) {
	g, err := c.buildGraph(ctx)
	if err != nil {
		return bookshelf.Shelf{}, fmt.Errorf("build: %w", err)
	}
	shelf := bookshelf.Build(g)
	loggerFromContext(ctx).Debug("collected reading lists", "subjects", len(shelf.Tabs[0].Entries), "books", shelf.Tabs[0].BookCount())
	return shelf, nil
}

// writeBooks prints one tab of shelf to w in the given format.
func writeBooks(w io.Writer, shelf bookshelf.Shelf, tab, format string) error {
	t, err := shelf.Lookup(tab)
	if err != nil {
		return err
	}
	switch strings.ToLower(format) {
	case booksMarkdown, "md":
		return bookshelf.WriteMarkdown(w, t)
	case booksJSON:
		return bookshelf.WriteJSON(w, t)
	case booksYAML, "yml":
		return bookshelf.WriteYAML(w, t)
	default:
		return rmerrors.New(rmerrors.ErrCodeInvalidFormat, "invalid format: %q (must be markdown, json or yaml)", format)
	}
}

// browseBooks runs the interactive tab browser, starting on tab.
func browseBooks(ctx context.Context, shelf bookshelf.Shelf, tab string) error {
	if _, err := shelf.Lookup(tab); err != nil {
		return err
	}
	model := NewBookBrowserModel(shelf)
	model.SelectTab(tab)
	_, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}
