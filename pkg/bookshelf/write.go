package bookshelf

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteMarkdown writes one tab as Markdown: a heading per subject, a bullet
// per book and a rule after each subject.
func WriteMarkdown(w io.Writer, t Tab) error {
	for _, e := range t.Entries {
		if _, err := fmt.Fprintf(w, "### %s\n\n", e.Name); err != nil {
			return err
		}
		for _, b := range e.Books {
			if _, err := fmt.Fprintf(w, "- %s\n", b); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n---\n\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes v (a [Shelf] or a [Tab]) as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML writes v (a [Shelf] or a [Tab]) as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
