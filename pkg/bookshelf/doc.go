// Package bookshelf groups the reading lists of a roadmap graph into tabs.
//
// [Build] produces four tabs: All, Essential, Recommended and Optional. A
// subject is listed under All and under the tab of its category, sorted by
// display name. Subjects without books are left out of every tab even though
// they remain nodes of the graph. Each book reads "Title by Author".
//
// The shelf can be written as Markdown ([WriteMarkdown]), JSON, YAML, or as
// a static HTML page that embeds the rendered graph ([WriteHTML]).
package bookshelf
