package bookshelf

import (
	"html/template"
	"io"
	"strings"
)

// Page is a static roadmap page: the rendered graph above the tabbed
// reading lists.
type Page struct {
	Title string
	SVG   []byte
	Shelf Shelf
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: sans-serif; margin: 2rem; color: #222; }
  .graph svg { width: 100%; height: auto; }
  .tabs > input { display: none; }
  .tabs > label { display: inline-block; padding: 0.4rem 1rem; cursor: pointer; border-bottom: 2px solid transparent; }
  .tabs > .panel { display: none; padding-top: 1rem; }
{{- range $i, $t := .Shelf.Tabs}}
  #tab-{{$i}}:checked + label { border-bottom-color: #6c8ebf; font-weight: bold; }
  #tab-{{$i}}:checked ~ #panel-{{$i}} { display: block; }
{{- end}}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- if .SVG}}
<div class="graph">{{.SVG}}</div>
{{- end}}
<h2>Book Recommendations by Subject</h2>
<div class="tabs">
{{- range $i, $t := .Shelf.Tabs}}
<input type="radio" name="tabs" id="tab-{{$i}}"{{if eq $i 0}} checked{{end}}><label for="tab-{{$i}}">{{$t.Name}}</label>
{{- end}}
{{- range $i, $t := .Shelf.Tabs}}
<div class="panel" id="panel-{{$i}}">
{{- range $t.Entries}}
<h3>{{.Name}}</h3>
<ul>
{{- range .Books}}
<li>{{.}}</li>
{{- end}}
</ul>
<hr>
{{- end}}
</div>
{{- end}}
</div>
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// WriteHTML writes p as a single self-contained HTML document. The SVG is
// embedded verbatim; everything else is escaped.
func WriteHTML(w io.Writer, p Page) error {
	data := struct {
		Title string
		SVG   template.HTML
		Shelf Shelf
	}{
		Title: p.Title,
		SVG:   template.HTML(stripXMLHeader(string(p.SVG))),
		Shelf: p.Shelf,
	}
	return pageTemplate.Execute(w, data)
}

// stripXMLHeader drops anything before the <svg> element, such as the XML
// declaration and doctype Graphviz emits.
func stripXMLHeader(svg string) string {
	if i := strings.Index(svg, "<svg"); i > 0 {
		return svg[i:]
	}
	return svg
}
