package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// SVG writes the scene as a standalone SVG document in display-list order.
func (s *Scene) SVG() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.Background)

	for _, layer := range s.Layers {
		fmt.Fprintf(&buf, `  <g class="nodes" data-category="%s">`+"\n", escapeXML(string(layer.Category)))
		for _, n := range layer.Nodes {
			fmt.Fprintf(&buf, `    <circle id="node-%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%.2f"/>`+"\n",
				escapeXML(n.ID), n.X, n.Y, n.R, n.Fill, n.Border, BorderWidth)
		}
		buf.WriteString("  </g>\n")
	}

	if len(s.Edges) > 0 {
		buf.WriteString(`  <g class="edges">` + "\n")
		for _, a := range s.Edges {
			writeArrow(&buf, a)
		}
		buf.WriteString("  </g>\n")
	}

	if len(s.Labels) > 0 {
		buf.WriteString(`  <g class="labels" font-family="Go, sans-serif" text-anchor="middle" dominant-baseline="central">` + "\n")
		for _, l := range s.Labels {
			writeText(&buf, l, "    ")
		}
		buf.WriteString("  </g>\n")
	}

	if s.Title != nil {
		buf.WriteString(`  <g class="title" font-family="Go, sans-serif" text-anchor="middle" dominant-baseline="central">` + "\n")
		writeText(&buf, *s.Title, "    ")
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeArrow(buf *bytes.Buffer, a Arrow) {
	bx, by := a.Shaft()
	h := a.Head()
	fmt.Fprintf(buf, `    <g class="edge" data-from="%s" data-to="%s">`+"\n", escapeXML(a.From), escapeXML(a.To))
	fmt.Fprintf(buf, `      <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		a.X1, a.Y1, bx, by, a.Color, a.Width)
	fmt.Fprintf(buf, `      <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`+"\n",
		h[0].X, h[0].Y, h[1].X, h[1].Y, h[2].X, h[2].Y, a.Color)
	buf.WriteString("    </g>\n")
}

func writeText(buf *bytes.Buffer, t Text, indent string) {
	fmt.Fprintf(buf, `%s<text x="%.2f" y="%.2f" font-size="%.2f" fill="%s">%s</text>`+"\n",
		indent, t.X, t.Y, t.Size, t.Color, escapeXML(t.Text))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
