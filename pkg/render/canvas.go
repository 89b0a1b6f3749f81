package render

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// goRegular is parsed once and shared by every canvas. Faces derived from it
// are cheap.
var goRegular = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Canvas is a rasterized scene. Close releases its pixel buffer.
type Canvas struct {
	dc *gg.Context
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// Close releases resources held by the canvas.
func (c *Canvas) Close() error { return c.dc.Close() }

// Rasterize paints the scene onto a new canvas in display-list order.
func (s *Scene) Rasterize() (*Canvas, error) {
	src, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	dc := gg.NewContext(s.Width, s.Height)
	c := &Canvas{dc: dc}
	if err := s.paint(dc, src); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return c, nil
}

func (s *Scene) paint(dc *gg.Context, src *text.FontSource) error {
	dc.ClearWithColor(gg.Hex(s.Background))

	for _, layer := range s.Layers {
		for _, n := range layer.Nodes {
			dc.DrawCircle(n.X, n.Y, n.R)
			dc.SetHexColor(n.Fill)
			if err := dc.FillPreserve(); err != nil {
				return fmt.Errorf("fill node %s: %w", n.ID, err)
			}
			dc.SetHexColor(n.Border)
			dc.SetLineWidth(BorderWidth)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("stroke node %s: %w", n.ID, err)
			}
		}
	}

	for _, a := range s.Edges {
		if err := paintArrow(dc, a); err != nil {
			return fmt.Errorf("draw edge %s -> %s: %w", a.From, a.To, err)
		}
	}

	faces := map[float64]text.Face{}
	face := func(size float64) text.Face {
		f, ok := faces[size]
		if !ok {
			f = src.Face(math.Round(size*100) / 100)
			faces[size] = f
		}
		return f
	}
	for _, l := range s.Labels {
		dc.SetFont(face(l.Size))
		dc.SetHexColor(l.Color)
		dc.DrawStringAnchored(l.Text, l.X, l.Y, 0.5, 0.5)
	}
	if s.Title != nil {
		dc.SetFont(face(s.Title.Size))
		dc.SetHexColor(s.Title.Color)
		dc.DrawStringAnchored(s.Title.Text, s.Title.X, s.Title.Y, 0.5, 0.5)
	}
	return nil
}

func paintArrow(dc *gg.Context, a Arrow) error {
	bx, by := a.Shaft()
	dc.SetHexColor(a.Color)
	dc.SetLineWidth(a.Width)
	dc.DrawLine(a.X1, a.Y1, bx, by)
	if err := dc.Stroke(); err != nil {
		return err
	}

	head := a.Head()
	dc.MoveTo(head[0].X, head[0].Y)
	dc.LineTo(head[1].X, head[1].Y)
	dc.LineTo(head[2].X, head[2].Y)
	dc.ClosePath()
	return dc.Fill()
}
