package render

import (
	"math"
	"slices"

	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
	"github.com/mathroadmap/mathroadmap/pkg/graph"
	"github.com/mathroadmap/mathroadmap/pkg/layout"
)

// Drawing parameters are given in points and converted at 100 DPI, so the
// default 24x18 inch figure becomes 2400x1800 pixels.
const (
	pointsToPixels = 100.0 / 72.0

	DefaultWidth      = 2400
	DefaultHeight     = 1800
	DefaultNodeRadius = 31 * pointsToPixels // circle of area 3000 pt²
	DefaultMargin     = 40.0

	EdgeColor     = "#808080"
	EdgeWidth     = 1.5 * pointsToPixels
	ArrowSize     = 20.0
	LabelSize     = 8 * pointsToPixels
	LabelColor    = "#000000"
	TitleSize     = 16 * pointsToPixels
	TitleColor    = "#000000"
	BorderWidth   = 1.0 * pointsToPixels
	Background    = "#ffffff"
	titleBandSize = TitleSize * 3
)

// Default titles for the two layout algorithms.
const (
	TitleKamadaKawai = "Mathematics Learning Roadmap"
	TitleSpring      = "Complete Mathematics Learning Roadmap"
)

// DefaultTitle returns the heading used for pictures laid out with alg.
func DefaultTitle(alg layout.Algorithm) string {
	if alg == layout.Spring {
		return TitleSpring
	}
	return TitleKamadaKawai
}

// Option configures [Render].
type Option func(*options)

type options struct {
	title  string
	width  int
	height int
	radius float64
	margin float64
}

// WithTitle sets the heading drawn above the graph. An empty title draws
// nothing.
func WithTitle(title string) Option { return func(o *options) { o.title = title } }

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithNodeRadius sets the node circle radius in pixels.
func WithNodeRadius(r float64) Option { return func(o *options) { o.radius = r } }

// WithMargin sets the blank border around the graph in pixels.
func WithMargin(m float64) Option { return func(o *options) { o.margin = m } }

// Circle is one node disc.
type Circle struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	R      float64 `json:"r"`
	Fill   string  `json:"fill"`
	Border string  `json:"border"`
}

// NodeLayer holds the discs of one category. All discs in a layer share the
// layer's style.
type NodeLayer struct {
	Category catalog.Category `json:"category"`
	Style    Style            `json:"style"`
	Nodes    []Circle         `json:"nodes"`
}

// Arrow is a directed edge. The shaft runs from (X1, Y1) to the base of the
// head; the head tip touches the target disc at (X2, Y2).
type Arrow struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	X1         float64 `json:"x1"`
	Y1         float64 `json:"y1"`
	X2         float64 `json:"x2"`
	Y2         float64 `json:"y2"`
	Color      string  `json:"color"`
	Width      float64 `json:"width"`
	HeadLength float64 `json:"head_length"`
	HeadWidth  float64 `json:"head_width"`
}

// Shaft returns the end of the line part of the arrow, where the head starts.
func (a Arrow) Shaft() (x, y float64) {
	ux, uy := a.direction()
	return a.X2 - ux*a.HeadLength, a.Y2 - uy*a.HeadLength
}

// Head returns the triangle of the arrowhead: the tip followed by the two
// base corners.
func (a Arrow) Head() [3]layout.Point {
	ux, uy := a.direction()
	bx, by := a.Shaft()
	hw := a.HeadWidth / 2
	return [3]layout.Point{
		{X: a.X2, Y: a.Y2},
		{X: bx - uy*hw, Y: by + ux*hw},
		{X: bx + uy*hw, Y: by - ux*hw},
	}
}

func (a Arrow) direction() (ux, uy float64) {
	dx, dy := a.X2-a.X1, a.Y2-a.Y1
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0, 0
	}
	return dx / d, dy / d
}

// Text is a string centered on (X, Y).
type Text struct {
	ID    string  `json:"id,omitempty"`
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

// Scene is a display list in paint order: node layers, then edges, then
// labels, then the title. It carries no axes. Sinks draw it without
// reordering.
type Scene struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Background string      `json:"background"`
	Layers     []NodeLayer `json:"layers"`
	Edges      []Arrow     `json:"edges"`
	Labels     []Text      `json:"labels"`
	Title      *Text       `json:"title,omitempty"`
}

// NodeCount returns the number of discs across all layers.
func (s *Scene) NodeCount() int {
	n := 0
	for _, l := range s.Layers {
		n += len(l.Nodes)
	}
	return n
}

// Render builds the scene for g at the given positions. Every node must have
// a position and a category present in styles; otherwise Render fails with
// INVALID_INPUT or [rmerrors.UnknownCategoryError] respectively.
//
// Positions are fitted independently on each axis into the canvas, minus
// margins and a band for the title, with y pointing up.
func Render(g *graph.Graph, pos layout.Positions, styles StyleTable, opts ...Option) (*Scene, error) {
	o := options{
		width:  DefaultWidth,
		height: DefaultHeight,
		radius: DefaultNodeRadius,
		margin: DefaultMargin,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, rmerrors.New(rmerrors.ErrCodeInvalidInput, "canvas size must be positive, got %dx%d", o.width, o.height)
	}
	if o.radius <= 0 || o.margin < 0 {
		return nil, rmerrors.New(rmerrors.ErrCodeInvalidInput, "node radius must be positive and margin non-negative")
	}

	nodes := g.Nodes()
	nodeStyles := make(map[string]Style, len(nodes))
	for _, n := range nodes {
		st, err := styles.StyleFor(n.Category)
		if err != nil {
			return nil, err
		}
		p, ok := pos[n.ID]
		if !ok {
			return nil, rmerrors.New(rmerrors.ErrCodeInvalidInput, "no position for node %q", n.ID)
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, rmerrors.New(rmerrors.ErrCodeInvalidInput, "non-finite position for node %q", n.ID)
		}
		nodeStyles[n.ID] = st
	}

	top := o.margin + o.radius
	if o.title != "" {
		top += titleBandSize
	}
	fit := newViewport(pos, nodes, viewRect{
		left:   o.margin + o.radius,
		right:  float64(o.width) - o.margin - o.radius,
		top:    top,
		bottom: float64(o.height) - o.margin - o.radius,
	})

	s := &Scene{Width: o.width, Height: o.height, Background: Background}
	centers := make(map[string]layout.Point, len(nodes))
	for _, n := range nodes {
		centers[n.ID] = fit.apply(pos[n.ID])
	}

	for _, cat := range drawOrder(styles) {
		var discs []Circle
		for _, n := range nodes {
			if n.Category != cat {
				continue
			}
			c := centers[n.ID]
			st := nodeStyles[n.ID]
			discs = append(discs, Circle{ID: n.ID, X: c.X, Y: c.Y, R: o.radius, Fill: st.Fill, Border: st.Border})
		}
		if len(discs) == 0 {
			continue
		}
		s.Layers = append(s.Layers, NodeLayer{Category: cat, Style: styles[cat], Nodes: discs})
	}

	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		a := arrowBetween(centers[e.From], centers[e.To], o.radius)
		a.From, a.To = e.From, e.To
		s.Edges = append(s.Edges, a)
	}

	for _, n := range nodes {
		c := centers[n.ID]
		s.Labels = append(s.Labels, Text{ID: n.ID, Text: n.Label(), X: c.X, Y: c.Y, Size: LabelSize, Color: LabelColor})
	}

	if o.title != "" {
		s.Title = &Text{Text: o.title, X: float64(o.width) / 2, Y: o.margin + TitleSize, Size: TitleSize, Color: TitleColor}
	}
	return s, nil
}

// drawOrder lists the categories of styles with the known ones first, in
// essential, recommended, optional order.
func drawOrder(styles StyleTable) []catalog.Category {
	order := make([]catalog.Category, 0, len(styles))
	for _, c := range catalog.Categories() {
		if _, ok := styles[c]; ok {
			order = append(order, c)
		}
	}
	var extra []catalog.Category
	for c := range styles {
		if !c.Valid() {
			extra = append(extra, c)
		}
	}
	slices.Sort(extra)
	return append(order, extra...)
}

// arrowBetween returns the arrow from the disc at a to the disc at b. When
// the discs are apart it runs rim to rim and the head shrinks to the gap.
// When they overlap it runs center to center with a head no longer than half
// the distance.
func arrowBetween(a, b layout.Point, r float64) Arrow {
	head := 0.4 * ArrowSize * pointsToPixels
	arrow := Arrow{
		X1: a.X, Y1: a.Y,
		X2: b.X, Y2: b.Y,
		Color:      EdgeColor,
		Width:      EdgeWidth,
		HeadLength: head,
		HeadWidth:  head,
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		arrow.HeadLength, arrow.HeadWidth = 0, 0
		return arrow
	}
	if d <= 2*r {
		if limit := d / 2; head > limit {
			arrow.HeadLength, arrow.HeadWidth = limit, limit
		}
		return arrow
	}

	ux, uy := dx/d, dy/d
	arrow.X1, arrow.Y1 = a.X+ux*r, a.Y+uy*r
	arrow.X2, arrow.Y2 = b.X-ux*r, b.Y-uy*r
	if gap := d - 2*r; head > gap {
		arrow.HeadLength, arrow.HeadWidth = gap, gap
	}
	return arrow
}

type viewRect struct {
	left, right, top, bottom float64
}

// viewport maps layout coordinates into pixel space.
type viewport struct {
	lo, hi layout.Point
	rect   viewRect
}

func newViewport(pos layout.Positions, nodes []graph.Node, rect viewRect) viewport {
	pts := make(layout.Positions, len(nodes))
	for _, n := range nodes {
		pts[n.ID] = pos[n.ID]
	}
	lo, hi := pts.Bounds()
	if rect.right < rect.left {
		rect.left, rect.right = (rect.left+rect.right)/2, (rect.left+rect.right)/2
	}
	if rect.bottom < rect.top {
		rect.top, rect.bottom = (rect.top+rect.bottom)/2, (rect.top+rect.bottom)/2
	}
	return viewport{lo: lo, hi: hi, rect: rect}
}

func (v viewport) apply(p layout.Point) layout.Point {
	return layout.Point{
		X: lerp(v.rect.left, v.rect.right, v.lo.X, v.hi.X, p.X),
		Y: lerp(v.rect.bottom, v.rect.top, v.lo.Y, v.hi.Y, p.Y),
	}
}

// lerp maps x from [lo, hi] onto [from, to]. A degenerate source range maps
// to the middle.
func lerp(from, to, lo, hi, x float64) float64 {
	if hi-lo == 0 {
		return (from + to) / 2
	}
	return from + (x-lo)/(hi-lo)*(to-from)
}
