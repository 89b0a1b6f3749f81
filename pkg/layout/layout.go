package layout

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/go-playground/validator/v10"

	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
	"github.com/mathroadmap/mathroadmap/pkg/graph"
)

// Algorithm names a layout strategy.
type Algorithm string

const (
	// KamadaKawai places nodes so Euclidean distances approximate hop
	// distances. It uses no randomness.
	KamadaKawai Algorithm = "kamada-kawai"

	// Spring is a Fruchterman-Reingold force simulation started from seeded
	// random positions. It is reproducible only for a fixed seed.
	Spring Algorithm = "spring"
)

// Algorithms lists the supported algorithms, default first.
func Algorithms() []Algorithm {
	return []Algorithm{KamadaKawai, Spring}
}

// ParseAlgorithm maps a name to an Algorithm. The empty string selects
// [DefaultAlgorithm].
func ParseAlgorithm(s string) (Algorithm, error) {
	if s == "" {
		return DefaultAlgorithm, nil
	}
	a := Algorithm(s)
	if !slices.Contains(Algorithms(), a) {
		return "", rmerrors.New(rmerrors.ErrCodeInvalidLayout, "unknown layout %q (must be 'kamada-kawai' or 'spring')", s)
	}
	return a, nil
}

// Defaults for the spring algorithm and the output scale.
const (
	DefaultAlgorithm  = KamadaKawai
	DefaultSeed       = uint64(42)
	DefaultIterations = 50
	DefaultK          = 2.0
	DefaultScale      = 1.0
)

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Positions maps node IDs to coordinates.
type Positions map[string]Point

// Bounds returns the bounding box of all positions. An empty map yields
// zero points.
func (p Positions) Bounds() (lo, hi Point) {
	pts := make([]Point, 0, len(p))
	for _, pt := range p {
		pts = append(pts, pt)
	}
	return bounds(pts)
}

func bounds(pts []Point) (lo, hi Point) {
	for i, pt := range pts {
		if i == 0 {
			lo, hi = pt, pt
			continue
		}
		lo.X, lo.Y = math.Min(lo.X, pt.X), math.Min(lo.Y, pt.Y)
		hi.X, hi.Y = math.Max(hi.X, pt.X), math.Max(hi.Y, pt.Y)
	}
	return lo, hi
}

// MarshalJSON writes positions with sorted keys so output is stable.
func (p Positions) MarshalJSON() ([]byte, error) {
	type entry struct {
		ID string  `json:"id"`
		X  float64 `json:"x"`
		Y  float64 `json:"y"`
	}
	ids := make([]string, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]entry, len(ids))
	for i, id := range ids {
		out[i] = entry{ID: id, X: p[id].X, Y: p[id].Y}
	}
	return json.Marshal(out)
}

// Options configures [Compute]. Zero fields take the package defaults;
// Seed, Iterations and K only affect [Spring].
type Options struct {
	Algorithm  Algorithm `toml:"algorithm" validate:"omitempty,oneof=kamada-kawai spring"`
	Seed       uint64    `toml:"seed"`
	Iterations int       `toml:"iterations" validate:"gte=0,lte=100000"`
	K          float64   `toml:"k" validate:"gte=0"`
	Scale      float64   `toml:"scale" validate:"gte=0"`
}

// DefaultOptions returns options for the default algorithm.
func DefaultOptions() Options {
	o := Options{}
	o.SetDefaults()
	return o
}

// SetDefaults fills zero fields with the package defaults.
func (o *Options) SetDefaults() {
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	if o.K == 0 {
		o.K = DefaultK
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

var validate = validator.New()

// Validate checks option ranges.
func (o Options) Validate() error {
	return rmerrors.FromValidation(rmerrors.ErrCodeInvalidLayout, validate.Struct(o), "invalid layout options")
}

// Layouter computes positions for every node of a graph.
type Layouter interface {
	Layout(g *graph.Graph) (Positions, error)
}

// New returns the Layouter selected by opts after defaults are applied.
func New(opts Options) (Layouter, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	switch opts.Algorithm {
	case KamadaKawai:
		return KamadaKawaiLayout{Scale: opts.Scale}, nil
	case Spring:
		return SpringLayout{Seed: opts.Seed, Iterations: opts.Iterations, K: opts.K, Scale: opts.Scale}, nil
	default:
		return nil, rmerrors.New(rmerrors.ErrCodeInvalidLayout, "unknown layout %q", opts.Algorithm)
	}
}

// Compute lays out g with the algorithm selected in opts. Every node gets
// exactly one finite coordinate inside [-Scale, Scale] on both axes.
func Compute(g *graph.Graph, opts Options) (Positions, error) {
	l, err := New(opts)
	if err != nil {
		return nil, err
	}
	return l.Layout(g)
}

// rescale centers pts on the origin and scales them so the largest absolute
// coordinate equals scale.
func rescale(pts []Point, scale float64) {
	if len(pts) == 0 {
		return
	}
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	var lim float64
	for i := range pts {
		pts[i].X -= cx
		pts[i].Y -= cy
		lim = math.Max(lim, math.Max(math.Abs(pts[i].X), math.Abs(pts[i].Y)))
	}
	if lim == 0 {
		return
	}
	f := scale / lim
	for i := range pts {
		pts[i].X *= f
		pts[i].Y *= f
	}
}

// collect zips ids and points into Positions, rejecting non-finite values.
func collect(ids []string, pts []Point) (Positions, error) {
	out := make(Positions, len(ids))
	for i, id := range ids {
		p := pts[i]
		if !finite(p.X) || !finite(p.Y) {
			return nil, rmerrors.New(rmerrors.ErrCodeInternal, "layout produced non-finite position for %s", id)
		}
		out[id] = p
	}
	return out, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}
