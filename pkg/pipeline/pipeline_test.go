package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	"github.com/mathroadmap/mathroadmap/pkg/config"
	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
	"github.com/mathroadmap/mathroadmap/pkg/layout"
	"github.com/mathroadmap/mathroadmap/pkg/observability"
	"github.com/mathroadmap/mathroadmap/pkg/render"
)

func quietRunner() *Runner {
	return NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
}

func abCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Subject{
		{ID: "A", Name: "A", Category: catalog.Essential, Books: []catalog.Book{
			{Title: "T", Author: "Au", Category: catalog.Essential},
		}},
		{ID: "B", Name: "B", Category: catalog.Optional},
	}, []catalog.Connection{{From: "A", To: "B"}})
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"png", false},
		{"svg", false},
		{"dot", false},
		{"html", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !rmerrors.Is(err, rmerrors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, rmerrors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero options should be valid: %v", err)
	}
	if opts.Layout.Algorithm != layout.KamadaKawai {
		t.Errorf("Algorithm = %q, want %q", opts.Layout.Algorithm, layout.KamadaKawai)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatPNG {
		t.Errorf("Formats = %v, want [png]", opts.Formats)
	}
	if opts.Title != render.TitleKamadaKawai {
		t.Errorf("Title = %q", opts.Title)
	}
	if opts.Logger == nil {
		t.Error("Logger should be defaulted")
	}

	spring := Options{Layout: layout.Options{Algorithm: layout.Spring}}
	if err := spring.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if spring.Title != render.TitleSpring {
		t.Errorf("spring Title = %q, want %q", spring.Title, render.TitleSpring)
	}

	bad := Options{Layout: layout.Options{Algorithm: "radial"}}
	if err := bad.ValidateAndSetDefaults(); !rmerrors.Is(err, rmerrors.ErrCodeInvalidLayout) {
		t.Errorf("unknown layout err = %v", err)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Formats = []string{"svg", "dot"}
	cfg.Render.Title = "Custom"

	opts := FromConfig(cfg)
	if opts.Title != "Custom" || opts.Width != cfg.Render.Width {
		t.Errorf("FromConfig = %+v", opts)
	}
	cfg.Render.Formats[0] = "png"
	if opts.Formats[0] != "svg" {
		t.Error("FromConfig should copy formats")
	}
}

func TestExecuteEndToEnd(t *testing.T) {
	r := quietRunner()
	res, err := r.Execute(context.Background(), abCatalog(t), Options{
		Formats: []string{FormatPNG, FormatSVG, FormatDOT, FormatHTML},
		Width:   400,
		Height:  300,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.ID == "" {
		t.Error("missing run ID")
	}
	if res.Stats.NodeCount != 2 || res.Stats.EdgeCount != 1 {
		t.Errorf("stats = %+v, want 2 nodes 1 edge", res.Stats)
	}
	if len(res.Positions) != 2 {
		t.Errorf("positions = %v", res.Positions)
	}
	if res.Scene.NodeCount() != 2 || len(res.Scene.Edges) != 1 {
		t.Errorf("scene has %d nodes and %d edges", res.Scene.NodeCount(), len(res.Scene.Edges))
	}

	ess, _ := res.Shelf.Tab("Essential")
	if len(ess.Entries) != 1 || ess.Entries[0].Books[0] != "T by Au" {
		t.Errorf("Essential tab = %+v", ess)
	}
	opt, _ := res.Shelf.Tab("Optional")
	if len(opt.Entries) != 0 {
		t.Errorf("B has no books but appears in Optional: %+v", opt)
	}

	img, err := png.Decode(bytes.NewReader(res.Artifacts[FormatPNG]))
	if err != nil {
		t.Fatalf("png artifact: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("png size = %v", b)
	}
	if !bytes.HasPrefix(res.Artifacts[FormatSVG], []byte("<svg ")) {
		t.Error("svg artifact is not SVG")
	}
	if !strings.Contains(string(res.Artifacts[FormatDOT]), `"A" -> "B";`) {
		t.Error("dot artifact missing edge")
	}
	if !strings.Contains(string(res.Artifacts[FormatHTML]), "T by Au") {
		t.Error("html artifact missing book")
	}
}

func TestExecuteSpringIsDeterministic(t *testing.T) {
	r := quietRunner()
	opts := Options{Layout: layout.Options{Algorithm: layout.Spring}, Formats: []string{FormatSVG}}

	a, err := r.Execute(context.Background(), catalog.Default(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(context.Background(), catalog.Default(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Artifacts[FormatSVG], b.Artifacts[FormatSVG]) {
		t.Error("same seed should give the same picture")
	}
	if a.ID == b.ID {
		t.Error("runs should get distinct IDs")
	}
}

func TestExecuteDrawsEveryConnection(t *testing.T) {
	r := quietRunner()
	cat := catalog.Default()
	for _, alg := range []layout.Algorithm{layout.KamadaKawai, layout.Spring} {
		t.Run(string(alg), func(t *testing.T) {
			res, err := r.Execute(context.Background(), cat, Options{
				Layout:  layout.Options{Algorithm: alg},
				Formats: []string{FormatSVG},
			})
			if err != nil {
				t.Fatal(err)
			}
			if got, want := len(res.Scene.Edges), len(cat.Connections()); got != want {
				t.Errorf("scene has %d arrows, catalog has %d connections", got, want)
			}
			if got := strings.Count(string(res.Artifacts[FormatSVG]), `<g class="edge"`); got != res.Graph.EdgeCount() {
				t.Errorf("svg has %d edges, graph has %d", got, res.Graph.EdgeCount())
			}
		})
	}
}

func TestExecuteConcurrent(t *testing.T) {
	r := quietRunner()
	cat := catalog.Default()
	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Execute(context.Background(), cat, Options{Formats: []string{FormatSVG}})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := quietRunner().Execute(ctx, abCatalog(t), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestExecuteInvalidFormat(t *testing.T) {
	_, err := quietRunner().Execute(context.Background(), abCatalog(t), Options{Formats: []string{"gif"}})
	if !rmerrors.Is(err, rmerrors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnBuildComplete(context.Context, int, int, time.Duration, error) {
	h.record("build")
}

func (h *recordingHooks) OnLayoutComplete(_ context.Context, alg string, _ time.Duration, _ error) {
	h.record("layout:" + alg)
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, err error) {
	if err != nil {
		h.record("render:error")
		return
	}
	h.record("render:" + strings.Join(formats, ","))
}

func TestExecuteFiresHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	_, err := quietRunner().Execute(context.Background(), abCatalog(t), Options{Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"build", "layout:kamada-kawai", "render:svg"}
	if strings.Join(hooks.events, " ") != strings.Join(want, " ") {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}
}

func TestStatsTotal(t *testing.T) {
	s := Stats{BuildTime: time.Second, LayoutTime: 2 * time.Second, RenderTime: 3 * time.Second}
	if s.Total() != 6*time.Second {
		t.Errorf("Total = %v", s.Total())
	}
}
