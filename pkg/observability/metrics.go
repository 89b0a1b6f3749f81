package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stage labels used by [Metrics].
const (
	StageBuild  = "build"
	StageLayout = "layout"
	StageRender = "render"
)

// Metrics is a [PipelineHooks] implementation that records Prometheus
// metrics in its own registry, so several instances never collide.
type Metrics struct {
	registry *prometheus.Registry

	StageRuns     *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
	LayoutRuns    *prometheus.CounterVec
	RenderFormats *prometheus.CounterVec
	GraphNodes    prometheus.Gauge
	GraphEdges    prometheus.Gauge
}

// NewMetrics creates the collectors under namespace and registers them.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		StageRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stage_runs_total",
				Help:      "Pipeline stages executed, by stage and outcome",
			},
			[]string{"stage", "status"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Pipeline stage duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"stage"},
		),
		LayoutRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "layout_runs_total",
				Help:      "Layouts computed, by algorithm",
			},
			[]string{"algorithm"},
		),
		RenderFormats: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "render_outputs_total",
				Help:      "Outputs produced, by format",
			},
			[]string{"format"},
		),
		GraphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Nodes in the most recently built graph",
		}),
		GraphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Edges in the most recently built graph",
		}),
	}
	m.registry.MustRegister(m.StageRuns, m.StageDuration, m.LayoutRuns, m.RenderFormats, m.GraphNodes, m.GraphEdges)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the current values in the node_exporter textfile
// format, replacing path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observe(stage string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.StageRuns.WithLabelValues(stage, status).Inc()
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (m *Metrics) OnBuildStart(context.Context, int) {}

func (m *Metrics) OnBuildComplete(_ context.Context, nodes, edges int, d time.Duration, err error) {
	m.observe(StageBuild, d, err)
	if err == nil {
		m.GraphNodes.Set(float64(nodes))
		m.GraphEdges.Set(float64(edges))
	}
}

func (m *Metrics) OnLayoutStart(context.Context, string, int) {}

func (m *Metrics) OnLayoutComplete(_ context.Context, algorithm string, d time.Duration, err error) {
	m.observe(StageLayout, d, err)
	if err == nil {
		m.LayoutRuns.WithLabelValues(algorithm).Inc()
	}
}

func (m *Metrics) OnRenderStart(context.Context, []string) {}

func (m *Metrics) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	m.observe(StageRender, d, err)
	if err != nil {
		return
	}
	for _, f := range formats {
		m.RenderFormats.WithLabelValues(f).Inc()
	}
}
