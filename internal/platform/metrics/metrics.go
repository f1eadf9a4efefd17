// Package metrics owns the prometheus registry and the dashboard's business metrics
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Surfaces that trigger a recompute
const (
	SurfaceAPI    = "api"
	SurfaceCharts = "charts"
	SurfaceExport = "export"
	SurfaceWeb    = "web"
)

// Render results
const (
	ResultOK     = "ok"
	ResultNoData = "no_data"
	ResultError  = "error"
)

// Metrics is the set of collectors the dashboard records into
// a nil *Metrics is valid and records nothing
type Metrics struct {
	reg *prometheus.Registry

	ViewRecomputes    *prometheus.CounterVec
	ViewRecomputeTime prometheus.Histogram
	DatasetRecords    prometheus.Gauge
	ChartRenders      *prometheus.CounterVec
}

// New builds a private registry with go/process collectors and the dashboard metrics
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		reg: reg,
		ViewRecomputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pcaob_view_recomputes_total",
			Help: "Filter and aggregate recomputes by calling surface",
		}, []string{"surface"}),
		ViewRecomputeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pcaob_view_recompute_seconds",
			Help:    "Time spent in one filter and aggregate recompute",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pcaob_dataset_records",
			Help: "Records in the loaded dataset snapshot",
		}),
		ChartRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pcaob_chart_renders_total",
			Help: "PNG chart renders by chart id and result",
		}, []string{"chart", "result"}),
	}
	reg.MustRegister(m.ViewRecomputes, m.ViewRecomputeTime, m.DatasetRecords, m.ChartRenders)
	return m
}

// Registry exposes the underlying registry for tests and extra collectors
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

// Handler serves the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveRecompute counts one recompute from surface and records its duration
func (m *Metrics) ObserveRecompute(surface string, d time.Duration) {
	if m == nil {
		return
	}
	m.ViewRecomputes.WithLabelValues(surface).Inc()
	m.ViewRecomputeTime.Observe(d.Seconds())
}

// SetDatasetRecords publishes the snapshot size
func (m *Metrics) SetDatasetRecords(n int) {
	if m == nil {
		return
	}
	m.DatasetRecords.Set(float64(n))
}

// ObserveRender counts one chart render outcome
func (m *Metrics) ObserveRender(chart, result string) {
	if m == nil {
		return
	}
	m.ChartRenders.WithLabelValues(chart, result).Inc()
}
