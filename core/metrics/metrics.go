// Package metrics exposes the pipeline counters as Prometheus metrics.
//
// Each Registry owns its own prometheus.Registry so a build run and the catalog
// server never share global state. A run can be dumped to a textfile for the
// node_exporter textfile collector; the server serves the same registry on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes recorded by the backfill.
const (
	LookupCached  = "cached"
	LookupFetched = "fetched"
	LookupFailed  = "failed"
)

// Registry holds all Prometheus metrics for route-atlas.
type Registry struct {
	registry *prometheus.Registry

	// StageRecords is the number of records seen at each pipeline stage.
	StageRecords *prometheus.GaugeVec
	// LookupsTotal counts secondary lookups by outcome.
	LookupsTotal *prometheus.CounterVec
	// LookupDuration is the latency of a single secondary lookup.
	LookupDuration prometheus.Histogram
	// RunDuration is the wall time of a full pipeline run.
	RunDuration prometheus.Gauge
}

// NewRegistry initializes and returns a new Registry with all metrics.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		registry: reg,
		StageRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "route_atlas_stage_records",
				Help: "Records counted at each reconciliation stage",
			},
			[]string{"stage"},
		),
		LookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "route_atlas_lookups_total",
				Help: "Secondary airport lookups by outcome",
			},
			[]string{"outcome"},
		),
		LookupDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "route_atlas_lookup_duration_seconds",
				Help:    "Secondary airport lookup latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		RunDuration: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "route_atlas_run_duration_seconds",
				Help: "Wall time of the last pipeline run in seconds",
			},
		),
	}
}

// SetStage records the record count of a stage.
func (r *Registry) SetStage(stage string, n int) {
	r.StageRecords.WithLabelValues(stage).Set(float64(n))
}

// Gatherer returns the underlying gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// WriteTextfile writes the registry atomically to path.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
