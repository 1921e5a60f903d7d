package pipeline

import (
	"route-atlas/core/metrics"

	"go.uber.org/zap"
)

// Report holds the counters of one run.
type Report struct {
	RunID string `json:"run_id"`

	Routes            int `json:"routes"`
	DiscardedAirlines int `json:"discarded_airlines"`
	RouteAirports     int `json:"route_airports"`

	RegistryAirports int `json:"registry_airports"`
	UsableAirports   int `json:"usable_airports"`
	CodelessAirports int `json:"codeless_airports"`

	GapCodes       int `json:"gap_codes"`
	LookupsNeeded  int `json:"lookups_needed"`
	LookupsFetched int `json:"lookups_fetched"`
	LookupFailures int `json:"lookup_failures"`
	InvalidEntries int `json:"invalid_entries"`

	BackfilledAirports int `json:"backfilled_airports"`
	OverrideAirports   int `json:"override_airports"`
	UnknownBefore      int `json:"unknown_before_overrides"`
	UnknownAfter       int `json:"unknown_after_overrides"`
	MergedAirports     int `json:"merged_airports"`

	RoutesExcluded   int `json:"routes_excluded"`
	RoutesUnresolved int `json:"routes_unresolved"`
	RoutesComputed   int `json:"routes_computed"`
	OverrideRoutes   int `json:"override_routes"`
	OutputRoutes     int `json:"output_routes"`

	DurationSeconds float64 `json:"duration_seconds"`
}

type counter struct {
	name  string
	value int
}

func (r *Report) counters() []counter {
	return []counter{
		{"routes", r.Routes},
		{"discarded_airlines", r.DiscardedAirlines},
		{"route_airports", r.RouteAirports},
		{"registry_airports", r.RegistryAirports},
		{"usable_airports", r.UsableAirports},
		{"codeless_airports", r.CodelessAirports},
		{"gap_codes", r.GapCodes},
		{"lookups_needed", r.LookupsNeeded},
		{"lookups_fetched", r.LookupsFetched},
		{"lookup_failures", r.LookupFailures},
		{"invalid_entries", r.InvalidEntries},
		{"backfilled_airports", r.BackfilledAirports},
		{"override_airports", r.OverrideAirports},
		{"unknown_before_overrides", r.UnknownBefore},
		{"unknown_after_overrides", r.UnknownAfter},
		{"merged_airports", r.MergedAirports},
		{"routes_excluded", r.RoutesExcluded},
		{"routes_unresolved", r.RoutesUnresolved},
		{"routes_computed", r.RoutesComputed},
		{"override_routes", r.OverrideRoutes},
		{"output_routes", r.OutputRoutes},
	}
}

// Log writes the report as a single structured entry.
func (r *Report) Log(l *zap.Logger) {
	counters := r.counters()
	fields := make([]zap.Field, 0, len(counters)+2)
	fields = append(fields, zap.String("run_id", r.RunID))
	for _, c := range counters {
		fields = append(fields, zap.Int(c.name, c.value))
	}
	fields = append(fields, zap.Float64("duration_seconds", r.DurationSeconds))
	l.Info("Reconciliation report", fields...)
}

// Observe copies the counters into the stage gauges of reg.
func (r *Report) Observe(reg *metrics.Registry) {
	for _, c := range r.counters() {
		reg.SetStage(c.name, c.value)
	}
	reg.RunDuration.Set(r.DurationSeconds)
}
