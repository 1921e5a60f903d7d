package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"route-atlas/core/logger"
	"route-atlas/core/metrics"
	"route-atlas/core/reconcile"
	"route-atlas/core/tabular"
	"route-atlas/feature/airports"
	"route-atlas/feature/backfill"
	"route-atlas/feature/export"
	"route-atlas/feature/openflights"
	"route-atlas/feature/routes"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fetcher downloads a feed to a local path.
type Fetcher interface {
	Fetch(ctx context.Context, url, path string) error
}

// Options locate the inputs and outputs of a run.
type Options struct {
	AirportsURL  string
	RoutesURL    string
	DataDir      string
	SkipDownload bool
	Interval     time.Duration

	AirportsFile      string
	RoutesFile        string
	ExtraAirportsFile string
	ExtraRoutesFile   string
	// WorkbookFile and MetricsFile are written only when set.
	WorkbookFile string
	MetricsFile  string
}

// Result is the output of a run.
type Result struct {
	Report   *Report
	Airports *airports.Table
	Routes   []routes.Route
}

// Pipeline wires the stages of a run.
type Pipeline struct {
	opts    Options
	fetcher Fetcher
	store   backfill.Store
	lookup  backfill.Lookup
	metrics *metrics.Registry
	logger  *zap.Logger
}

// New creates a pipeline. reg may be nil when no metrics are wanted.
func New(opts Options, fetcher Fetcher, store backfill.Store, lookup backfill.Lookup, reg *metrics.Registry, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		opts:    opts,
		fetcher: fetcher,
		store:   store,
		lookup:  lookup,
		metrics: reg,
		logger:  logger,
	}
}

// Run executes a full reconciliation. Errors are returned only when an input
// feed cannot be obtained or an output cannot be written.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	report := &Report{RunID: uuid.NewString()}
	l := logger.WithRunID(p.logger, report.RunID)

	airportsPath := filepath.Join(p.opts.DataDir, openflights.AirportsFeedFile)
	routesPath := filepath.Join(p.opts.DataDir, openflights.RoutesFeedFile)

	if p.opts.SkipDownload {
		l.Info("Skipping feed download", zap.String("data_dir", p.opts.DataDir))
	} else {
		if err := p.fetcher.Fetch(ctx, p.opts.AirportsURL, airportsPath); err != nil {
			return nil, fmt.Errorf("failed to download airport registry: %w", err)
		}
		if err := p.fetcher.Fetch(ctx, p.opts.RoutesURL, routesPath); err != nil {
			return nil, fmt.Errorf("failed to download route feed: %w", err)
		}
	}

	// Decode
	registryRows, err := tabular.ReadFile(airportsPath, openflights.RegistryColumns, false)
	if err != nil {
		return nil, err
	}
	routeRows, err := tabular.ReadFile(routesPath, openflights.RouteColumns, false)
	if err != nil {
		return nil, err
	}

	feed, discarded := routes.ParseFeed(routeRows)
	report.Routes = len(feed)
	report.DiscardedAirlines = discarded

	// Gap analysis
	usable, codeless := airports.SplitRegistry(registryRows)
	report.RegistryAirports = len(registryRows)
	report.UsableAirports = len(usable)
	report.CodelessAirports = len(codeless)

	summary := reconcile.Analyze(routes.Endpoints(feed), airports.KnownCodes(usable))
	report.RouteAirports = summary.Referenced.Len()
	report.GapCodes = summary.Gap.Len()
	l.Info("Gap analysis done",
		zap.Int("route_airports", report.RouteAirports),
		zap.Int("known", summary.Known.Len()),
		zap.Int("gap", report.GapCodes))

	// Backfill
	orch := backfill.NewOrchestrator(p.store, p.lookup, p.opts.Interval, p.metrics, l)
	stats, err := orch.Run(ctx, summary.Gap)
	report.LookupsNeeded = stats.Pending
	report.LookupsFetched = stats.Fetched
	report.LookupFailures = stats.Failed
	if err != nil {
		return nil, err
	}

	collected, err := backfill.Collect(ctx, p.store, l)
	if err != nil {
		return nil, err
	}
	report.BackfilledAirports = len(collected.Airports)
	report.InvalidEntries = collected.Invalid

	// Merge
	overrideAirports, err := readOptional(l, p.opts.ExtraAirportsFile, airports.ReadOverrides)
	if err != nil {
		return nil, err
	}
	report.OverrideAirports = len(overrideAirports)

	unknown := reconcile.Difference(collected.Unknown, reconcile.KnownKeys(overrideAirports, func(a airports.Airport) string {
		return a.IATA3
	}))
	report.UnknownBefore = collected.Unknown.Len()
	report.UnknownAfter = unknown.Len()
	if unknown.Len() > 0 {
		l.Info("Airports still unknown", zap.Strings("codes", unknown.Sorted()))
	}

	table := airports.Merge(airports.FromRegistry(usable), collected.Airports, overrideAirports)
	report.MergedAirports = table.Len()

	// Routes
	computed, rstats := routes.NewResolver(table, unknown, l).Resolve(feed)
	report.RoutesExcluded = rstats.Excluded
	report.RoutesUnresolved = rstats.Unresolved
	report.RoutesComputed = rstats.Computed

	overrideRoutes, err := readOptional(l, p.opts.ExtraRoutesFile, routes.ReadTable)
	if err != nil {
		return nil, err
	}
	report.OverrideRoutes = len(overrideRoutes)

	out := append(computed, overrideRoutes...)
	report.OutputRoutes = len(out)

	// Output
	if err := tabular.WriteFile(p.opts.AirportsFile, airports.Columns, table.Rows(), true); err != nil {
		return nil, err
	}
	if err := tabular.WriteFile(p.opts.RoutesFile, routes.Columns, routes.Rows(out), true); err != nil {
		return nil, err
	}
	l.Info("Wrote outputs",
		zap.String("airports", p.opts.AirportsFile),
		zap.String("routes", p.opts.RoutesFile))

	if p.opts.WorkbookFile != "" {
		if err := export.WriteWorkbook(p.opts.WorkbookFile, table.Records(), out); err != nil {
			return nil, err
		}
		l.Info("Wrote workbook", zap.String("path", p.opts.WorkbookFile))
	}

	report.DurationSeconds = time.Since(start).Seconds()
	report.Log(l)

	if p.metrics != nil {
		report.Observe(p.metrics)
		if p.opts.MetricsFile != "" {
			if err := p.metrics.WriteTextfile(p.opts.MetricsFile); err != nil {
				return nil, fmt.Errorf("failed to write metrics: %w", err)
			}
		}
	}

	return &Result{Report: report, Airports: table, Routes: out}, nil
}

// readOptional reads an override table. A missing or unset file is logged and
// yields no records.
func readOptional[T any](l *zap.Logger, path string, read func(string) ([]T, error)) ([]T, error) {
	if path == "" {
		return nil, nil
	}
	records, err := read(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.Warn("Override table not found, continuing without it", zap.String("path", path))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	l.Info("Loaded override table", zap.String("path", path), zap.Int("records", len(records)))
	return records, nil
}
