package backfill

import (
	"context"
	"fmt"
	"time"

	"route-atlas/core/metrics"
	"route-atlas/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultInterval is the minimum spacing between two lookups.
const DefaultInterval = 250 * time.Millisecond

// Lookup fetches the raw search response for one airport code.
type Lookup interface {
	Lookup(ctx context.Context, code string) ([]byte, error)
}

// Stats counts the work of one backfill run.
type Stats struct {
	Gap     int
	Cached  int
	Pending int
	Fetched int
	Failed  int
}

// Orchestrator runs the throttled backfill of gap codes.
type Orchestrator struct {
	store   Store
	lookup  Lookup
	limiter *rate.Limiter
	metrics *metrics.Registry
	logger  *zap.Logger
}

// NewOrchestrator creates an orchestrator issuing at most one lookup per
// interval. A non-positive interval falls back to DefaultInterval; reg may be nil.
func NewOrchestrator(store Store, lookup Lookup, interval time.Duration, reg *metrics.Registry, logger *zap.Logger) *Orchestrator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Orchestrator{
		store:   store,
		lookup:  lookup,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		metrics: reg,
		logger:  logger,
	}
}

// Pending returns the gap codes without a cache entry, sorted.
func (o *Orchestrator) Pending(ctx context.Context, gap reconcile.Set) ([]string, error) {
	var pending []string
	for _, code := range gap.Sorted() {
		exists, err := o.store.Exists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !exists {
			pending = append(pending, code)
		}
	}
	return pending, nil
}

// Run looks up every gap code lacking a cache entry and caches the responses.
// Individual lookup failures are logged and counted; only a store error while
// planning or a cancelled context ends the run early.
func (o *Orchestrator) Run(ctx context.Context, gap reconcile.Set) (Stats, error) {
	stats := Stats{Gap: gap.Len()}

	pending, err := o.Pending(ctx, gap)
	if err != nil {
		return stats, fmt.Errorf("failed to plan backfill: %w", err)
	}
	stats.Pending = len(pending)
	stats.Cached = stats.Gap - stats.Pending
	o.count(metrics.LookupCached, stats.Cached)

	o.logger.Info("Starting backfill",
		zap.Int("gap", stats.Gap),
		zap.Int("cached", stats.Cached),
		zap.Int("pending", stats.Pending))

	cursor := NewCursor(pending)
	for !cursor.Done() {
		if err := o.limiter.Wait(ctx); err != nil {
			return stats, fmt.Errorf("backfill interrupted at %d/%d: %w", cursor.Position(), cursor.Len(), err)
		}

		code := cursor.Next()
		if o.fetch(ctx, code) {
			stats.Fetched++
		} else {
			stats.Failed++
		}
	}

	o.logger.Info("Backfill finished",
		zap.Int("fetched", stats.Fetched),
		zap.Int("failed", stats.Failed))
	return stats, nil
}

func (o *Orchestrator) fetch(ctx context.Context, code string) bool {
	start := time.Now()
	body, err := o.lookup.Lookup(ctx, code)
	if o.metrics != nil {
		o.metrics.LookupDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		o.logger.Warn("Lookup failed", zap.String("code", code), zap.Error(err))
		o.count(metrics.LookupFailed, 1)
		return false
	}

	if err := o.store.Put(ctx, code, body); err != nil {
		o.logger.Error("Failed to cache lookup", zap.String("code", code), zap.Error(err))
		o.count(metrics.LookupFailed, 1)
		return false
	}

	o.logger.Debug("Cached lookup", zap.String("code", code), zap.Int("bytes", len(body)))
	o.count(metrics.LookupFetched, 1)
	return true
}

func (o *Orchestrator) count(outcome string, n int) {
	if o.metrics == nil || n == 0 {
		return
	}
	o.metrics.LookupsTotal.WithLabelValues(outcome).Add(float64(n))
}
