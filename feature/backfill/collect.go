package backfill

import (
	"context"
	"fmt"

	"route-atlas/core/reconcile"
	"route-atlas/feature/airports"
	"route-atlas/feature/openflights"

	"go.uber.org/zap"
)

// Result is what the cache yields once read back.
type Result struct {
	// Airports holds the first match of every entry that had one.
	Airports []airports.Airport
	// Unknown holds the codes whose entry had no match.
	Unknown reconcile.Set
	// Invalid counts entries that could not be read or decoded.
	Invalid int
}

// Collect reads back every entry of store, not only the codes of this run.
func Collect(ctx context.Context, store Store, logger *zap.Logger) (*Result, error) {
	codes, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache: %w", err)
	}

	res := &Result{Unknown: reconcile.NewSet()}
	for _, code := range codes {
		data, err := store.Get(ctx, code)
		if err != nil {
			logger.Warn("Skipping unreadable cache entry", zap.String("code", code), zap.Error(err))
			res.Invalid++
			continue
		}

		resp, err := openflights.ParseLookupResponse(data)
		if err != nil {
			logger.Warn("Skipping invalid cache entry", zap.String("code", code), zap.Error(err))
			res.Invalid++
			continue
		}

		if len(resp.Airports) == 0 {
			logger.Info("No airport found", zap.String("code", code))
			res.Unknown.Add(code)
			continue
		}
		res.Airports = append(res.Airports, airports.FromLookup(resp.Airports[0]))
	}
	return res, nil
}
