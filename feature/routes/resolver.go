package routes

import (
	"strconv"

	"route-atlas/core/geo"
	"route-atlas/core/reconcile"
	"route-atlas/feature/airports"

	"go.uber.org/zap"
)

const progressEvery = 1000

// Stats counts what the resolver did with the feed.
type Stats struct {
	// Excluded routes touch a permanently unknown airport.
	Excluded int
	// Unresolved routes have an endpoint missing from the table or without
	// usable coordinates.
	Unresolved int
	// Computed routes made it to the output.
	Computed int
}

// Resolver computes output routes against a merged airport table.
type Resolver struct {
	table   *airports.Table
	unknown reconcile.Set
	logger  *zap.Logger
}

// NewResolver creates a resolver. unknown holds the codes whose routes are
// dropped without a lookup in the table.
func NewResolver(table *airports.Table, unknown reconcile.Set, logger *zap.Logger) *Resolver {
	if unknown == nil {
		unknown = reconcile.NewSet()
	}
	return &Resolver{table: table, unknown: unknown, logger: logger}
}

// Resolve processes the feed in order and returns the computed routes.
func (r *Resolver) Resolve(feed []FeedRoute) ([]Route, Stats) {
	var stats Stats
	out := make([]Route, 0, len(feed))

	for i, fr := range feed {
		if i > 0 && i%progressEvery == 0 {
			r.logger.Debug("Resolving routes", zap.Int("processed", i), zap.Int("total", len(feed)))
		}

		if r.unknown.Has(fr.SourceAirport) || r.unknown.Has(fr.DestinationAirport) {
			stats.Excluded++
			continue
		}

		route, ok := r.resolve(fr)
		if !ok {
			stats.Unresolved++
			continue
		}
		out = append(out, route)
	}

	stats.Computed = len(out)
	return out, stats
}

func (r *Resolver) resolve(fr FeedRoute) (Route, bool) {
	from, okFrom := r.table.Find(fr.SourceAirport)
	to, okTo := r.table.Find(fr.DestinationAirport)
	if !okFrom || !okTo {
		r.logger.Warn("Route endpoint not found",
			zap.String("from", fr.SourceAirport),
			zap.String("to", fr.DestinationAirport),
			zap.Bool("from_found", okFrom),
			zap.Bool("to_found", okTo))
		return Route{}, false
	}

	a, err := geo.ParsePoint(from.Latitude, from.Longitude)
	if err != nil {
		r.logger.Warn("Unusable coordinates", zap.String("code", from.IATA3), zap.Error(err))
		return Route{}, false
	}
	b, err := geo.ParsePoint(to.Latitude, to.Longitude)
	if err != nil {
		r.logger.Warn("Unusable coordinates", zap.String("code", to.IATA3), zap.Error(err))
		return Route{}, false
	}

	return Route{
		ID:                 RouteID(fr.SourceAirport, fr.DestinationAirport, fr.Airline),
		StartingAirport:    fr.SourceAirport,
		DestinationAirport: fr.DestinationAirport,
		Airline:            fr.Airline,
		Distance:           strconv.Itoa(geo.Distance(a, b)),
		Equipment:          SplitEquipment(fr.Equipment),
	}, true
}
