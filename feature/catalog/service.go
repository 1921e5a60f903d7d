package catalog

import (
	"context"
	"strings"
	"time"

	"route-atlas/feature/airports"
	"route-atlas/feature/routes"

	"go.uber.org/zap"
)

// Summary describes the loaded dataset.
type Summary struct {
	Airports int       `json:"airports"`
	Codes    int       `json:"codes"`
	Routes   int       `json:"routes"`
	RouteIDs int       `json:"route_ids"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Page is a slice of the airport table.
type Page struct {
	Total    int                `json:"total"`
	Offset   int                `json:"offset"`
	Airports []airports.Airport `json:"airports"`
}

// Service answers catalog queries from the cached dataset.
type Service struct {
	cache  *datasetCache
	logger *zap.Logger
}

// NewService creates a service over the two output files.
func NewService(airportsFile, routesFile string, ttl time.Duration, logger *zap.Logger) *Service {
	s := &Service{logger: logger}
	s.cache = newDatasetCache(ttl, func(ctx context.Context) (*Dataset, error) {
		ds, err := LoadDataset(ctx, airportsFile, routesFile)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded catalog dataset",
			zap.Int("airports", ds.Airports.Len()),
			zap.Int("routes", len(ds.Routes)))
		return ds, nil
	})
	return s
}

// ListAirports returns airports in table order, optionally filtered by
// country (case-insensitive). A non-positive limit returns everything.
func (s *Service) ListAirports(ctx context.Context, country string, offset, limit int) (*Page, error) {
	ds, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	var matched []airports.Airport
	for _, a := range ds.Airports.Records() {
		if country == "" || strings.EqualFold(a.Country, country) {
			matched = append(matched, a)
		}
	}

	page := &Page{Total: len(matched), Offset: offset}
	if offset < 0 || offset >= len(matched) {
		page.Airports = []airports.Airport{}
		return page, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	page.Airports = matched[offset:end]
	return page, nil
}

// GetAirport returns the first airport with code.
func (s *Service) GetAirport(ctx context.Context, code string) (airports.Airport, bool, error) {
	ds, err := s.cache.Get(ctx)
	if err != nil {
		return airports.Airport{}, false, err
	}
	a, ok := ds.Airports.Find(strings.ToUpper(code))
	return a, ok, nil
}

// GetRoutes returns every route with id.
func (s *Service) GetRoutes(ctx context.Context, id string) ([]routes.Route, error) {
	ds, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ds.RoutesByID(strings.ToUpper(id)), nil
}

// Summary describes the cached dataset.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	ds, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Airports: ds.Airports.Len(),
		Codes:    ds.Airports.Codes().Len(),
		Routes:   len(ds.Routes),
		RouteIDs: len(ds.RouteIndex),
		LoadedAt: ds.LoadedAt,
	}, nil
}

// Reload drops the cached dataset so the next query reads the files again.
func (s *Service) Reload() {
	s.cache.Invalidate()
}
