package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"route-atlas/feature/airports"
	"route-atlas/feature/routes"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const datasetKey = "dataset"

// Dataset is an indexed snapshot of both output tables.
type Dataset struct {
	Airports *airports.Table
	Routes   []routes.Route
	// RouteIndex maps a route id to the positions of its routes.
	RouteIndex map[string][]int
	LoadedAt   time.Time
}

// RoutesByID returns every route with id, in table order.
func (d *Dataset) RoutesByID(id string) []routes.Route {
	idx := d.RouteIndex[id]
	out := make([]routes.Route, len(idx))
	for i, pos := range idx {
		out[i] = d.Routes[pos]
	}
	return out
}

// LoadDataset reads both tables concurrently and indexes the routes.
func LoadDataset(ctx context.Context, airportsFile, routesFile string) (*Dataset, error) {
	var (
		table      []airports.Airport
		rs         []routes.Route
		airportErr error
		routeErr   error
		wg         sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		table, airportErr = airports.ReadTable(airportsFile, "")
	}()
	go func() {
		defer wg.Done()
		rs, routeErr = routes.ReadTable(routesFile)
	}()
	wg.Wait()

	if airportErr != nil {
		return nil, fmt.Errorf("failed to load airports: %w", airportErr)
	}
	if routeErr != nil {
		return nil, fmt.Errorf("failed to load routes: %w", routeErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	index := make(map[string][]int)
	for i, r := range rs {
		index[r.ID] = append(index[r.ID], i)
	}

	return &Dataset{
		Airports:   airports.Merge(table, nil, nil),
		Routes:     rs,
		RouteIndex: index,
		LoadedAt:   time.Now(),
	}, nil
}

// datasetCache keeps the current Dataset for one TTL.
type datasetCache struct {
	store *gocache.Cache
	sf    singleflight.Group
	load  func(ctx context.Context) (*Dataset, error)
}

func newDatasetCache(ttl time.Duration, load func(ctx context.Context) (*Dataset, error)) *datasetCache {
	return &datasetCache{
		store: gocache.New(ttl, 2*ttl),
		load:  load,
	}
}

// Get returns the cached dataset or loads it. Uses singleflight to prevent
// cache stampedes.
func (c *datasetCache) Get(ctx context.Context) (*Dataset, error) {
	if v, ok := c.store.Get(datasetKey); ok {
		return v.(*Dataset), nil
	}

	v, err, _ := c.sf.Do(datasetKey, func() (interface{}, error) {
		// Double-check after acquiring the flight
		if v, ok := c.store.Get(datasetKey); ok {
			return v, nil
		}
		ds, err := c.load(ctx)
		if err != nil {
			return nil, err
		}
		c.store.SetDefault(datasetKey, ds)
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dataset), nil
}

// Invalidate drops the cached dataset.
func (c *datasetCache) Invalidate() {
	c.store.Delete(datasetKey)
}
