// Package catalog serves the output tables over a read-only HTTP API.
//
// # Endpoints
//
//	GET /airports            list airports, optional ?country=, ?limit= and ?offset=
//	GET /airports/:code      first airport with the code
//	GET /routes/:id          every route with the id
//	GET /report              counts of the loaded dataset
//
// # Caching
//
// Both tables are read from disk into a Dataset kept in a TTL cache. Concurrent
// requests on a cold cache share one load through singleflight, so a rebuild of
// the outputs shows up at most one TTL later.
package catalog
