// Package openflights knows the shape and location of the OpenFlights data:
// the column layout of the raw airport and route feeds, how to download them,
// and how to query the airport search API used to backfill missing airports.
//
// # Feeds
//
// airports.dat and routes.dat are headerless comma-delimited files. Their
// column names are fixed here (RegistryColumns, RouteColumns) and decoded with
// core/tabular.
//
// # Airport search
//
// LookupClient posts the search form for one IATA code and returns the raw
// JSON body, which callers cache verbatim. ParseLookupResponse decodes it.
package openflights
