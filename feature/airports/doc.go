// Package airports builds the airport table from its three provenances:
// the OpenFlights registry, the airport search API used for backfilling,
// and the manually curated override table.
//
// # Precedence
//
// Merge concatenates registry, lookup and override records in that order.
// Table.Find returns the first record with a given code, so a later
// provenance can add airports but never replace one already present.
//
// # Field translation
//
// Fields lists, for every output column, the registry column and the search
// API property it is read from. Both mappings go through the same table so the
// output shape is defined in one place.
package airports
