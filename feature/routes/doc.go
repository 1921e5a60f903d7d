// Package routes turns the OpenFlights route feed into the output route table.
//
// Feed rows whose airline code is not exactly two characters are dropped at
// parse time. The Resolver then drops routes touching a permanently unknown
// airport or an airport missing from the merged table, computes the great-circle
// distance of the rest and spreads the equipment list over nine fixed slots.
package routes
