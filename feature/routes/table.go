package routes

import (
	"fmt"

	"route-atlas/core/tabular"
)

// ParseTable converts rows decoded with Columns into routes, unchanged.
func ParseTable(rows []tabular.Row) []Route {
	out := make([]Route, 0, len(rows))
	for _, row := range rows {
		r := Route{
			ID:                 row.Get("ID"),
			StartingAirport:    row.Get("StartingAirport"),
			DestinationAirport: row.Get("DestinationAirport"),
			Airline:            row.Get("Airline"),
			Distance:           row.Get("Distance"),
		}
		for i := range r.Equipment {
			r.Equipment[i] = row.Get(fmt.Sprintf("Equipment%d", i+1))
		}
		out = append(out, r)
	}
	return out
}

// ReadTable reads a route table with header row, such as the override table
// or a previous output.
func ReadTable(path string) ([]Route, error) {
	rows, err := tabular.ReadFile(path, Columns, true)
	if err != nil {
		return nil, err
	}
	return ParseTable(rows), nil
}

// Rows returns every route's values in Columns order.
func Rows(routes []Route) [][]string {
	rows := make([][]string, len(routes))
	for i, r := range routes {
		rows[i] = r.Values()
	}
	return rows
}
