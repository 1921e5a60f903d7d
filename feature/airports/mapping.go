package airports

import "route-atlas/core/utils"

// FieldMapping links an output column to the registry column and the search
// API property that supply it.
type FieldMapping struct {
	Registry string
	Column   string
	Query    string
}

// Fields is the translation table for every output column, in Columns order.
var Fields = []FieldMapping{
	{Registry: "iata", Column: "IATA3", Query: "iata"},
	{Registry: "name", Column: "Name", Query: "name"},
	{Registry: "city", Column: "City", Query: "city"},
	{Registry: "country", Column: "Country", Query: "country"},
	{Registry: "elevation", Column: "Elevation", Query: "elevation"},
	{Registry: "lat", Column: "Latitude", Query: "x"},
	{Registry: "lng", Column: "Longitude", Query: "y"},
}

// FromLookup maps one airport of a search API response onto the output shape.
// Missing properties become empty strings.
func FromLookup(props map[string]any) Airport {
	a := Airport{Source: SourceLookup}
	for _, f := range Fields {
		a.set(f.Column, utils.ToString(props[f.Query]))
	}
	return a
}
