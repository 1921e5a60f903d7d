package airports

import "route-atlas/core/tabular"

// AbsentCode is the registry's marker for an airport without an IATA code.
const AbsentCode = `\N`

// Columns is the column order of the airport output and override tables.
var Columns = []string{"IATA3", "Name", "City", "Country", "Elevation", "Latitude", "Longitude"}

// Source identifies where an airport record came from.
type Source string

const (
	SourceRegistry Source = "registry"
	SourceLookup   Source = "lookup"
	SourceOverride Source = "override"
)

// Airport is one row of the output airport table. Values keep the text of
// their source; Latitude and Longitude are decimal degrees.
type Airport struct {
	IATA3     string `json:"iata3"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Elevation string `json:"elevation"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Source    Source `json:"source,omitempty"`
}

// Values returns the airport's fields in Columns order.
func (a Airport) Values() []string {
	return []string{a.IATA3, a.Name, a.City, a.Country, a.Elevation, a.Latitude, a.Longitude}
}

// set assigns the field named by an output column.
func (a *Airport) set(column, value string) {
	switch column {
	case "IATA3":
		a.IATA3 = value
	case "Name":
		a.Name = value
	case "City":
		a.City = value
	case "Country":
		a.Country = value
	case "Elevation":
		a.Elevation = value
	case "Latitude":
		a.Latitude = value
	case "Longitude":
		a.Longitude = value
	}
}

// RegistryRow is one decoded airports.dat record.
type RegistryRow struct {
	row tabular.Row
}

// NewRegistryRow wraps a row decoded with openflights.RegistryColumns.
func NewRegistryRow(row tabular.Row) RegistryRow {
	return RegistryRow{row: row}
}

// IATA returns the row's IATA code, possibly AbsentCode or "".
func (r RegistryRow) IATA() string {
	return r.row.Get("iata")
}

// ICAO returns the row's ICAO code.
func (r RegistryRow) ICAO() string {
	return r.row.Get("icao")
}

// IsCodeless reports whether the row lacks a usable IATA code.
// Only the two exact markers count; no trimming or case folding is applied.
func (r RegistryRow) IsCodeless() bool {
	code := r.IATA()
	return code == AbsentCode || code == ""
}

// Airport maps the row onto the output shape.
func (r RegistryRow) Airport() Airport {
	a := Airport{Source: SourceRegistry}
	for _, f := range Fields {
		a.set(f.Column, r.row.Get(f.Registry))
	}
	return a
}
