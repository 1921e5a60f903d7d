package openflights

// Local file names of the downloaded feeds.
const (
	AirportsFeedFile = "airports.dat"
	RoutesFeedFile   = "routes.dat"
)

// ReservedNames are files that share the data directory with the lookup cache
// and must never be read as cached lookups.
var ReservedNames = []string{".DS_Store", AirportsFeedFile, RoutesFeedFile}

// RegistryColumns is the column layout of airports.dat.
var RegistryColumns = []string{
	"id", "name", "city", "country", "iata", "icao", "lat", "lng",
	"elevation", "tz", "dst", "olson_tz_name", "type", "source",
}

// RouteColumns is the column layout of routes.dat.
var RouteColumns = []string{
	"airline", "airline_id", "source_airport", "source_airport_id",
	"destination_airport", "destination_airport_id", "codeshare", "stops", "equipment",
}

// IsReserved reports whether name is one of ReservedNames.
func IsReserved(name string) bool {
	for _, r := range ReservedNames {
		if r == name {
			return true
		}
	}
	return false
}
