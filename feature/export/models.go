package export

import (
	"strconv"
	"strings"

	"route-atlas/core/utils"
	"route-atlas/feature/airports"
	"route-atlas/feature/routes"
)

// AirportRow is the 'airports' table.
type AirportRow struct {
	ID        uint     `gorm:"column:id;primaryKey;autoIncrement"`
	IATA3     string   `gorm:"column:iata3;size:3;index"`
	Name      string   `gorm:"column:name"`
	City      string   `gorm:"column:city"`
	Country   string   `gorm:"column:country"`
	Elevation *int     `gorm:"column:elevation"`
	Latitude  *float64 `gorm:"column:latitude"`
	Longitude *float64 `gorm:"column:longitude"`
	Source    string   `gorm:"column:source;size:16"`
}

// TableName overrides the table name.
func (AirportRow) TableName() string {
	return "airports"
}

// RouteRow is the 'routes' table. RouteID is not unique: the feed lists the
// same airline and airport pair once per codeshare variant.
type RouteRow struct {
	ID                 uint   `gorm:"column:id;primaryKey;autoIncrement"`
	RouteID            string `gorm:"column:route_id;size:8;index"`
	StartingAirport    string `gorm:"column:starting_airport;size:3"`
	DestinationAirport string `gorm:"column:destination_airport;size:3"`
	Airline            string `gorm:"column:airline;size:2"`
	Distance           int    `gorm:"column:distance"`
	Equipment          string `gorm:"column:equipment"` // space separated, missing slots dropped
}

// TableName overrides the table name.
func (RouteRow) TableName() string {
	return "routes"
}

// airportColumns and routeColumns are checked against the live schema.
var (
	airportColumns = []string{"id", "iata3", "name", "city", "country", "elevation", "latitude", "longitude", "source"}
	routeColumns   = []string{"id", "route_id", "starting_airport", "destination_airport", "airline", "distance", "equipment"}
)

// NewAirportRow converts an airport. Non numeric values become NULL.
func NewAirportRow(a airports.Airport) AirportRow {
	return AirportRow{
		IATA3:     a.IATA3,
		Name:      a.Name,
		City:      a.City,
		Country:   a.Country,
		Elevation: parseInt(a.Elevation),
		Latitude:  parseFloat(a.Latitude),
		Longitude: parseFloat(a.Longitude),
		Source:    string(a.Source),
	}
}

// NewRouteRow converts a route.
func NewRouteRow(r routes.Route) RouteRow {
	var equipment []string
	for _, e := range r.Equipment {
		if e != "" && e != routes.MissingEquipment {
			equipment = append(equipment, e)
		}
	}
	return RouteRow{
		RouteID:            r.ID,
		StartingAirport:    r.StartingAirport,
		DestinationAirport: r.DestinationAirport,
		Airline:            r.Airline,
		Distance:           utils.ToInt(r.Distance),
		Equipment:          strings.Join(equipment, " "),
	}
}

func parseInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}
