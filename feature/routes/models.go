package routes

import (
	"strings"

	"route-atlas/core/reconcile"
	"route-atlas/core/tabular"
)

// EquipmentSlots is the fixed number of equipment columns per route.
const EquipmentSlots = 9

// MissingEquipment fills equipment slots the feed leaves empty.
const MissingEquipment = `\N`

// Columns is the column order of the route output and override tables.
var Columns = []string{
	"ID", "StartingAirport", "DestinationAirport", "Airline", "Distance",
	"Equipment1", "Equipment2", "Equipment3", "Equipment4", "Equipment5",
	"Equipment6", "Equipment7", "Equipment8", "Equipment9",
}

// FeedRoute is one routes.dat record.
type FeedRoute struct {
	Airline              string
	AirlineID            string
	SourceAirport        string
	SourceAirportID      string
	DestinationAirport   string
	DestinationAirportID string
	Codeshare            string
	Stops                string
	Equipment            string
}

// Endpoints returns the route's airport pair.
func (r FeedRoute) Endpoints() reconcile.Endpoints {
	return reconcile.Endpoints{From: r.SourceAirport, To: r.DestinationAirport}
}

func hasAirlineCode(r FeedRoute) bool {
	return len(r.Airline) == 2
}

// ParseFeed converts rows decoded with openflights.RouteColumns. Rows whose
// airline code is not exactly two characters are discarded and counted.
func ParseFeed(rows []tabular.Row) (kept []FeedRoute, discarded int) {
	all := make([]FeedRoute, len(rows))
	for i, row := range rows {
		all[i] = FeedRoute{
			Airline:              row.Get("airline"),
			AirlineID:            row.Get("airline_id"),
			SourceAirport:        row.Get("source_airport"),
			SourceAirportID:      row.Get("source_airport_id"),
			DestinationAirport:   row.Get("destination_airport"),
			DestinationAirportID: row.Get("destination_airport_id"),
			Codeshare:            row.Get("codeshare"),
			Stops:                row.Get("stops"),
			Equipment:            row.Get("equipment"),
		}
	}
	dropped, kept := reconcile.Partition(all, hasAirlineCode)
	return kept, len(dropped)
}

// Endpoints lists the airport pairs of every route.
func Endpoints(feed []FeedRoute) []reconcile.Endpoints {
	out := make([]reconcile.Endpoints, len(feed))
	for i, r := range feed {
		out[i] = r.Endpoints()
	}
	return out
}

// Route is one row of the output route table. Distance is kept as text so
// override rows pass through unchanged.
type Route struct {
	ID                 string                 `json:"id"`
	StartingAirport    string                 `json:"starting_airport"`
	DestinationAirport string                 `json:"destination_airport"`
	Airline            string                 `json:"airline"`
	Distance           string                 `json:"distance"`
	Equipment          [EquipmentSlots]string `json:"equipment"`
}

// Values returns the route's fields in Columns order.
func (r Route) Values() []string {
	values := make([]string, 0, len(Columns))
	values = append(values, r.ID, r.StartingAirport, r.DestinationAirport, r.Airline, r.Distance)
	return append(values, r.Equipment[:]...)
}

// RouteID concatenates source, destination and airline without a delimiter.
func RouteID(source, destination, airline string) string {
	return source + destination + airline
}

// SplitEquipment spreads a whitespace separated equipment list over the fixed
// slots. Missing slots hold MissingEquipment; codes past the last slot are dropped.
func SplitEquipment(equipment string) [EquipmentSlots]string {
	var slots [EquipmentSlots]string
	codes := strings.Fields(equipment)
	for i := range slots {
		if i < len(codes) {
			slots[i] = codes[i]
		} else {
			slots[i] = MissingEquipment
		}
	}
	return slots
}
