// Package geo computes great-circle distances between airports.
package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used for every distance.
// A spherical model is accurate to roughly 0.5%; swap the formula, not the
// constant, if geodetic precision matters.
const EarthRadiusKm = 6372.8

// Radians converts decimal degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great-circle distance in whole kilometres between two
// points given in decimal degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) int {
	rLat1, rLat2 := Radians(lat1), Radians(lat2)
	deltaLat := rLat2 - rLat1
	deltaLng := Radians(lng2) - Radians(lng1)

	sinLat := math.Sin(deltaLat / 2)
	sinLng := math.Sin(deltaLng / 2)
	a := sinLat*sinLat + math.Cos(rLat1)*math.Cos(rLat2)*sinLng*sinLng

	return int(math.Round(2 * math.Asin(math.Sqrt(a)) * EarthRadiusKm))
}

// Point is a coordinate pair in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// ParsePoint parses textual latitude and longitude values.
func ParsePoint(lat, lng string) (Point, error) {
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid latitude %q: %w", lat, err)
	}
	ln, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid longitude %q: %w", lng, err)
	}
	return Point{Lat: la, Lng: ln}, nil
}

// Distance is Haversine between two points.
func Distance(a, b Point) int {
	return Haversine(a.Lat, a.Lng, b.Lat, b.Lng)
}
