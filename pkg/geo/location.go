// Package geo provides latitude/longitude coordinate arithmetic on a
// spherical Earth model: great-circle distances via the haversine formula
// and point offsets along the four cardinal directions.
package geo

import (
	"fmt"
	"math"

	"github.com/UnknownOlympus/geokit/pkg/measure"
)

// RadiusOfEarth is the Earth radius used by every computation in this
// package, expressed as a distance so results inherit its unit.
var RadiusOfEarth = measure.FromKilometers(6378.137)

// CoordinateTolerance is the absolute tolerance, in degrees, under which
// two coordinates compare equal. Offset arithmetic accumulates rounding
// error, so exact float comparison is never reliable here.
const CoordinateTolerance = 1e-7

// Direction is one of the four cardinal directions a Location can be
// offset along.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "north"
	}
}

// Location is an immutable point on the Earth's surface in decimal
// degrees. Latitude is expected in [-90, 90] and longitude in
// [-180, 180]; out-of-range values are not validated and produce
// unspecified results.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// New creates a Location from a latitude/longitude degree pair.
func New(latitude, longitude float64) Location {
	return Location{Latitude: latitude, Longitude: longitude}
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// DistanceTo computes the great-circle distance to another location using
// the haversine formula on a sphere of RadiusOfEarth. The result carries
// the radius constant's unit (kilometers), is symmetric, zero for
// coincident points and bounded by pi times the radius.
func (l Location) DistanceTo(other Location) measure.Distance {
	lat1 := toRadians(l.Latitude)
	lat2 := toRadians(other.Latitude)
	dLat := lat2 - lat1
	dLng := toRadians(other.Longitude) - toRadians(l.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return RadiusOfEarth.Mul(c)
}

// Add returns a new location displaced from l by the given distance along
// one cardinal direction. The move is axis-aligned: North/South changes
// only latitude, East/West changes only longitude, scaled by the cosine
// of the latitude because circles of longitude shrink toward the poles.
//
// At latitude +-90 the East/West case divides by cos(90) = 0 and the
// resulting longitude is non-finite; no error is raised. The offset is an
// approximation valid for small distances, it ignores the curvature
// coupling between the two axes.
func (l Location) Add(distance measure.Distance, direction Direction) Location {
	// Angular distance in radians, then back to degrees.
	d := distance.Kilometers() / RadiusOfEarth.Kilometers()
	offset := d * 180 / math.Pi

	switch direction {
	case East, West:
		offset /= math.Cos(toRadians(l.Latitude))
		if direction == West {
			offset = -offset
		}
		return Location{Latitude: l.Latitude, Longitude: l.Longitude + offset}
	default:
		if direction == South {
			offset = -offset
		}
		return Location{Latitude: l.Latitude + offset, Longitude: l.Longitude}
	}
}

// EstimateDistance returns the sum of the absolute latitude and longitude
// deltas in degrees. It is a cheap, unit-less triage heuristic for ranking
// candidates before paying for a haversine, not a distance.
func (l Location) EstimateDistance(other Location) float64 {
	return math.Abs(l.Latitude-other.Latitude) + math.Abs(l.Longitude-other.Longitude)
}

// Equal reports whether both coordinates match within CoordinateTolerance.
func (l Location) Equal(other Location) bool {
	return measure.EqualWithin(l.Latitude, other.Latitude, CoordinateTolerance) &&
		measure.EqualWithin(l.Longitude, other.Longitude, CoordinateTolerance)
}

// String formats the location as "latitude,longitude".
func (l Location) String() string {
	return fmt.Sprintf("%v,%v", l.Latitude, l.Longitude)
}

// CenterPoint returns the arithmetic mean of the given locations. Calling
// it with an empty slice yields a NaN location.
func CenterPoint(locations []Location) Location {
	var totalLat, totalLng float64
	for _, loc := range locations {
		totalLat += loc.Latitude
		totalLng += loc.Longitude
	}
	n := float64(len(locations))
	return Location{Latitude: totalLat / n, Longitude: totalLng / n}
}
