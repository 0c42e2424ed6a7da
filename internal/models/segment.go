package models

import "github.com/UnknownOlympus/geokit/pkg/geo"

// Segment represents a pair of geocoded points whose great-circle length
// has not been computed yet.
type Segment struct {
	ID          int          // ID is the unique identifier for the segment.
	Origin      geo.Location // Origin is the starting point of the segment.
	Destination geo.Location // Destination is the end point of the segment.
}
