package domain

import (
	"fmt"
	"strconv"
)

// Immutable geographic coordinates (latitude, longitude).
// Every geocoder converts its provider payload into this shape before
// returning, whatever order or encoding the provider uses.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as "lon,lat" for routing URL path segments.
func (c Coordinates) LonLat() string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%g, %g)", c.Lat, c.Lon)
}
