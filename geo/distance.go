package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// CloseToMeters is the radius within which two positions are considered
// the same place, e.g. the shared end points of segments at a junction.
const CloseToMeters = 5.0

// Point converts a latitude/longitude pair to an orb point (lon, lat order).
func Point(lat, lon float64) orb.Point {
	return orb.Point{lon, lat}
}

// DistanceMeters returns the great-circle distance between two positions.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.DistanceHaversine(Point(lat1, lon1), Point(lat2, lon2))
}

// IsCloseTo reports whether two positions are within CloseToMeters.
func IsCloseTo(lat1, lon1, lat2, lon2 float64) bool {
	return IsCloseWithin(lat1, lon1, lat2, lon2, CloseToMeters)
}

// IsCloseWithin reports whether two positions are strictly closer than meters.
func IsCloseWithin(lat1, lon1, lat2, lon2, meters float64) bool {
	return DistanceMeters(lat1, lon1, lat2, lon2) < meters
}

// BearingDegrees returns the initial bearing from the first position to the
// second, normalised to [0, 360).
func BearingDegrees(lat1, lon1, lat2, lon2 float64) float64 {
	b := geo.Bearing(Point(lat1, lon1), Point(lat2, lon2))
	if b < 0 {
		b += 360
	}
	return b
}

// PaddedBound returns the bounding box of the given points grown by meters
// on every side.
func PaddedBound(points []orb.Point, meters float64) orb.Bound {
	if len(points) == 0 {
		return orb.Bound{}
	}
	return geo.BoundPad(orb.MultiPoint(points).Bound(), meters)
}
