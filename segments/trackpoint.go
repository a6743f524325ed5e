package segments

import (
	"fmt"

	"github.com/theoremus-urban-solutions/ridenav/geo"
)

// TrackPoint is a position sample. Points owned by a segment additionally
// carry their index on the segment and distance information; a raw sample
// from the game has an empty SegmentID.
type TrackPoint struct {
	Latitude  float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Longitude float64 `yaml:"lon" validate:"gte=-180,lte=180"`
	Altitude  float64 `yaml:"alt"`
	WorldID   int     `yaml:"world,omitempty"`

	Index             int     `yaml:"-"`
	SegmentID         string  `yaml:"-"`
	DistanceOnSegment float64 `yaml:"-"`
	DistanceFromLast  float64 `yaml:"-"`
}

// NewTrackPoint creates a raw position sample.
func NewTrackPoint(lat, lon, alt float64) TrackPoint {
	return TrackPoint{Latitude: lat, Longitude: lon, Altitude: alt}
}

// OnSegment reports whether the point has been located on a segment.
func (p TrackPoint) OnSegment() bool {
	return p.SegmentID != ""
}

// Equal compares geographic position only.
func (p TrackPoint) Equal(o TrackPoint) bool {
	return p.Latitude == o.Latitude && p.Longitude == o.Longitude && p.Altitude == o.Altitude
}

// DistanceTo returns the distance in meters to o.
func (p TrackPoint) DistanceTo(o TrackPoint) float64 {
	return geo.DistanceMeters(p.Latitude, p.Longitude, o.Latitude, o.Longitude)
}

// IsCloseTo reports whether o is within geo.CloseToMeters.
func (p TrackPoint) IsCloseTo(o TrackPoint) bool {
	return geo.IsCloseTo(p.Latitude, p.Longitude, o.Latitude, o.Longitude)
}

// BearingTo returns the initial bearing in degrees to o.
func (p TrackPoint) BearingTo(o TrackPoint) float64 {
	return geo.BearingDegrees(p.Latitude, p.Longitude, o.Latitude, o.Longitude)
}

func (p TrackPoint) String() string {
	if p.OnSegment() {
		return fmt.Sprintf("%.6f,%.6f,%.1f (%s#%d)", p.Latitude, p.Longitude, p.Altitude, p.SegmentID, p.Index)
	}
	return fmt.Sprintf("%.6f,%.6f,%.1f", p.Latitude, p.Longitude, p.Altitude)
}
