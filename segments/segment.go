package segments

import (
	"github.com/paulmach/orb"

	"github.com/theoremus-urban-solutions/ridenav/geo"
)

// Segment is one navigable stretch of road.
type Segment struct {
	ID                string       `yaml:"id" validate:"required"`
	Name              string       `yaml:"name"`
	Sport             SportType    `yaml:"sport"`
	Points            []TrackPoint `yaml:"points" validate:"min=2,dive"`
	NextSegmentsNodeA []Turn       `yaml:"nodeA" validate:"dive"`
	NextSegmentsNodeB []Turn       `yaml:"nodeB" validate:"dive"`

	// Totals over the whole segment, set by CalculateDistances.
	Distance float64 `yaml:"-"`
	Ascent   float64 `yaml:"-"`
	Descent  float64 `yaml:"-"`

	bound      orb.Bound
	calculated bool
}

// CalculateDistances assigns each point its index and segment id and
// computes distances and elevation deltas. Only the first call has any
// effect.
func (s *Segment) CalculateDistances() {
	if s.calculated {
		return
	}

	var distance, ascent, descent float64
	bounds := make([]orb.Point, len(s.Points))
	for i := range s.Points {
		p := &s.Points[i]
		p.Index = i
		p.SegmentID = s.ID
		p.DistanceFromLast = 0
		if i > 0 {
			prev := s.Points[i-1]
			p.DistanceFromLast = prev.DistanceTo(*p)
			distance += p.DistanceFromLast
			delta := p.Altitude - prev.Altitude
			if delta > 0 {
				ascent += delta
			} else {
				descent -= delta
			}
		}
		p.DistanceOnSegment = distance
		bounds[i] = geo.Point(p.Latitude, p.Longitude)
	}

	s.Distance = distance
	s.Ascent = ascent
	s.Descent = descent
	s.bound = geo.PaddedBound(bounds, geo.CloseToMeters)
	s.calculated = true
}

// A returns the point at node A.
func (s *Segment) A() TrackPoint { return s.Points[0] }

// B returns the point at node B.
func (s *Segment) B() TrackPoint { return s.Points[len(s.Points)-1] }

// Locate finds the segment point nearest to p. When it is within
// geo.CloseToMeters the returned point is p enriched with that point's
// index and segment id, together with the distance to it.
func (s *Segment) Locate(p TrackPoint) (TrackPoint, float64, bool) {
	if s.calculated && !s.bound.Contains(geo.Point(p.Latitude, p.Longitude)) {
		return TrackPoint{}, 0, false
	}

	best := -1
	bestDistance := 0.0
	for i := range s.Points {
		d := s.Points[i].DistanceTo(p)
		if best == -1 || d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	if best == -1 || bestDistance >= geo.CloseToMeters {
		return TrackPoint{}, 0, false
	}

	nearest := s.Points[best]
	located := p
	located.Index = nearest.Index
	located.SegmentID = s.ID
	located.DistanceOnSegment = nearest.DistanceOnSegment
	located.DistanceFromLast = 0
	return located, bestDistance, true
}

// Contains reports whether p lies on the segment.
func (s *Segment) Contains(p TrackPoint) bool {
	_, _, ok := s.Locate(p)
	return ok
}

// NextSegments returns the turns at the node the rider approaches when
// travelling in direction.
func (s *Segment) NextSegments(direction SegmentDirection) []Turn {
	switch direction {
	case DirectionAtoB:
		return s.NextSegmentsNodeB
	case DirectionBtoA:
		return s.NextSegmentsNodeA
	default:
		return nil
	}
}

// IsJunctionAhead reports whether the node ahead offers more than one turn.
func (s *Segment) IsJunctionAhead(direction SegmentDirection) bool {
	return len(s.NextSegments(direction)) > 1
}

// ConnectsTo reports whether segmentID is reachable from the node ahead.
func (s *Segment) ConnectsTo(direction SegmentDirection, segmentID string) bool {
	for _, t := range s.NextSegments(direction) {
		if t.SegmentID == segmentID {
			return true
		}
	}
	return false
}
