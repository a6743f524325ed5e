// Package fixtures builds a small synthetic road network and routes over it
// for tests.
//
// Layout (north is up, points roughly 22m apart):
//
//	                seg-3 (B)
//	                  |
//	seg-1 (A) ---- J1 ---- seg-2 ---- J2 ---- seg-4 (B)
//	                                   |
//	                                 seg-5 (B)
//
// seg-1 runs west to east and ends at J1 where seg-2 (straight on) and
// seg-3 (left, northwards) start. seg-2 ends at J2 where seg-4 (straight
// on) and seg-5 (right, southwards) start. seg-3's node B has a single turn
// onto seg-9, which lies away from the rest of the network.
package fixtures

import (
	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

const (
	Seg1 = "seg-1"
	Seg2 = "seg-2"
	Seg3 = "seg-3"
	Seg4 = "seg-4"
	Seg5 = "seg-5"
	Seg9 = "seg-9"

	RiderID    uint64 = 1234
	ActivityID uint64 = 5678

	baseLat = -11.6400
	baseLon = 166.9500
	step    = 0.0002
)

// line builds n points starting at (lat, lon), moving dLat/dLon per point,
// with altitudes taken from alts (repeating the last value when short).
func line(lat, lon, dLat, dLon float64, n int, alts ...float64) []segments.TrackPoint {
	pts := make([]segments.TrackPoint, n)
	for i := 0; i < n; i++ {
		alt := 0.0
		if len(alts) > 0 {
			alt = alts[min(i, len(alts)-1)]
		}
		pts[i] = segments.NewTrackPoint(lat+float64(i)*dLat, lon+float64(i)*dLon, alt)
	}
	return pts
}

// Segments returns freshly built segments, in load order.
func Segments() []*segments.Segment {
	j1Lon := baseLon + 5*step
	j2Lon := baseLon + 10*step
	return []*segments.Segment{
		{
			ID:     Seg1,
			Name:   "Ocean Boulevard",
			Sport:  segments.SportCycling,
			Points: line(baseLat, baseLon, 0, step, 6, 10, 12, 14, 13, 15, 16),
			NextSegmentsNodeB: []segments.Turn{
				{Direction: segments.TurnGoStraight, SegmentID: Seg2},
				{Direction: segments.TurnLeft, SegmentID: Seg3},
			},
		},
		{
			ID:     Seg2,
			Name:   "Harbour Road",
			Sport:  segments.SportCycling,
			Points: line(baseLat, j1Lon, 0, step, 6, 16, 17, 18, 19, 20, 21),
			NextSegmentsNodeA: []segments.Turn{
				{Direction: segments.TurnGoStraight, SegmentID: Seg1},
				{Direction: segments.TurnRight, SegmentID: Seg3},
			},
			NextSegmentsNodeB: []segments.Turn{
				{Direction: segments.TurnGoStraight, SegmentID: Seg4},
				{Direction: segments.TurnRight, SegmentID: Seg5},
			},
		},
		{
			ID:     Seg3,
			Name:   "Hilltop Climb",
			Sport:  segments.SportCycling,
			Points: line(baseLat, j1Lon, step, 0, 6, 16, 20, 24, 28, 32, 36),
			NextSegmentsNodeA: []segments.Turn{
				{Direction: segments.TurnRight, SegmentID: Seg1},
				{Direction: segments.TurnLeft, SegmentID: Seg2},
			},
			NextSegmentsNodeB: []segments.Turn{
				{Direction: segments.TurnGoStraight, SegmentID: Seg9},
			},
		},
		{
			ID:     Seg4,
			Name:   "Coastal Straight",
			Sport:  segments.SportCycling,
			Points: line(baseLat, j2Lon, 0, step, 6, 21),
			NextSegmentsNodeA: []segments.Turn{
				{Direction: segments.TurnGoStraight, SegmentID: Seg2},
				{Direction: segments.TurnLeft, SegmentID: Seg5},
			},
		},
		{
			ID:     Seg5,
			Name:   "Quarry Descent",
			Sport:  segments.SportCycling,
			Points: line(baseLat, j2Lon, -step, 0, 6, 21, 18, 15, 12, 9, 6),
			NextSegmentsNodeA: []segments.Turn{
				{Direction: segments.TurnLeft, SegmentID: Seg2},
				{Direction: segments.TurnRight, SegmentID: Seg4},
			},
		},
		{
			ID:     Seg9,
			Name:   "Volcano Loop",
			Sport:  segments.SportCycling,
			Points: line(baseLat+0.01, baseLon, 0, step, 6, 50),
			NextSegmentsNodeA: []segments.Turn{
				{Direction: segments.TurnGoStraight, SegmentID: Seg3},
			},
		},
	}
}

// Graph returns a freshly built graph of the fixture network.
func Graph() *segments.Graph {
	g, err := segments.NewGraph(Segments()...)
	if err != nil {
		panic(err)
	}
	return g
}

// Point returns a raw sample at the index-th point of a segment, as the
// game would report it.
func Point(segmentID string, index int) segments.TrackPoint {
	for _, s := range Segments() {
		if s.ID == segmentID {
			p := s.Points[index]
			return segments.NewTrackPoint(p.Latitude, p.Longitude, p.Altitude)
		}
	}
	panic("unknown fixture segment " + segmentID)
}

// Noisy returns p moved north by roughly meters.
func Noisy(p segments.TrackPoint, meters float64) segments.TrackPoint {
	p.Latitude += meters / 111195.0
	return p
}

// OffNetwork returns a sample that matches no segment.
func OffNetwork() segments.TrackPoint {
	return segments.NewTrackPoint(baseLat-0.05, baseLon-0.05, 5)
}

// StraightRoute rides seg-1 then straight on along seg-2, ending at J2.
func StraightRoute() route.PlannedRoute {
	return route.New("Straight Shot",
		route.SegmentSequence{SegmentID: Seg1, Direction: segments.DirectionAtoB, TurnToNextSegment: segments.TurnGoStraight, NextSegmentID: Seg2},
		route.SegmentSequence{SegmentID: Seg2, Direction: segments.DirectionAtoB, TurnToNextSegment: segments.TurnNone},
	)
}

// LeftRoute rides seg-1, turns left onto seg-3 and finishes on seg-9.
func LeftRoute() route.PlannedRoute {
	return route.New("Hilltop",
		route.SegmentSequence{SegmentID: Seg1, Direction: segments.DirectionAtoB, TurnToNextSegment: segments.TurnLeft, NextSegmentID: Seg3},
		route.SegmentSequence{SegmentID: Seg3, Direction: segments.DirectionAtoB, TurnToNextSegment: segments.TurnGoStraight, NextSegmentID: Seg9},
		route.SegmentSequence{SegmentID: Seg9, Direction: segments.DirectionAtoB, TurnToNextSegment: segments.TurnNone},
	)
}
