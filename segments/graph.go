package segments

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrDuplicateSegment  = errors.New("duplicate segment")
	ErrUnknownTurnTarget = errors.New("turn targets unknown segment")
)

var validate = validator.New()

// Graph is the immutable set of segments a rider can be matched against.
type Graph struct {
	segments []*Segment
	byID     map[string]*Segment
}

// NewGraph validates the segments, computes their distances and indexes
// them by id. Segment order is kept and used to break ties when matching.
func NewGraph(segs ...*Segment) (*Graph, error) {
	g := &Graph{
		segments: make([]*Segment, 0, len(segs)),
		byID:     make(map[string]*Segment, len(segs)),
	}
	for _, s := range segs {
		if s == nil {
			continue
		}
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("segment %q: %w", s.ID, err)
		}
		if _, ok := g.byID[s.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSegment, s.ID)
		}
		g.byID[s.ID] = s
		g.segments = append(g.segments, s)
	}

	for _, s := range g.segments {
		for _, turns := range [][]Turn{s.NextSegmentsNodeA, s.NextSegmentsNodeB} {
			for _, t := range turns {
				if _, ok := g.byID[t.SegmentID]; !ok {
					return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownTurnTarget, s.ID, t.SegmentID)
				}
			}
		}
		s.CalculateDistances()
	}
	return g, nil
}

// Segment returns the segment with the given id, or nil.
func (g *Graph) Segment(id string) *Segment {
	if g == nil {
		return nil
	}
	return g.byID[id]
}

// Segments returns the segments in load order.
func (g *Graph) Segments() []*Segment {
	if g == nil {
		return nil
	}
	return g.segments
}

// Len returns the number of segments.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.segments)
}

// FindContainingSegment returns the segment whose nearest point is within
// geo.CloseToMeters of p. When several qualify, the closest wins; on equal
// distance the segment loaded first wins.
func (g *Graph) FindContainingSegment(p TrackPoint) (*Segment, TrackPoint, bool) {
	var (
		found        *Segment
		foundPoint   TrackPoint
		bestDistance float64
	)
	for _, s := range g.Segments() {
		located, d, ok := s.Locate(p)
		if !ok {
			continue
		}
		if found == nil || d < bestDistance {
			found = s
			foundPoint = located
			bestDistance = d
		}
	}
	return found, foundPoint, found != nil
}
