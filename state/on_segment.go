package state

import (
	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

// OnSegmentState tracks a rider on a segment without following the route.
type OnSegmentState struct {
	Ride
}

func (s *OnSegmentState) Kind() Kind { return KindOnSegment }
func (s *OnSegmentState) gameState() {}

// UpdatePosition follows the rider across segments. Reaching the starting
// segment of a route that has not started starts the route. A started route
// can only be picked up again from the route states, so reaching its
// starting segment from here is an invalid transition.
func (s *OnSegmentState) UpdatePosition(position segments.TrackPoint, graph *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	seg, located, ok := locate(position, graph, s.CurrentSegment)
	if !ok {
		return NewPositioned(s.Activity, position), plan, nil
	}

	ride := s.moveTo(seg, located)
	if plan.IsStartingSegment(seg.ID) {
		if plan.HasStarted {
			return nil, plan, invalid(OpUpdatePosition, s.Kind(), "route has already started and can't be re-entered on its first segment")
		}
		started, err := plan.EnteredSegment(seg.ID)
		if err != nil {
			return nil, plan, invalid(OpUpdatePosition, s.Kind(), err.Error())
		}
		return &OnRouteState{Ride: ride, Route: started}, started, nil
	}
	return &OnSegmentState{Ride: ride}, plan, nil
}

func (s *OnSegmentState) EnterGame(riderID, activityID uint64) (GameState, error) {
	return reenter(s, s.Activity, riderID, activityID), nil
}

func (s *OnSegmentState) LeaveGame() (GameState, error) {
	return NewConnectedToZwift(), nil
}

func (s *OnSegmentState) TurnCommandAvailable(string) (GameState, error) {
	return s, nil
}
