package state

import (
	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

// InGameState is entered when the rider starts an activity, before any
// position is known.
type InGameState struct {
	Activity
}

func NewInGame(riderID, activityID uint64) *InGameState {
	return &InGameState{Activity: Activity{RiderID: riderID, ActivityID: activityID}}
}

func (s *InGameState) Kind() Kind { return KindInGame }
func (s *InGameState) gameState() {}

// UpdatePosition places the rider. A first sample on the starting segment
// of a route that has not started yet starts the route.
func (s *InGameState) UpdatePosition(position segments.TrackPoint, graph *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	seg, located, ok := graph.FindContainingSegment(position)
	if !ok {
		return NewPositioned(s.Activity, position), plan, nil
	}

	ride := startRide(s.Activity, seg, located)
	if !plan.HasStarted && plan.IsStartingSegment(seg.ID) {
		started, err := plan.EnteredSegment(seg.ID)
		if err != nil {
			return nil, plan, invalid(OpUpdatePosition, s.Kind(), err.Error())
		}
		return &OnRouteState{Ride: ride, Route: started}, started, nil
	}
	return &OnSegmentState{Ride: ride}, plan, nil
}

func (s *InGameState) EnterGame(riderID, activityID uint64) (GameState, error) {
	return reenter(s, s.Activity, riderID, activityID), nil
}

func (s *InGameState) LeaveGame() (GameState, error) {
	return NewConnectedToZwift(), nil
}

func (s *InGameState) TurnCommandAvailable(string) (GameState, error) {
	return s, nil
}

// PositionedState has a position that is not on any known segment.
type PositionedState struct {
	Activity
	CurrentPosition segments.TrackPoint
}

func NewPositioned(a Activity, position segments.TrackPoint) *PositionedState {
	return &PositionedState{Activity: a, CurrentPosition: position}
}

func (s *PositionedState) Kind() Kind { return KindPositioned }
func (s *PositionedState) gameState() {}

func (s *PositionedState) UpdatePosition(position segments.TrackPoint, graph *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	seg, located, ok := graph.FindContainingSegment(position)
	if !ok {
		return NewPositioned(s.Activity, position), plan, nil
	}
	return &OnSegmentState{Ride: startRide(s.Activity, seg, located)}, plan, nil
}

func (s *PositionedState) EnterGame(riderID, activityID uint64) (GameState, error) {
	return reenter(s, s.Activity, riderID, activityID), nil
}

func (s *PositionedState) LeaveGame() (GameState, error) {
	return NewConnectedToZwift(), nil
}

func (s *PositionedState) TurnCommandAvailable(string) (GameState, error) {
	return s, nil
}
