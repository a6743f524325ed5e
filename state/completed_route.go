package state

import (
	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

// CompletedRouteState is a rider who finished the route. Positions are
// still tracked, the route no longer is.
type CompletedRouteState struct {
	Ride
	Route route.PlannedRoute
}

func (s *CompletedRouteState) Kind() Kind { return KindCompletedRoute }
func (s *CompletedRouteState) gameState() {}

func (s *CompletedRouteState) UpdatePosition(position segments.TrackPoint, graph *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	ride := s.moveOff(position)
	if seg, located, ok := locate(position, graph, s.CurrentSegment); ok {
		ride = s.moveTo(seg, located)
	}
	return &CompletedRouteState{Ride: ride, Route: s.Route}, plan, nil
}

// EnterGame with the activity that was just completed is rejected; a
// different rider or activity starts over.
func (s *CompletedRouteState) EnterGame(riderID, activityID uint64) (GameState, error) {
	if s.is(riderID, activityID) {
		return nil, invalid(OpEnterGame, s.Kind(), "activity has already completed the route")
	}
	return NewInGame(riderID, activityID), nil
}

func (s *CompletedRouteState) LeaveGame() (GameState, error) {
	return NewConnectedToZwift(), nil
}

func (s *CompletedRouteState) TurnCommandAvailable(string) (GameState, error) {
	return s, nil
}
