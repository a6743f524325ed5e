package state

import (
	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

// LostRouteLockState is a rider who left the planned route but is still on
// the road network.
type LostRouteLockState struct {
	Ride
	Route route.PlannedRoute
}

func (s *LostRouteLockState) Kind() Kind { return KindLostRouteLock }
func (s *LostRouteLockState) gameState() {}

// UpdatePosition picks the route back up when the rider is on the current
// route segment riding the planned way, or on the expected next segment.
func (s *LostRouteLockState) UpdatePosition(position segments.TrackPoint, graph *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	if err := checkRouteInProgress(s.Kind(), plan); err != nil {
		return nil, plan, err
	}

	seg, located, ok := locate(position, graph, s.CurrentSegment)
	if !ok {
		return NewPositioned(s.Activity, position), plan, nil
	}

	ride := s.moveTo(seg, located)
	switch seg.ID {
	case plan.CurrentSegmentID:
		if !reversed(ride.Direction, segments.DirectionUnknown, plannedDirection(plan)) {
			return &OnRouteState{Ride: ride, Route: plan}, plan, nil
		}
	case plan.NextSegmentID():
		next, err := plan.EnteredSegment(seg.ID)
		if err != nil {
			return nil, plan, invalid(OpUpdatePosition, s.Kind(), err.Error())
		}
		return &OnRouteState{Ride: ride, Route: next}, next, nil
	}
	return &LostRouteLockState{Ride: ride, Route: plan}, plan, nil
}

func (s *LostRouteLockState) EnterGame(riderID, activityID uint64) (GameState, error) {
	return reenter(s, s.Activity, riderID, activityID), nil
}

func (s *LostRouteLockState) LeaveGame() (GameState, error) {
	return NewConnectedToZwift(), nil
}

func (s *LostRouteLockState) TurnCommandAvailable(string) (GameState, error) {
	return s, nil
}
