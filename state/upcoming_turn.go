package state

import (
	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

// UpcomingTurnState is an on-route rider approaching a junction for which
// the game has offered at least two directions.
type UpcomingTurnState struct {
	Ride
	Route          route.PlannedRoute
	TurnDirections []segments.TurnDirection
}

func (s *UpcomingTurnState) Kind() Kind { return KindUpcomingTurn }
func (s *UpcomingTurnState) gameState() {}

func (s *UpcomingTurnState) UpdatePosition(position segments.TrackPoint, graph *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	if err := checkRouteInProgress(s.Kind(), plan); err != nil {
		return nil, plan, err
	}

	seg, located, ok := locate(position, graph, s.CurrentSegment)
	if !ok {
		return NewPositioned(s.Activity, position), plan, nil
	}

	if seg.ID == plan.CurrentSegmentID {
		ride := s.moveTo(seg, located)
		if reversed(ride.Direction, s.Direction, plannedDirection(plan)) {
			return &LostRouteLockState{Ride: ride, Route: plan}, plan, nil
		}
		return &UpcomingTurnState{Ride: ride, Route: plan, TurnDirections: s.TurnDirections}, plan, nil
	}

	return leaveRouteSegment(s.Kind(), s.Ride, seg, located, plan)
}

func (s *UpcomingTurnState) EnterGame(riderID, activityID uint64) (GameState, error) {
	return reenter(s, s.Activity, riderID, activityID), nil
}

func (s *UpcomingTurnState) LeaveGame() (GameState, error) {
	return NewConnectedToZwift(), nil
}

// TurnCommandAvailable adds a direction the game offers in addition to the
// ones already known.
func (s *UpcomingTurnState) TurnCommandAvailable(label string) (GameState, error) {
	d, ok := parseTurn(label)
	if !ok {
		return s, nil
	}
	directions, added := addTurn(s.TurnDirections, d)
	if !added {
		return s, nil
	}
	return &UpcomingTurnState{Ride: s.Ride, Route: s.Route, TurnDirections: directions}, nil
}

// TurnCommand is the command to send to the game for this junction.
func (s *UpcomingTurnState) TurnCommand() segments.TurnDirection {
	return route.ResolveTurnCommand(s.TurnDirections, s.Route.TurnToNextSegment())
}
