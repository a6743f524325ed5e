package state

import (
	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

// OnRouteState tracks a rider who is following the planned route.
type OnRouteState struct {
	Ride
	Route route.PlannedRoute

	// TurnDirections are the directions the game has offered for the
	// junction ahead so far.
	TurnDirections []segments.TurnDirection
}

func (s *OnRouteState) Kind() Kind { return KindOnRoute }
func (s *OnRouteState) gameState() {}

func (s *OnRouteState) UpdatePosition(position segments.TrackPoint, graph *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
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
		return &OnRouteState{Ride: ride, Route: plan, TurnDirections: s.TurnDirections}, plan, nil
	}

	return leaveRouteSegment(s.Kind(), s.Ride, seg, located, plan)
}

func (s *OnRouteState) EnterGame(riderID, activityID uint64) (GameState, error) {
	return reenter(s, s.Activity, riderID, activityID), nil
}

func (s *OnRouteState) LeaveGame() (GameState, error) {
	return NewConnectedToZwift(), nil
}

// TurnCommandAvailable records a direction offered by the game. Signals are
// ignored until the direction of travel is known, because the junction
// ahead depends on it. Once two different directions are known for a
// junction with more than one way out, the rider has an upcoming turn.
func (s *OnRouteState) TurnCommandAvailable(label string) (GameState, error) {
	d, ok := parseTurn(label)
	if !ok || s.Direction == segments.DirectionUnknown {
		return s, nil
	}

	directions, added := addTurn(s.TurnDirections, d)
	if !added {
		return s, nil
	}

	if len(directions) >= 2 && s.CurrentSegment != nil && s.CurrentSegment.IsJunctionAhead(s.Direction) {
		return &UpcomingTurnState{Ride: s.Ride, Route: s.Route, TurnDirections: directions}, nil
	}
	return &OnRouteState{Ride: s.Ride, Route: s.Route, TurnDirections: directions}, nil
}

// TurnCommand is always TurnNone: there is nothing to send before the turn
// is upcoming.
func (s *OnRouteState) TurnCommand() segments.TurnDirection {
	return segments.TurnNone
}

func plannedDirection(plan route.PlannedRoute) segments.SegmentDirection {
	if step, ok := plan.CurrentStep(); ok {
		return step.Direction
	}
	return segments.DirectionUnknown
}

// leaveRouteSegment handles a rider locked on the route who is now located
// on seg, a segment other than the current route segment. Entering the
// expected next segment advances the route. On the last step, any segment
// reachable from the node ahead completes it. Anything else loses the lock.
func leaveRouteSegment(kind Kind, from Ride, seg *segments.Segment, located segments.TrackPoint, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	ride := from.moveTo(seg, located)

	if seg.ID == plan.NextSegmentID() {
		next, err := plan.EnteredSegment(seg.ID)
		if err != nil {
			return nil, plan, invalid(OpUpdatePosition, kind, err.Error())
		}
		return &OnRouteState{Ride: ride, Route: next}, next, nil
	}

	if plan.IsOnLastSegment() && from.CurrentSegment != nil && from.CurrentSegment.ConnectsTo(from.heading(plan), seg.ID) {
		done, err := plan.Complete()
		if err != nil {
			return nil, plan, invalid(OpUpdatePosition, kind, err.Error())
		}
		return &CompletedRouteState{Ride: ride, Route: done}, done, nil
	}

	return &LostRouteLockState{Ride: ride, Route: plan}, plan, nil
}
