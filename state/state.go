package state

import (
	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

// Operation names used in errors and logs.
const (
	OpUpdatePosition       = "UpdatePosition"
	OpEnterGame            = "EnterGame"
	OpLeaveGame            = "LeaveGame"
	OpTurnCommandAvailable = "TurnCommandAvailable"
)

// Kind identifies a state variant.
type Kind int

const (
	KindNotLoggedIn Kind = iota
	KindInvalidCredentials
	KindLoggedIn
	KindReadyToGo
	KindConnectedToZwift
	KindInGame
	KindPositioned
	KindOnSegment
	KindOnRoute
	KindUpcomingTurn
	KindLostRouteLock
	KindCompletedRoute
	KindIncorrectConnectionSecret
	KindError
)

var kindNames = [...]string{
	KindNotLoggedIn:               "NotLoggedIn",
	KindInvalidCredentials:        "InvalidCredentials",
	KindLoggedIn:                  "LoggedIn",
	KindReadyToGo:                 "ReadyToGo",
	KindConnectedToZwift:          "ConnectedToZwift",
	KindInGame:                    "InGame",
	KindPositioned:                "Positioned",
	KindOnSegment:                 "OnSegment",
	KindOnRoute:                   "OnRoute",
	KindUpcomingTurn:              "UpcomingTurn",
	KindLostRouteLock:             "LostRouteLock",
	KindCompletedRoute:            "CompletedRoute",
	KindIncorrectConnectionSecret: "IncorrectConnectionSecret",
	KindError:                     "Error",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// GameState is one state of the navigation state machine.
type GameState interface {
	Kind() Kind

	// UpdatePosition applies a position sample. The returned route is the
	// input route, advanced when the transition made progress along it.
	UpdatePosition(position segments.TrackPoint, graph *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error)
	EnterGame(riderID, activityID uint64) (GameState, error)
	LeaveGame() (GameState, error)
	TurnCommandAvailable(label string) (GameState, error)

	gameState()
}

// Activity identifies the rider and the activity being ridden.
type Activity struct {
	RiderID    uint64 `json:"riderId"`
	ActivityID uint64 `json:"activityId"`
}

func (a Activity) is(riderID, activityID uint64) bool {
	return a.RiderID == riderID && a.ActivityID == activityID
}

// reenter implements EnterGame for the in-game states: the same rider and
// activity is a reconnect and keeps current, anything else starts over.
func reenter(current GameState, a Activity, riderID, activityID uint64) GameState {
	if a.is(riderID, activityID) {
		return current
	}
	return NewInGame(riderID, activityID)
}

// Ride is the position data shared by the states that track a rider on a
// segment.
type Ride struct {
	Activity
	CurrentPosition segments.TrackPoint
	CurrentSegment  *segments.Segment
	Direction       segments.SegmentDirection
	Elapsed         segments.Totals
}

// SegmentID returns the id of the current segment, or "".
func (r Ride) SegmentID() string {
	if r.CurrentSegment == nil {
		return ""
	}
	return r.CurrentSegment.ID
}

// startRide begins tracking on seg without any accumulated totals.
func startRide(a Activity, seg *segments.Segment, position segments.TrackPoint) Ride {
	return Ride{Activity: a, CurrentPosition: position, CurrentSegment: seg}
}

// moveTo returns the ride after moving to position on seg. Distance and
// elevation are accumulated from the previous position. On the same
// segment an unchanged index keeps the previous direction.
func (r Ride) moveTo(seg *segments.Segment, position segments.TrackPoint) Ride {
	direction := segments.DetermineDirection(r.CurrentPosition, position)
	if direction == segments.DirectionUnknown && r.SegmentID() == seg.ID {
		direction = r.Direction
	}
	return Ride{
		Activity:        r.Activity,
		CurrentPosition: position,
		CurrentSegment:  seg,
		Direction:       direction,
		Elapsed:         r.Elapsed.Add(segments.Accumulate(r.CurrentPosition, position)),
	}
}

// moveOff returns the ride after moving to a position on no segment.
func (r Ride) moveOff(position segments.TrackPoint) Ride {
	return Ride{
		Activity:        r.Activity,
		CurrentPosition: position,
		Elapsed:         r.Elapsed.Add(segments.Accumulate(r.CurrentPosition, position)),
	}
}

// heading is the direction used to pick the node ahead: the observed
// direction when known, else the direction the route step rides.
func (r Ride) heading(plan route.PlannedRoute) segments.SegmentDirection {
	if r.Direction != segments.DirectionUnknown {
		return r.Direction
	}
	if step, ok := plan.CurrentStep(); ok {
		return step.Direction
	}
	return segments.DirectionUnknown
}

// locate resolves position against the road network, preferring the
// segment being ridden so that a sample on a junction does not jump to
// another segment sharing that point.
func locate(position segments.TrackPoint, graph *segments.Graph, current *segments.Segment) (*segments.Segment, segments.TrackPoint, bool) {
	if current != nil {
		if located, _, ok := current.Locate(position); ok {
			return current, located, true
		}
	}
	return graph.FindContainingSegment(position)
}

// reversed reports whether the newly observed direction contradicts either
// the previously observed one or the direction the route step rides.
func reversed(observed, previous, planned segments.SegmentDirection) bool {
	if observed == segments.DirectionUnknown {
		return false
	}
	if previous != segments.DirectionUnknown && observed == previous.Reverse() {
		return true
	}
	return planned != segments.DirectionUnknown && observed == planned.Reverse()
}

// checkRouteInProgress rejects route tracking on a route that has not
// started or is already completed.
func checkRouteInProgress(kind Kind, plan route.PlannedRoute) error {
	if !plan.HasStarted {
		return invalid(OpUpdatePosition, kind, "route has not started")
	}
	if plan.HasCompleted {
		return invalid(OpUpdatePosition, kind, "route has already completed")
	}
	return nil
}

// addTurn returns directions with d appended, and whether d was new.
func addTurn(directions []segments.TurnDirection, d segments.TurnDirection) ([]segments.TurnDirection, bool) {
	for _, existing := range directions {
		if existing == d {
			return directions, false
		}
	}
	next := make([]segments.TurnDirection, len(directions), len(directions)+1)
	copy(next, directions)
	return append(next, d), true
}

// parseTurn maps a turn label to a direction, rejecting unrecognised labels
// and None.
func parseTurn(label string) (segments.TurnDirection, bool) {
	d, ok := segments.ParseTurnDirection(label)
	if !ok || d == segments.TurnNone {
		return segments.TurnNone, false
	}
	return d, true
}
