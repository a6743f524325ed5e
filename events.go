package ridenav

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/ridenav/segments"
)

// EventType identifies a game event.
type EventType int

const (
	EventUnknown EventType = iota
	EventPosition
	EventTurn
	EventEnterGame
	EventLeaveGame
	EventLogIn
	EventSelectRoute
	EventConnect
)

var eventTypeNames = map[EventType]string{
	EventUnknown:     "unknown",
	EventPosition:    "position",
	EventTurn:        "turn",
	EventEnterGame:   "enterGame",
	EventLeaveGame:   "leaveGame",
	EventLogIn:       "logIn",
	EventSelectRoute: "selectRoute",
	EventConnect:     "connect",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return eventTypeNames[EventUnknown]
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(text []byte) error {
	for k, name := range eventTypeNames {
		if k != EventUnknown && strings.EqualFold(name, string(text)) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", text)
}

// Event is one message from the game.
type Event struct {
	Type     EventType
	Position segments.TrackPoint
	// Label is the turn command label for EventTurn and the access token
	// for EventLogIn.
	Label      string
	RiderID    uint64
	ActivityID uint64
}

func PositionEvent(p segments.TrackPoint) Event {
	return Event{Type: EventPosition, Position: p}
}

func TurnEvent(label string) Event {
	return Event{Type: EventTurn, Label: label}
}

func EnterGameEvent(riderID, activityID uint64) Event {
	return Event{Type: EventEnterGame, RiderID: riderID, ActivityID: activityID}
}

func LeaveGameEvent() Event {
	return Event{Type: EventLeaveGame}
}

func LogInEvent(accessToken string) Event {
	return Event{Type: EventLogIn, Label: accessToken}
}

func SelectRouteEvent() Event {
	return Event{Type: EventSelectRoute}
}

func ConnectEvent() Event {
	return Event{Type: EventConnect}
}
