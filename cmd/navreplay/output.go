package main

import (
	"encoding/json"
	"io"

	"github.com/theoremus-urban-solutions/ridenav"
	"github.com/theoremus-urban-solutions/ridenav/geo"
	"github.com/theoremus-urban-solutions/ridenav/segments"
	"github.com/theoremus-urban-solutions/ridenav/state"
)

// replayLine is printed for every event of the scenario.
type replayLine struct {
	Seq            int                       `json:"seq"`
	Event          ridenav.EventType         `json:"event"`
	State          state.Kind                `json:"state"`
	Segment        string                    `json:"segment,omitempty"`
	Direction      segments.SegmentDirection `json:"direction,omitempty"`
	Heading        *float64                  `json:"heading,omitempty"`
	Elapsed        *segments.Totals          `json:"elapsed,omitempty"`
	RouteIndex     int                       `json:"routeIndex"`
	RouteStarted   bool                      `json:"routeStarted"`
	RouteCompleted bool                      `json:"routeCompleted"`
	TurnCommand    segments.TurnDirection    `json:"turnCommand"`
	Error          string                    `json:"error,omitempty"`
}

// printer writes one JSON line per transition. Heading is the bearing from
// the previous position sample.
type printer struct {
	enc  *json.Encoder
	seq  int
	last *segments.TrackPoint
	err  error
}

func newPrinter(w io.Writer) *printer {
	return &printer{enc: json.NewEncoder(w)}
}

func (p *printer) observe(t ridenav.Transition) {
	p.seq++
	line := replayLine{
		Seq:            p.seq,
		Event:          t.Event.Type,
		State:          t.To.Kind(),
		RouteIndex:     t.Route.SegmentSequenceIndex,
		RouteStarted:   t.Route.HasStarted,
		RouteCompleted: t.Route.HasCompleted,
		TurnCommand:    segments.TurnNone,
	}
	if t.Err != nil {
		line.Error = t.Err.Error()
	}
	if c, ok := t.To.(interface{ TurnCommand() segments.TurnDirection }); ok {
		line.TurnCommand = c.TurnCommand()
	}
	if ride, ok := rideOf(t.To); ok {
		line.Segment = ride.SegmentID()
		line.Direction = ride.Direction
		elapsed := ride.Elapsed
		line.Elapsed = &elapsed
	}
	if t.Event.Type == ridenav.EventPosition && t.Err == nil {
		pos := t.Event.Position
		if p.last != nil && !p.last.Equal(pos) {
			heading := geo.BearingDegrees(p.last.Latitude, p.last.Longitude, pos.Latitude, pos.Longitude)
			line.Heading = &heading
		}
		p.last = &pos
	}
	if err := p.enc.Encode(line); err != nil && p.err == nil {
		p.err = err
	}
}

func rideOf(s state.GameState) (state.Ride, bool) {
	switch s := s.(type) {
	case *state.OnSegmentState:
		return s.Ride, true
	case *state.OnRouteState:
		return s.Ride, true
	case *state.UpcomingTurnState:
		return s.Ride, true
	case *state.LostRouteLockState:
		return s.Ride, true
	case *state.CompletedRouteState:
		return s.Ride, true
	}
	return state.Ride{}, false
}
