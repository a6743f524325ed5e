package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/ridenav"
	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

// scenario is a recorded or hand-written game session.
type scenario struct {
	Segments []*segments.Segment `yaml:"segments"`
	Route    route.PlannedRoute  `yaml:"route"`
	Events   []scenarioEvent     `yaml:"events"`
}

type scenarioEvent struct {
	Type     ridenav.EventType `yaml:"type"`
	Lat      float64           `yaml:"lat"`
	Lon      float64           `yaml:"lon"`
	Alt      float64           `yaml:"alt"`
	Label    string            `yaml:"label"`
	Token    string            `yaml:"token"`
	Rider    uint64            `yaml:"rider"`
	Activity uint64            `yaml:"activity"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var sc scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if len(sc.Segments) == 0 {
		return nil, errors.New("scenario has no segments")
	}
	return &sc, nil
}

func (e scenarioEvent) event() (ridenav.Event, error) {
	switch e.Type {
	case ridenav.EventPosition:
		return ridenav.PositionEvent(segments.NewTrackPoint(e.Lat, e.Lon, e.Alt)), nil
	case ridenav.EventTurn:
		return ridenav.TurnEvent(e.Label), nil
	case ridenav.EventEnterGame:
		return ridenav.EnterGameEvent(e.Rider, e.Activity), nil
	case ridenav.EventLeaveGame:
		return ridenav.LeaveGameEvent(), nil
	case ridenav.EventLogIn:
		return ridenav.LogInEvent(e.Token), nil
	case ridenav.EventSelectRoute:
		return ridenav.SelectRouteEvent(), nil
	case ridenav.EventConnect:
		return ridenav.ConnectEvent(), nil
	}
	return ridenav.Event{}, errors.New("event without a type")
}

// events converts the scenario's events, reporting the first bad one.
func (sc *scenario) events() ([]ridenav.Event, error) {
	out := make([]ridenav.Event, 0, len(sc.Events))
	for i, e := range sc.Events {
		ev, err := e.event()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		out = append(out, ev)
	}
	return out, nil
}
