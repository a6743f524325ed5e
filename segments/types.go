package segments

import (
	"fmt"
	"strings"
)

// SegmentDirection is the direction of travel along a segment.
type SegmentDirection int

const (
	DirectionUnknown SegmentDirection = iota
	DirectionAtoB
	DirectionBtoA
)

func (d SegmentDirection) String() string {
	switch d {
	case DirectionAtoB:
		return "AtoB"
	case DirectionBtoA:
		return "BtoA"
	default:
		return "Unknown"
	}
}

// Reverse returns the opposite direction. Unknown stays Unknown.
func (d SegmentDirection) Reverse() SegmentDirection {
	switch d {
	case DirectionAtoB:
		return DirectionBtoA
	case DirectionBtoA:
		return DirectionAtoB
	default:
		return DirectionUnknown
	}
}

// ParseSegmentDirection accepts "AtoB" and "BtoA" (case-insensitive).
func ParseSegmentDirection(s string) (SegmentDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "atob":
		return DirectionAtoB, nil
	case "btoa":
		return DirectionBtoA, nil
	case "", "unknown":
		return DirectionUnknown, nil
	}
	return DirectionUnknown, fmt.Errorf("unknown segment direction %q", s)
}

// TurnDirection is a direction the game can offer at a junction.
type TurnDirection int

const (
	TurnNone TurnDirection = iota
	TurnLeft
	TurnGoStraight
	TurnRight
)

func (t TurnDirection) String() string {
	switch t {
	case TurnLeft:
		return "Left"
	case TurnGoStraight:
		return "GoStraight"
	case TurnRight:
		return "Right"
	default:
		return "None"
	}
}

// ParseTurnDirection maps a turn label to a TurnDirection. Both the game's
// command names (turnleft, turnright, gostraight) and the bare names
// (left, right, straight) are accepted, case-insensitively. The boolean is
// false for anything else.
func ParseTurnDirection(label string) (TurnDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "turnleft", "left":
		return TurnLeft, true
	case "turnright", "right":
		return TurnRight, true
	case "gostraight", "straight":
		return TurnGoStraight, true
	case "none":
		return TurnNone, true
	}
	return TurnNone, false
}

// Turn is a directed edge from a segment node to another segment.
type Turn struct {
	Direction TurnDirection `yaml:"direction"`
	SegmentID string        `yaml:"segmentId" validate:"required"`
}

// SportType restricts which activities may use a segment.
type SportType int

const (
	SportUnknown SportType = iota
	SportCycling
	SportRunning
	SportBoth
)

func (s SportType) String() string {
	switch s {
	case SportCycling:
		return "Cycling"
	case SportRunning:
		return "Running"
	case SportBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

func (d SegmentDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *SegmentDirection) UnmarshalText(text []byte) error {
	v, err := ParseSegmentDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (t TurnDirection) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TurnDirection) UnmarshalText(text []byte) error {
	v, ok := ParseTurnDirection(string(text))
	if !ok {
		return fmt.Errorf("unknown turn direction %q", text)
	}
	*t = v
	return nil
}

func (s SportType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SportType) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "cycling":
		*s = SportCycling
	case "running":
		*s = SportRunning
	case "both":
		*s = SportBoth
	case "", "unknown":
		*s = SportUnknown
	default:
		return fmt.Errorf("unknown sport %q", text)
	}
	return nil
}
