package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/ridenav/segments"
)

var (
	ErrRouteNotStarted   = errors.New("route has not started")
	ErrRouteCompleted    = errors.New("route has already completed")
	ErrUnexpectedSegment = errors.New("segment is not the expected next segment of the route")
	ErrEmptyRoute        = errors.New("route has no steps")
)

var validate = validator.New()

// SequenceType marks the role of a step in the route.
type SequenceType int

const (
	SequenceRegular SequenceType = iota
	SequenceLeadIn
	SequenceLoop
	SequenceLoopStart
	SequenceLoopEnd
)

func (t SequenceType) String() string {
	switch t {
	case SequenceLeadIn:
		return "LeadIn"
	case SequenceLoop:
		return "Loop"
	case SequenceLoopStart:
		return "LoopStart"
	case SequenceLoopEnd:
		return "LoopEnd"
	default:
		return "Regular"
	}
}

func (t SequenceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *SequenceType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "regular":
		*t = SequenceRegular
	case "leadin":
		*t = SequenceLeadIn
	case "loop":
		*t = SequenceLoop
	case "loopstart":
		*t = SequenceLoopStart
	case "loopend":
		*t = SequenceLoopEnd
	default:
		return fmt.Errorf("unknown sequence type %q", text)
	}
	return nil
}

// SegmentSequence is one step of a planned route.
type SegmentSequence struct {
	SegmentID         string                    `yaml:"segment" validate:"required"`
	Direction         segments.SegmentDirection `yaml:"direction"`
	TurnToNextSegment segments.TurnDirection    `yaml:"turn"`
	NextSegmentID     string                    `yaml:"next"`
	Type              SequenceType              `yaml:"type"`
}

// PlannedRoute is an ordered list of steps plus the rider's progress.
type PlannedRoute struct {
	Name  string             `yaml:"name"`
	World string             `yaml:"world"`
	Sport segments.SportType `yaml:"sport"`
	Steps []SegmentSequence  `yaml:"steps" validate:"dive"`

	HasStarted           bool   `yaml:"-"`
	HasCompleted         bool   `yaml:"-"`
	SegmentSequenceIndex int    `yaml:"-"`
	CurrentSegmentID     string `yaml:"-"`
}

// New creates a route that has not started.
func New(name string, steps ...SegmentSequence) PlannedRoute {
	return PlannedRoute{Name: name, Steps: steps}
}

// Validate checks the step list. Every step except the last must name
// the segment of the step after it as its next segment.
func (r PlannedRoute) Validate() error {
	if len(r.Steps) == 0 {
		return ErrEmptyRoute
	}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("route %q: %w", r.Name, err)
	}
	for i := 0; i < len(r.Steps)-1; i++ {
		if r.Steps[i].NextSegmentID != r.Steps[i+1].SegmentID {
			return fmt.Errorf("route %q step %d: next segment %q does not match step %d segment %q",
				r.Name, i, r.Steps[i].NextSegmentID, i+1, r.Steps[i+1].SegmentID)
		}
	}
	return nil
}

// Len returns the number of steps.
func (r PlannedRoute) Len() int { return len(r.Steps) }

// StartingSegmentID returns the segment of the first step, or "" for an
// empty route.
func (r PlannedRoute) StartingSegmentID() string {
	if len(r.Steps) == 0 {
		return ""
	}
	return r.Steps[0].SegmentID
}

// IsStartingSegment reports whether id is the first step's segment.
func (r PlannedRoute) IsStartingSegment(id string) bool {
	return id != "" && id == r.StartingSegmentID()
}

// CurrentStep returns the step the rider is on once the route has started.
func (r PlannedRoute) CurrentStep() (SegmentSequence, bool) {
	if !r.HasStarted || r.SegmentSequenceIndex >= len(r.Steps) {
		return SegmentSequence{}, false
	}
	return r.Steps[r.SegmentSequenceIndex], true
}

// NextStep returns the step after the current one.
func (r PlannedRoute) NextStep() (SegmentSequence, bool) {
	if !r.HasStarted || r.SegmentSequenceIndex+1 >= len(r.Steps) {
		return SegmentSequence{}, false
	}
	return r.Steps[r.SegmentSequenceIndex+1], true
}

// NextSegmentID returns the segment the rider is expected to enter next,
// or "" when there is none.
func (r PlannedRoute) NextSegmentID() string {
	next, ok := r.NextStep()
	if !ok {
		return ""
	}
	return next.SegmentID
}

// TurnToNextSegment returns the turn expected at the end of the current
// step. It is TurnNone before the start, after completion and on the last
// step.
func (r PlannedRoute) TurnToNextSegment() segments.TurnDirection {
	if r.HasCompleted || r.IsOnLastSegment() {
		return segments.TurnNone
	}
	step, ok := r.CurrentStep()
	if !ok {
		return segments.TurnNone
	}
	return step.TurnToNextSegment
}

// IsOnLastSegment reports whether the current step is the final one.
func (r PlannedRoute) IsOnLastSegment() bool {
	return r.HasStarted && len(r.Steps) > 0 && r.SegmentSequenceIndex == len(r.Steps)-1
}

// EnteredSegment advances the cursor onto segmentID. Before the start it
// must be the first step's segment; afterwards it must be the segment of the
// step following the current one.
func (r PlannedRoute) EnteredSegment(segmentID string) (PlannedRoute, error) {
	if r.HasCompleted {
		return r, ErrRouteCompleted
	}
	if !r.HasStarted {
		if !r.IsStartingSegment(segmentID) {
			return r, fmt.Errorf("%w: got %s, route starts on %s", ErrUnexpectedSegment, segmentID, r.StartingSegmentID())
		}
		r.HasStarted = true
		r.SegmentSequenceIndex = 0
		r.CurrentSegmentID = segmentID
		return r, nil
	}

	next := r.NextSegmentID()
	if next == "" || next != segmentID {
		return r, fmt.Errorf("%w: got %s, expected %q", ErrUnexpectedSegment, segmentID, next)
	}
	r.SegmentSequenceIndex++
	r.CurrentSegmentID = segmentID
	return r, nil
}

// Complete marks the route as finished.
func (r PlannedRoute) Complete() (PlannedRoute, error) {
	if !r.HasStarted {
		return r, ErrRouteNotStarted
	}
	r.HasCompleted = true
	return r, nil
}

// Reset clears all progress so the route can be ridden again.
func (r PlannedRoute) Reset() PlannedRoute {
	r.HasStarted = false
	r.HasCompleted = false
	r.SegmentSequenceIndex = 0
	r.CurrentSegmentID = ""
	return r
}
