package ridenav

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
	"github.com/theoremus-urban-solutions/ridenav/state"
)

// Operation names for the session transitions that only the Navigator
// drives.
const (
	OpLogIn             = "LogIn"
	OpRejectCredentials = "RejectCredentials"
	OpSelectRoute       = "SelectRoute"
	OpConnect           = "Connect"
	OpFail              = "Fail"
)

var (
	ErrNoGraph             = errors.New("navigator needs a road network")
	ErrUnknownRouteSegment = errors.New("route step refers to an unknown segment")
)

// Navigator is one rider's navigation session. It is safe for concurrent
// use; events are applied one at a time.
type Navigator struct {
	mu            sync.Mutex
	id            uuid.UUID
	graph         *segments.Graph
	plan          route.PlannedRoute
	state         state.GameState
	logger        *slog.Logger
	stopOnInvalid bool
	observer      func(Transition)
}

// NewNavigator returns a navigator over graph following plan. Every route
// step must name a segment of graph.
func NewNavigator(graph *segments.Graph, plan route.PlannedRoute, opts ...Option) (*Navigator, error) {
	if graph == nil || graph.Len() == 0 {
		return nil, ErrNoGraph
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	for i, step := range plan.Steps {
		if graph.Segment(step.SegmentID) == nil {
			return nil, fmt.Errorf("route %q step %d %q: %w", plan.Name, i, step.SegmentID, ErrUnknownRouteSegment)
		}
	}

	n := &Navigator{
		id:     uuid.New(),
		graph:  graph,
		plan:   plan,
		state:  state.NewNotLoggedIn(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.With("navigator", n.id.String())
	return n, nil
}

func (n *Navigator) ID() uuid.UUID { return n.id }

func (n *Navigator) State() state.GameState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *Navigator) Route() route.PlannedRoute {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.plan
}

// TurnCommand is the command to send to the game now, TurnNone unless a
// turn is upcoming.
func (n *Navigator) TurnCommand() segments.TurnDirection {
	n.mu.Lock()
	defer n.mu.Unlock()
	return turnCommand(n.state)
}

func turnCommand(s state.GameState) segments.TurnDirection {
	if c, ok := s.(interface{ TurnCommand() segments.TurnDirection }); ok {
		return c.TurnCommand()
	}
	return segments.TurnNone
}

func (n *Navigator) UpdatePosition(p segments.TrackPoint) (state.GameState, error) {
	return n.Apply(PositionEvent(p))
}

func (n *Navigator) EnterGame(riderID, activityID uint64) (state.GameState, error) {
	return n.Apply(EnterGameEvent(riderID, activityID))
}

func (n *Navigator) LeaveGame() (state.GameState, error) {
	return n.Apply(LeaveGameEvent())
}

func (n *Navigator) TurnCommandAvailable(label string) (state.GameState, error) {
	return n.Apply(TurnEvent(label))
}

func (n *Navigator) LogIn(accessToken string) (state.GameState, error) {
	return n.Apply(LogInEvent(accessToken))
}

func (n *Navigator) SelectRoute() (state.GameState, error) {
	return n.Apply(SelectRouteEvent())
}

func (n *Navigator) Connect() (state.GameState, error) {
	return n.Apply(ConnectEvent())
}

// RejectCredentials records a refused login.
func (n *Navigator) RejectCredentials(reason string) (state.GameState, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	s, ok := n.state.(*state.NotLoggedInState)
	if !ok {
		return n.reject(Event{}, OpRejectCredentials, notAllowed(OpRejectCredentials, n.state))
	}
	return n.commit(Event{}, OpRejectCredentials, s.RejectCredentials(reason), n.plan), nil
}

// Fail moves the session to the Error state, whatever state it is in.
func (n *Navigator) Fail(err error) state.GameState {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.logger.Error("navigation failed", "state", n.state.Kind(), "err", err)
	return n.commit(Event{}, OpFail, state.NewError(err), n.plan)
}

// ResetRoute rewinds the route to not started.
func (n *Navigator) ResetRoute() route.PlannedRoute {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.plan = n.plan.Reset()
	n.logger.Info("route reset", "route", n.plan.Name)
	return n.plan
}

// Apply applies a single event. A rejected event leaves the state and the
// route unchanged and returns the current state with the error.
func (n *Navigator) Apply(ev Event) (state.GameState, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	from := n.state
	plan := n.plan
	var (
		next state.GameState
		err  error
		op   string
	)

	switch ev.Type {
	case EventPosition:
		op = state.OpUpdatePosition
		next, plan, err = from.UpdatePosition(ev.Position, n.graph, n.plan)
	case EventTurn:
		op = state.OpTurnCommandAvailable
		next, err = from.TurnCommandAvailable(ev.Label)
	case EventEnterGame:
		op = state.OpEnterGame
		next, err = from.EnterGame(ev.RiderID, ev.ActivityID)
		if err == nil && next != from {
			plan = n.startActivity(ev)
		}
	case EventLeaveGame:
		op = state.OpLeaveGame
		next, err = from.LeaveGame()
	case EventLogIn:
		op = OpLogIn
		switch s := from.(type) {
		case *state.NotLoggedInState:
			next = s.LogIn(ev.Label)
		case *state.InvalidCredentialsState:
			next = s.LogIn(ev.Label)
		default:
			err = notAllowed(op, from)
		}
	case EventSelectRoute:
		op = OpSelectRoute
		if s, ok := from.(*state.LoggedInState); ok {
			next = s.SelectRoute()
		} else {
			err = notAllowed(op, from)
		}
	case EventConnect:
		op = OpConnect
		switch s := from.(type) {
		case *state.LoggedInState:
			next = s.Connect()
		case *state.ReadyToGoState:
			next = s.Connect()
		default:
			err = notAllowed(op, from)
		}
	default:
		return from, fmt.Errorf("unsupported event type %v", ev.Type)
	}

	if err != nil {
		return n.reject(ev, op, err)
	}
	return n.commit(ev, op, next, plan), nil
}

// Run applies events in order until the channel is closed or ctx is done.
// Rejected transitions are logged and skipped unless the navigator was
// built WithStopOnInvalidTransition; any other error ends the run.
func (n *Navigator) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, err := n.Apply(ev); err != nil {
				if n.stopOnInvalid || !errors.Is(err, state.ErrInvalidStateTransition) {
					return err
				}
			}
		}
	}
}

// startActivity rewinds a started route when the rider enters the game
// afresh. A fresh InGame can only pick the route up at its first step.
func (n *Navigator) startActivity(ev Event) route.PlannedRoute {
	if !n.plan.HasStarted {
		return n.plan
	}
	n.logger.Info("entered game, route reset",
		"rider", ev.RiderID,
		"activity", ev.ActivityID,
		"route", n.plan.Name)
	return n.plan.Reset()
}

func (n *Navigator) commit(ev Event, op string, next state.GameState, plan route.PlannedRoute) state.GameState {
	from := n.state
	prev := n.plan
	n.state = next
	n.plan = plan

	if from.Kind() != next.Kind() {
		n.logger.Debug("state transition", "op", op, "from", from.Kind(), "to", next.Kind())
	}
	n.logProgress(prev, plan)
	n.notify(Transition{Event: ev, From: from, To: next, Route: plan})
	return next
}

func (n *Navigator) reject(ev Event, op string, err error) (state.GameState, error) {
	n.logger.Warn("transition rejected", "op", op, "state", n.state.Kind(), "err", err)
	n.notify(Transition{Event: ev, From: n.state, To: n.state, Route: n.plan, Err: err})
	return n.state, err
}

func (n *Navigator) logProgress(prev, next route.PlannedRoute) {
	switch {
	case next.HasCompleted && !prev.HasCompleted:
		n.logger.Info("route completed", "route", next.Name, "segment", next.CurrentSegmentID)
	case next.HasStarted && !prev.HasStarted:
		n.logger.Info("route started", "route", next.Name, "segment", next.CurrentSegmentID, "index", next.SegmentSequenceIndex)
	case next.HasStarted && next.SegmentSequenceIndex != prev.SegmentSequenceIndex:
		n.logger.Info("route progress", "route", next.Name, "segment", next.CurrentSegmentID, "index", next.SegmentSequenceIndex)
	}
}

func (n *Navigator) notify(t Transition) {
	if n.observer != nil {
		n.observer(t)
	}
}

func notAllowed(op string, s state.GameState) error {
	return &state.InvalidStateTransitionError{Operation: op, State: s.Kind()}
}
