package ridenav

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/state"
)

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) { n.logger = l }
}

// WithID sets the navigator id. The default is a random UUID.
func WithID(id uuid.UUID) Option {
	return func(n *Navigator) { n.id = id }
}

// WithInitialState starts the navigator in s instead of NotLoggedIn.
func WithInitialState(s state.GameState) Option {
	return func(n *Navigator) { n.state = s }
}

// WithStopOnInvalidTransition makes Run return the first rejected event's
// error instead of logging and skipping it.
func WithStopOnInvalidTransition(stop bool) Option {
	return func(n *Navigator) { n.stopOnInvalid = stop }
}

// WithObserver registers fn to be called after every applied event,
// including rejected ones.
func WithObserver(fn func(Transition)) Option {
	return func(n *Navigator) { n.observer = fn }
}

// Transition describes the outcome of one event.
type Transition struct {
	Event Event
	From  state.GameState
	To    state.GameState
	Route route.PlannedRoute
	Err   error
}
