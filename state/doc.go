/*
Package state implements the navigation state machine.

Every state is a distinct type implementing GameState. The set is closed:
GameState has an unexported method, so only this package can add variants,
and Kind gives callers an enum to switch on exhaustively.

States are immutable once constructed. A transition returns a new state or,
when the event changes nothing, the receiver itself. Operations a state does
not support return an *InvalidStateTransitionError, which matches
ErrInvalidStateTransition with errors.Is; the caller keeps its previous
state in that case.

# Route progress

UpdatePosition takes the planned route and returns it alongside the next
state. The route is a value, so progress made by a transition is only
visible through the returned copy:

	next, plan, err := current.UpdatePosition(sample, graph, plan)
	if err != nil {
	    // keep current and the previous plan
	}

# Lifecycle

	NotLoggedIn -> LoggedIn -> ReadyToGo -> ConnectedToZwift -> InGame
	InGame -> Positioned | OnSegment | OnRoute
	OnRoute <-> UpcomingTurn, OnRoute -> LostRouteLock -> OnRoute
	OnRoute | UpcomingTurn -> CompletedRoute
	any in-game state -> ConnectedToZwift on LeaveGame

Error and IncorrectConnectionSecret absorb every event.
*/
package state
