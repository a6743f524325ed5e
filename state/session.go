package state

import (
	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

// NotLoggedInState is the initial state.
type NotLoggedInState struct{}

func NewNotLoggedIn() *NotLoggedInState { return &NotLoggedInState{} }

func (s *NotLoggedInState) Kind() Kind { return KindNotLoggedIn }
func (s *NotLoggedInState) gameState() {}

func (s *NotLoggedInState) UpdatePosition(_ segments.TrackPoint, _ *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	return nil, plan, notAllowed(OpUpdatePosition, s.Kind())
}

func (s *NotLoggedInState) EnterGame(uint64, uint64) (GameState, error) {
	return nil, notAllowed(OpEnterGame, s.Kind())
}

func (s *NotLoggedInState) LeaveGame() (GameState, error) {
	return nil, notAllowed(OpLeaveGame, s.Kind())
}

func (s *NotLoggedInState) TurnCommandAvailable(string) (GameState, error) {
	return nil, notAllowed(OpTurnCommandAvailable, s.Kind())
}

// LogIn moves to LoggedIn with the given access token.
func (s *NotLoggedInState) LogIn(accessToken string) *LoggedInState {
	return &LoggedInState{AccessToken: accessToken}
}

// RejectCredentials moves to InvalidCredentials.
func (s *NotLoggedInState) RejectCredentials(reason string) *InvalidCredentialsState {
	return &InvalidCredentialsState{Reason: reason}
}

// InvalidCredentialsState is reached when a login attempt is refused.
type InvalidCredentialsState struct {
	Reason string
}

func (s *InvalidCredentialsState) Kind() Kind { return KindInvalidCredentials }
func (s *InvalidCredentialsState) gameState() {}

func (s *InvalidCredentialsState) UpdatePosition(_ segments.TrackPoint, _ *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	return nil, plan, notAllowed(OpUpdatePosition, s.Kind())
}

func (s *InvalidCredentialsState) EnterGame(uint64, uint64) (GameState, error) {
	return nil, notAllowed(OpEnterGame, s.Kind())
}

func (s *InvalidCredentialsState) LeaveGame() (GameState, error) {
	return nil, notAllowed(OpLeaveGame, s.Kind())
}

func (s *InvalidCredentialsState) TurnCommandAvailable(string) (GameState, error) {
	return nil, notAllowed(OpTurnCommandAvailable, s.Kind())
}

// LogIn retries the login.
func (s *InvalidCredentialsState) LogIn(accessToken string) *LoggedInState {
	return &LoggedInState{AccessToken: accessToken}
}

// LoggedInState holds a valid login; no route has been chosen yet.
type LoggedInState struct {
	AccessToken string
}

func (s *LoggedInState) Kind() Kind { return KindLoggedIn }
func (s *LoggedInState) gameState() {}

func (s *LoggedInState) UpdatePosition(_ segments.TrackPoint, _ *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	return nil, plan, notAllowed(OpUpdatePosition, s.Kind())
}

func (s *LoggedInState) EnterGame(riderID, activityID uint64) (GameState, error) {
	return NewInGame(riderID, activityID), nil
}

func (s *LoggedInState) LeaveGame() (GameState, error) {
	return nil, notAllowed(OpLeaveGame, s.Kind())
}

func (s *LoggedInState) TurnCommandAvailable(string) (GameState, error) {
	return nil, notAllowed(OpTurnCommandAvailable, s.Kind())
}

// SelectRoute moves to ReadyToGo.
func (s *LoggedInState) SelectRoute() *ReadyToGoState {
	return &ReadyToGoState{AccessToken: s.AccessToken}
}

// Connect moves to ConnectedToZwift.
func (s *LoggedInState) Connect() *ConnectedToZwiftState {
	return &ConnectedToZwiftState{}
}

// ReadyToGoState has a login and a route and waits for the game.
type ReadyToGoState struct {
	AccessToken string
}

func (s *ReadyToGoState) Kind() Kind { return KindReadyToGo }
func (s *ReadyToGoState) gameState() {}

func (s *ReadyToGoState) UpdatePosition(_ segments.TrackPoint, _ *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	return nil, plan, notAllowed(OpUpdatePosition, s.Kind())
}

func (s *ReadyToGoState) EnterGame(riderID, activityID uint64) (GameState, error) {
	return NewInGame(riderID, activityID), nil
}

func (s *ReadyToGoState) LeaveGame() (GameState, error) {
	return NewConnectedToZwift(), nil
}

func (s *ReadyToGoState) TurnCommandAvailable(string) (GameState, error) {
	return nil, notAllowed(OpTurnCommandAvailable, s.Kind())
}

// Connect moves to ConnectedToZwift once the game has connected.
func (s *ReadyToGoState) Connect() *ConnectedToZwiftState {
	return &ConnectedToZwiftState{}
}

// ConnectedToZwiftState has a game connection but the rider is not in an
// activity.
type ConnectedToZwiftState struct{}

func NewConnectedToZwift() *ConnectedToZwiftState { return &ConnectedToZwiftState{} }

func (s *ConnectedToZwiftState) Kind() Kind { return KindConnectedToZwift }
func (s *ConnectedToZwiftState) gameState() {}

func (s *ConnectedToZwiftState) UpdatePosition(_ segments.TrackPoint, _ *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	return nil, plan, notAllowed(OpUpdatePosition, s.Kind())
}

func (s *ConnectedToZwiftState) EnterGame(riderID, activityID uint64) (GameState, error) {
	return NewInGame(riderID, activityID), nil
}

func (s *ConnectedToZwiftState) LeaveGame() (GameState, error) {
	return nil, notAllowed(OpLeaveGame, s.Kind())
}

func (s *ConnectedToZwiftState) TurnCommandAvailable(string) (GameState, error) {
	return nil, notAllowed(OpTurnCommandAvailable, s.Kind())
}
