package state

import (
	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

// ErrorState records a failure that needs a restart. It ignores every event.
type ErrorState struct {
	Err error
}

func NewError(err error) *ErrorState { return &ErrorState{Err: err} }

func (s *ErrorState) Kind() Kind { return KindError }
func (s *ErrorState) gameState() {}

func (s *ErrorState) UpdatePosition(_ segments.TrackPoint, _ *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	return s, plan, nil
}

func (s *ErrorState) EnterGame(uint64, uint64) (GameState, error) { return s, nil }
func (s *ErrorState) LeaveGame() (GameState, error)               { return s, nil }
func (s *ErrorState) TurnCommandAvailable(string) (GameState, error) {
	return s, nil
}

// IncorrectConnectionSecretState is reached when the game connection could
// not be decrypted. It ignores every event until the connection is re-made.
type IncorrectConnectionSecretState struct{}

func NewIncorrectConnectionSecret() *IncorrectConnectionSecretState {
	return &IncorrectConnectionSecretState{}
}

func (s *IncorrectConnectionSecretState) Kind() Kind { return KindIncorrectConnectionSecret }
func (s *IncorrectConnectionSecretState) gameState() {}

func (s *IncorrectConnectionSecretState) UpdatePosition(_ segments.TrackPoint, _ *segments.Graph, plan route.PlannedRoute) (GameState, route.PlannedRoute, error) {
	return s, plan, nil
}

func (s *IncorrectConnectionSecretState) EnterGame(uint64, uint64) (GameState, error) {
	return s, nil
}

func (s *IncorrectConnectionSecretState) LeaveGame() (GameState, error) { return s, nil }

func (s *IncorrectConnectionSecretState) TurnCommandAvailable(string) (GameState, error) {
	return s, nil
}
