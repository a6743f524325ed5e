package state_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/ridenav/internal/fixtures"
	"github.com/theoremus-urban-solutions/ridenav/route"
	"github.com/theoremus-urban-solutions/ridenav/segments"
	"github.com/theoremus-urban-solutions/ridenav/state"
)

// rider drives a state through a sequence of events, failing the test on
// any rejected transition.
type rider struct {
	t     *testing.T
	graph *segments.Graph
	plan  route.PlannedRoute
	state state.GameState
}

func newRider(t *testing.T, plan route.PlannedRoute) *rider {
	t.Helper()
	return &rider{
		t:     t,
		graph: fixtures.Graph(),
		plan:  plan,
		state: state.NewInGame(fixtures.RiderID, fixtures.ActivityID),
	}
}

func (r *rider) move(p segments.TrackPoint) state.GameState {
	r.t.Helper()
	next, plan, err := r.state.UpdatePosition(p, r.graph, r.plan)
	require.NoError(r.t, err)
	require.NotNil(r.t, next)
	r.state, r.plan = next, plan
	return next
}

func (r *rider) at(segmentID string, index int) state.GameState {
	r.t.Helper()
	return r.move(fixtures.Point(segmentID, index))
}

func (r *rider) turn(label string) state.GameState {
	r.t.Helper()
	next, err := r.state.TurnCommandAvailable(label)
	require.NoError(r.t, err)
	r.state = next
	return next
}

// onRouteHeadingToJ1 is a rider that started the route on seg-1 and is
// riding towards the J1 junction.
func onRouteHeadingToJ1(t *testing.T, plan route.PlannedRoute) *rider {
	t.Helper()
	r := newRider(t, plan)
	r.at(fixtures.Seg1, 1)
	r.at(fixtures.Seg1, 2)
	require.Equal(t, state.KindOnRoute, r.state.Kind())
	return r
}

// upcomingTurnAtJ1 is a rider on seg-1 who has been offered Left and
// GoStraight for J1.
func upcomingTurnAtJ1(t *testing.T, plan route.PlannedRoute) *rider {
	t.Helper()
	r := onRouteHeadingToJ1(t, plan)
	r.turn("turnleft")
	r.turn("gostraight")
	require.Equal(t, state.KindUpcomingTurn, r.state.Kind())
	return r
}
