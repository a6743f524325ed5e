package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/ridenav/internal/fixtures"
	"github.com/theoremus-urban-solutions/ridenav/segments"
	"github.com/theoremus-urban-solutions/ridenav/state"
)

func TestOnRoute_RidesTheWholeRoute(t *testing.T) {
	r := newRider(t, fixtures.StraightRoute())
	cursor := -1
	check := func(kind state.Kind) {
		t.Helper()
		require.Equal(t, kind, r.state.Kind())
		assert.GreaterOrEqual(t, r.plan.SegmentSequenceIndex, cursor, "route cursor moved backwards")
		cursor = r.plan.SegmentSequenceIndex
	}

	r.at(fixtures.Seg1, 1)
	check(state.KindOnRoute)
	r.at(fixtures.Seg1, 2)
	check(state.KindOnRoute)
	r.turn("turnleft")
	r.turn("gostraight")
	check(state.KindUpcomingTurn)
	assert.Equal(t, segments.TurnGoStraight, r.state.(*state.UpcomingTurnState).TurnCommand())

	r.at(fixtures.Seg1, 3)
	check(state.KindUpcomingTurn)
	r.at(fixtures.Seg1, 5)
	check(state.KindUpcomingTurn)
	assert.Equal(t, fixtures.Seg1, r.state.(*state.UpcomingTurnState).SegmentID(), "junction sample stays on the current segment")

	r.at(fixtures.Seg2, 1)
	check(state.KindOnRoute)
	onRoute := r.state.(*state.OnRouteState)
	assert.Equal(t, fixtures.Seg2, r.plan.CurrentSegmentID)
	assert.Equal(t, 1, r.plan.SegmentSequenceIndex)
	assert.True(t, r.plan.IsOnLastSegment())
	assert.Empty(t, onRoute.TurnDirections)

	r.at(fixtures.Seg2, 2)
	check(state.KindOnRoute)
	r.at(fixtures.Seg2, 5)
	check(state.KindOnRoute)
	r.at(fixtures.Seg4, 1)
	check(state.KindCompletedRoute)

	completed := r.state.(*state.CompletedRouteState)
	assert.True(t, r.plan.HasCompleted)
	assert.Equal(t, r.plan, completed.Route)
	assert.Equal(t, fixtures.Seg4, completed.SegmentID())
	// seg-1 idx1 to seg-4 idx1 is ten steps east.
	assert.InDelta(t, 10*21.8, completed.Elapsed.Distance, 10*0.5)
	assert.Equal(t, 10.0, completed.Elapsed.Ascent)
	assert.Equal(t, 1.0, completed.Elapsed.Descent)
}

func TestOnRoute_UpdatePosition(t *testing.T) {
	t.Run("along the segment", func(t *testing.T) {
		r := onRouteHeadingToJ1(t, fixtures.StraightRoute())
		onRoute := r.state.(*state.OnRouteState)

		assert.Equal(t, segments.DirectionAtoB, onRoute.Direction)
		assert.InDelta(t, 21.8, onRoute.Elapsed.Distance, 0.5)
		assert.Equal(t, 2.0, onRoute.Elapsed.Ascent)
		assert.Equal(t, 0, r.plan.SegmentSequenceIndex)
	})

	t.Run("reversing loses the lock", func(t *testing.T) {
		r := onRouteHeadingToJ1(t, fixtures.StraightRoute())
		next := r.at(fixtures.Seg1, 1)

		lost, ok := next.(*state.LostRouteLockState)
		require.True(t, ok)
		assert.Equal(t, segments.DirectionBtoA, lost.Direction)
		assert.Equal(t, fixtures.Seg1, r.plan.CurrentSegmentID)
	})

	t.Run("riding against the planned direction loses the lock", func(t *testing.T) {
		r := newRider(t, fixtures.StraightRoute())
		r.at(fixtures.Seg1, 3)
		assert.Equal(t, state.KindLostRouteLock, r.at(fixtures.Seg1, 2).Kind())
	})

	t.Run("off the network", func(t *testing.T) {
		r := onRouteHeadingToJ1(t, fixtures.StraightRoute())
		next := r.move(fixtures.OffNetwork())

		assert.Equal(t, state.KindPositioned, next.Kind())
		assert.True(t, r.plan.HasStarted)
	})

	t.Run("onto an unrelated segment", func(t *testing.T) {
		r := onRouteHeadingToJ1(t, fixtures.StraightRoute())
		next := r.at(fixtures.Seg4, 2)

		lost, ok := next.(*state.LostRouteLockState)
		require.True(t, ok)
		assert.Equal(t, fixtures.Seg4, lost.SegmentID())
		assert.Equal(t, fixtures.Seg1, lost.Route.CurrentSegmentID)
	})

	t.Run("last step completes without a known direction", func(t *testing.T) {
		r := onRouteHeadingToJ1(t, fixtures.StraightRoute())
		r.at(fixtures.Seg2, 1)
		require.Equal(t, segments.DirectionUnknown, r.state.(*state.OnRouteState).Direction)

		assert.Equal(t, state.KindCompletedRoute, r.at(fixtures.Seg5, 1).Kind())
	})

	t.Run("last step onto an unconnected segment", func(t *testing.T) {
		r := onRouteHeadingToJ1(t, fixtures.StraightRoute())
		r.at(fixtures.Seg2, 1)
		r.at(fixtures.Seg2, 2)

		assert.Equal(t, state.KindLostRouteLock, r.at(fixtures.Seg9, 1).Kind())
		assert.False(t, r.plan.HasCompleted)
	})

	t.Run("route not started", func(t *testing.T) {
		r := onRouteHeadingToJ1(t, fixtures.StraightRoute())
		fresh := fixtures.StraightRoute()

		next, plan, err := r.state.UpdatePosition(fixtures.Point(fixtures.Seg1, 3), r.graph, fresh)
		assert.ErrorIs(t, err, state.ErrInvalidStateTransition)
		assert.Nil(t, next)
		assert.Equal(t, fresh, plan)
	})

	t.Run("route already completed", func(t *testing.T) {
		r := onRouteHeadingToJ1(t, fixtures.StraightRoute())
		done, err := r.plan.Complete()
		require.NoError(t, err)

		_, plan, err := r.state.UpdatePosition(fixtures.Point(fixtures.Seg1, 3), r.graph, done)
		assert.ErrorIs(t, err, state.ErrInvalidStateTransition)
		assert.Equal(t, done, plan)
	})
}

func TestOnRoute_TurnCommandAvailable(t *testing.T) {
	t.Run("ignored until the direction is known", func(t *testing.T) {
		r := newRider(t, fixtures.StraightRoute())
		current := r.at(fixtures.Seg1, 1)

		next, err := current.TurnCommandAvailable("turnleft")
		require.NoError(t, err)
		assert.Same(t, current, next)
	})

	t.Run("unknown and none labels are ignored", func(t *testing.T) {
		r := onRouteHeadingToJ1(t, fixtures.StraightRoute())
		for _, label := range []string{"uturn", "", "none"} {
			next, err := r.state.TurnCommandAvailable(label)
			require.NoError(t, err)
			assert.Same(t, r.state, next, label)
		}
	})

	t.Run("a repeated direction is ignored", func(t *testing.T) {
		r := onRouteHeadingToJ1(t, fixtures.StraightRoute())
		first := r.turn("turnleft")

		next, err := first.TurnCommandAvailable("TurnLeft")
		require.NoError(t, err)
		assert.Same(t, first, next)
		assert.Equal(t, []segments.TurnDirection{segments.TurnLeft}, next.(*state.OnRouteState).TurnDirections)
	})

	t.Run("one direction is not yet a turn", func(t *testing.T) {
		r := onRouteHeadingToJ1(t, fixtures.StraightRoute())
		next := r.turn("gostraight")

		onRoute, ok := next.(*state.OnRouteState)
		require.True(t, ok)
		assert.Equal(t, segments.TurnNone, onRoute.TurnCommand())
	})

	t.Run("two directions at a junction", func(t *testing.T) {
		r := upcomingTurnAtJ1(t, fixtures.StraightRoute())
		upcoming := r.state.(*state.UpcomingTurnState)

		assert.Equal(t, []segments.TurnDirection{segments.TurnLeft, segments.TurnGoStraight}, upcoming.TurnDirections)
		assert.Equal(t, r.plan, upcoming.Route)
	})

	t.Run("two directions without a junction ahead", func(t *testing.T) {
		r := upcomingTurnAtJ1(t, fixtures.LeftRoute())
		assert.Equal(t, segments.TurnLeft, r.state.(*state.UpcomingTurnState).TurnCommand())

		r.at(fixtures.Seg3, 1)
		r.at(fixtures.Seg3, 2)
		require.Equal(t, state.KindOnRoute, r.state.Kind())
		r.turn("gostraight")
		next := r.turn("turnleft")

		onRoute, ok := next.(*state.OnRouteState)
		require.True(t, ok, "seg-3 has a single way out at node B")
		assert.Len(t, onRoute.TurnDirections, 2)
	})

	t.Run("directions are dropped on the next segment", func(t *testing.T) {
		r := onRouteHeadingToJ1(t, fixtures.LeftRoute())
		r.turn("turnleft")
		r.at(fixtures.Seg3, 1)

		assert.Empty(t, r.state.(*state.OnRouteState).TurnDirections)
		assert.Equal(t, fixtures.Seg3, r.plan.CurrentSegmentID)
	})
}
