package segments_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/ridenav/internal/fixtures"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

func TestCalculateDistances(t *testing.T) {
	g := fixtures.Graph()
	seg := g.Segment(fixtures.Seg1)
	require.NotNil(t, seg)

	for i, p := range seg.Points {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, fixtures.Seg1, p.SegmentID)
	}
	assert.Zero(t, seg.Points[0].DistanceFromLast)
	assert.Zero(t, seg.Points[0].DistanceOnSegment)
	assert.InDelta(t, 21.8, seg.Points[1].DistanceFromLast, 0.5)
	assert.InDelta(t, seg.Distance, seg.Points[5].DistanceOnSegment, 1e-9)
	assert.InDelta(t, 5*21.8, seg.Distance, 2)

	// 10 -> 12 -> 14 -> 13 -> 15 -> 16
	assert.InDelta(t, 7, seg.Ascent, 1e-9)
	assert.InDelta(t, 1, seg.Descent, 1e-9)
}

func TestCalculateDistances_OnlyOnce(t *testing.T) {
	seg := fixtures.Segments()[0]
	seg.CalculateDistances()
	distance := seg.Distance

	seg.Points[5].Longitude += 0.01
	seg.CalculateDistances()

	assert.Equal(t, distance, seg.Distance)
}

func TestSegment_Locate(t *testing.T) {
	g := fixtures.Graph()
	seg := g.Segment(fixtures.Seg1)

	t.Run("exact point", func(t *testing.T) {
		located, d, ok := seg.Locate(fixtures.Point(fixtures.Seg1, 3))
		require.True(t, ok)
		assert.Equal(t, 3, located.Index)
		assert.Equal(t, fixtures.Seg1, located.SegmentID)
		assert.InDelta(t, 0, d, 1e-6)
	})

	t.Run("noisy sample keeps raw coordinates", func(t *testing.T) {
		sample := fixtures.Noisy(fixtures.Point(fixtures.Seg1, 2), 3)
		located, d, ok := seg.Locate(sample)
		require.True(t, ok)
		assert.Equal(t, 2, located.Index)
		assert.True(t, located.Equal(sample))
		assert.Greater(t, d, 2.0)
	})

	t.Run("too far", func(t *testing.T) {
		_, _, ok := seg.Locate(fixtures.Noisy(fixtures.Point(fixtures.Seg1, 2), 9))
		assert.False(t, ok)
	})

	t.Run("other segment", func(t *testing.T) {
		assert.False(t, seg.Contains(fixtures.Point(fixtures.Seg4, 3)))
	})
}

func TestSegment_NextSegments(t *testing.T) {
	g := fixtures.Graph()
	seg := g.Segment(fixtures.Seg2)

	assert.Equal(t, seg.NextSegmentsNodeB, seg.NextSegments(segments.DirectionAtoB))
	assert.Equal(t, seg.NextSegmentsNodeA, seg.NextSegments(segments.DirectionBtoA))
	assert.Nil(t, seg.NextSegments(segments.DirectionUnknown))

	assert.True(t, seg.ConnectsTo(segments.DirectionAtoB, fixtures.Seg5))
	assert.False(t, seg.ConnectsTo(segments.DirectionBtoA, fixtures.Seg5))
	assert.True(t, seg.IsJunctionAhead(segments.DirectionAtoB))

	climb := g.Segment(fixtures.Seg3)
	assert.False(t, climb.IsJunctionAhead(segments.DirectionAtoB))
	assert.True(t, climb.IsJunctionAhead(segments.DirectionBtoA))
}

func TestSegment_Ends(t *testing.T) {
	g := fixtures.Graph()
	seg := g.Segment(fixtures.Seg1)
	assert.Equal(t, 0, seg.A().Index)
	assert.Equal(t, 5, seg.B().Index)
	assert.True(t, seg.B().IsCloseTo(g.Segment(fixtures.Seg2).A()))
}
