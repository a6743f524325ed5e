/*
Package segments models the road network a rider moves through.

A Segment is an ordered polyline of TrackPoints between two physical ends,
node A (the first point) and node B (the last point). Each node carries a
list of Turns to the segments reachable from it. Distances and elevation
deltas between consecutive points are computed once, when the segment is
added to a Graph, and never change afterwards.

# Matching

Graph.FindContainingSegment resolves a raw position sample to the segment
whose nearest point lies within geo.CloseToMeters. The returned TrackPoint
is the sample enriched with the index and segment id of that nearest point,
which is what DetermineDirection compares on the next update:

	seg, pos, ok := graph.FindContainingSegment(sample)
	if ok {
	    dir := segments.DetermineDirection(previous, pos)
	    turns := seg.NextSegments(dir)
	}

Thread safety: a Graph is read-only after NewGraph returns and is safe for
concurrent use.
*/
package segments
