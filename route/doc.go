// Package route holds the planned route a rider intends to follow and the
// progress cursor along it.
//
// PlannedRoute is a value. EnteredSegment, Complete and Reset return an
// updated copy and never modify the receiver, so a route captured by an
// earlier navigation state is not affected by later progress. The step list
// itself is shared between copies and must not be modified once built.
package route
