// Package ridenav follows a rider through a game session and along a
// planned route.
//
// A Navigator owns the road network, the planned route and the current
// navigation state. Game events are applied one at a time, either by
// calling the Navigator's methods directly or by feeding them to Run.
package ridenav
