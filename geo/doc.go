// Package geo provides the distance and proximity primitives used to match
// position samples against the road network.
//
// All functions are pure and safe for concurrent use. Coordinates are in
// degrees (WGS84), distances in meters.
package geo
