// Package topo holds the hexahedral Block, its 12 Wires and 3 Axes, and the
// wire-coincidence / axis-neighbor graph that grading propagation walks.
//
// A Wire is the directed association of two corner indices (0..7) of a
// Block with a core.Edge; twelve wires per block in groups of four, one
// group per local Axis (0, 1, 2). Two wires are coincident iff their
// vertex sets are equal; aligned iff additionally their direction matches.
// Two Axes become neighbours iff they share at least one coincident wire,
// and sequential iff one's start-vertex set equals the other's end-vertex
// set.
//
// Grading resolution/propagation itself lives in package grading/axis, not
// here: topo only builds and exposes the graph those algorithms walk.
package topo
