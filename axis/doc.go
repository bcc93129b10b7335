// Package axis implements grading propagation: resolving a defined,
// count-consistent grading.Grading for every wire of every topo.Axis from a
// mesh's partial chop declarations.
//
// Propagate runs repeated passes over the axis list. Each pass tries, per
// undefined axis, direct copy from one of its own defined wires, then
// chop-driven construction, then a breadth-first walk of the axis
// neighbor and sequential links looking for an already-defined axis to
// copy from, honoring alignment. Passes repeat until every axis is defined or a pass
// makes no progress.
package axis
