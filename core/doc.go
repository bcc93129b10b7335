// Package core holds the process-unique building blocks of a mesh: vertices
// and edges, each identified by a stable integer ID assigned in creation
// order.
//
// The two registries here are the arena that every other package in this
// module builds on:
//
//	VertexRegistry — deduplicates points within an absolute tolerance and
//	                 hands back a stable VertexID for each distinct point.
//	EdgeRegistry   — keeps one edge per vertex pair (either order),
//	                 upgrades a plain line into a curved edge when the
//	                 caller supplies one later for the same pair, and
//	                 rejects a second, different curved kind.
//
// Neither registry locks internally: a Mesh is mutated by exactly one
// owning goroutine, so plain maps/slices are enough and no internal
// mutex is needed (see DESIGN.md). Sentinel errors, %w wrapping, and
// stable append-order IDs are the idiom used throughout this module.
package core
