package core

import "errors"

// ErrEdgeNotFound indicates a lookup by vertex pair found no registered edge.
var ErrEdgeNotFound = errors.New("core: edge not found")

// ErrConflictingEdgeKinds indicates two incompatible curved-edge descriptors
// were supplied for the same vertex pair (both non-line, and different).
var ErrConflictingEdgeKinds = errors.New("core: conflicting edge kinds for the same vertex pair")

// ErrVertexNotFound indicates a lookup by VertexID found no registered vertex.
var ErrVertexNotFound = errors.New("core: vertex not found")
