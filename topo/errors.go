package topo

import "errors"

// ErrDegenerateBlock indicates a block was constructed with two corners
// resolving to the same Vertex. Degenerate (wedge/pyramid) blocks are
// rejected outright; this package only ever builds true hexahedra.
var ErrDegenerateBlock = errors.New("topo: degenerate block (coincident corners)")
