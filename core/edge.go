package core

// EdgeID is a stable, process-unique index assigned in the order an Edge
// was first registered.
type EdgeID int

// Edge is an ordered pair of Vertices plus a curve Kind and its computed
// Length. The registry keeps one Edge per vertex pair, in either order
// (see EdgeRegistry.Add for how a second kind for the same pair is
// handled), so two distinct *Edge values with the same ID never exist.
type Edge struct {
	ID     EdgeID
	A, B   VertexID
	Kind   EdgeKind
	Length float64
}

// Endpoints returns the edge's vertex pair in the order it was registered.
func (e *Edge) Endpoints() (VertexID, VertexID) {
	return e.A, e.B
}

// HasEndpoints reports whether {a,b} matches this edge's vertex pair,
// regardless of order.
func (e *Edge) HasEndpoints(a, b VertexID) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}
