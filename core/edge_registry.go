package core

import "fmt"

// pairKey is an order-insensitive lookup key for a vertex pair.
type pairKey struct {
	lo, hi VertexID
}

func makeKey(a, b VertexID) pairKey {
	if a <= b {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

// EdgeRegistry deduplicates edges by their (order-insensitive) vertex pair,
// upgrading a plain LineKind to a curved kind when the caller later
// supplies one for the same pair, and rejecting two different curved
// descriptors for the same pair with ErrConflictingEdgeKinds.
type EdgeRegistry struct {
	vreg  *VertexRegistry
	edges []*Edge
	index map[pairKey]int // value is an index into edges
}

// NewEdgeRegistry constructs an empty registry; vreg supplies endpoint
// positions for length computation.
func NewEdgeRegistry(vreg *VertexRegistry) *EdgeRegistry {
	return &EdgeRegistry{
		vreg:  vreg,
		index: make(map[pairKey]int),
	}
}

// Add registers an edge between a and b with the given kind (nil means
// "use a plain line, or whatever is already registered").
//
// Semantics:
//   - New pair: a new Edge is created with the given kind (LineKind{} if
//     kind is nil) and appended.
//   - Existing pair, incoming kind nil or a LineKind: the existing edge is
//     returned untouched.
//   - Existing pair, existing is LineKind and incoming is not: the
//     existing Edge is upgraded in place (same ID) to the incoming kind.
//   - Existing pair, both non-line and different: ErrConflictingEdgeKinds.
//   - Existing pair, both non-line and equal: the existing edge is
//     returned untouched.
func (r *EdgeRegistry) Add(a, b VertexID, kind EdgeKind) (*Edge, error) {
	key := makeKey(a, b)

	if idx, ok := r.index[key]; ok {
		existing := r.edges[idx]
		return r.reconcile(existing, kind)
	}

	if kind == nil {
		kind = LineKind{}
	}
	e := &Edge{ID: EdgeID(len(r.edges)), A: a, B: b, Kind: kind, Length: r.length(a, b, kind)}
	r.edges = append(r.edges, e)
	r.index[key] = len(r.edges) - 1
	return e, nil
}

func (r *EdgeRegistry) reconcile(existing *Edge, kind EdgeKind) (*Edge, error) {
	if kind == nil {
		return existing, nil
	}
	if _, isLine := kind.(LineKind); isLine {
		return existing, nil
	}
	if _, existingIsLine := existing.Kind.(LineKind); existingIsLine {
		existing.Kind = kind
		existing.Length = r.length(existing.A, existing.B, kind)
		return existing, nil
	}
	if existing.Kind.Equal(kind) {
		return existing, nil
	}
	return nil, fmt.Errorf("core: edge %d between vertices %d,%d: %w", existing.ID, existing.A, existing.B, ErrConflictingEdgeKinds)
}

func (r *EdgeRegistry) length(a, b VertexID, kind EdgeKind) float64 {
	va := r.vreg.MustGet(a)
	vb := r.vreg.MustGet(b)
	return kind.Length(va.Position, vb.Position)
}

// Find looks up a registered edge by its (order-insensitive) vertex pair.
func (r *EdgeRegistry) Find(a, b VertexID) (*Edge, error) {
	idx, ok := r.index[makeKey(a, b)]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	return r.edges[idx], nil
}

// Len returns the number of distinct edges registered so far.
func (r *EdgeRegistry) Len() int {
	return len(r.edges)
}

// All returns every edge in creation order. The returned slice is owned by
// the registry and must not be mutated by the caller.
func (r *EdgeRegistry) All() []*Edge {
	return r.edges
}
