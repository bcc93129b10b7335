package core

import "github.com/hexcore/blockmesh/geom"

// VertexRegistry deduplicates Points within Config.Tolerance and assigns
// each distinct one a stable VertexID in first-seen order.
//
// Complexity: Add is O(n) in the current vertex count (linear scan). This
// is acceptable because n is thousands of mesh vertices, not cells. A
// spatial index is a permitted, contract-preserving optimization; see
// finder.SpatialIndex for one that callers may opt into for queries
// without changing Add's semantics.
type VertexRegistry struct {
	cfg      Config
	vertices []*Vertex
}

// NewVertexRegistry constructs an empty registry using cfg's tolerance.
func NewVertexRegistry(cfg Config) *VertexRegistry {
	return &VertexRegistry{cfg: cfg}
}

// Add registers p, returning the VertexID of an existing vertex within
// Config.Tolerance of p.Position if one exists (merging p's projection
// target onto it, preferring the incoming one), or allocating a new one.
//
// Complexity: O(n).
func (r *VertexRegistry) Add(p geom.Point) VertexID {
	for _, v := range r.vertices {
		if v.Position.Distance(p.Position) < r.cfg.Tolerance {
			if p.Project != nil {
				v.Project = v.Project.Merge(p.Project)
			}
			return v.ID
		}
	}

	v := &Vertex{ID: VertexID(len(r.vertices)), Position: p.Position, Project: p.Project}
	r.vertices = append(r.vertices, v)
	return v.ID
}

// Get returns the vertex for id, or ErrVertexNotFound if id is out of
// range.
func (r *VertexRegistry) Get(id VertexID) (*Vertex, error) {
	if id < 0 || int(id) >= len(r.vertices) {
		return nil, ErrVertexNotFound
	}
	return r.vertices[id], nil
}

// MustGet is Get, panicking on failure; reserved for call sites where a
// missing vertex indicates a programming error (e.g. iterating a Block's
// own corner IDs), not a domain error.
func (r *VertexRegistry) MustGet(id VertexID) *Vertex {
	v, err := r.Get(id)
	if err != nil {
		panic(err)
	}
	return v
}

// SetPosition overwrites the position of an already-registered vertex,
// without re-running dedup against the rest of the registry. Used by
// package optimize to move a released vertex during quality-metric
// minimization; it is the caller's responsibility not to move a vertex
// into coincidence with another one it did not originally dedup against.
func (r *VertexRegistry) SetPosition(id VertexID, pos geom.Vec3) {
	r.vertices[id].Position = pos
}

// Len returns the number of distinct vertices registered so far.
func (r *VertexRegistry) Len() int {
	return len(r.vertices)
}

// All returns every vertex in creation order. The returned slice is owned
// by the registry and must not be mutated by the caller.
func (r *VertexRegistry) All() []*Vertex {
	return r.vertices
}
