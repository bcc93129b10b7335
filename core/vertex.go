package core

import (
	"fmt"

	"github.com/hexcore/blockmesh/geom"
)

// VertexID is a stable, process-unique index assigned in the order a
// Vertex was first materialized. IDs are never reused and never change.
type VertexID int

// Vertex is a process-unique materialization of a Point.
//
// Two Vertices with positions closer than Config.Tolerance are never both
// created; VertexRegistry.Add returns the existing one instead (see
// vertex_registry.go). Vertices are destroyed only with their registry.
type Vertex struct {
	ID       VertexID
	Position geom.Vec3
	Project  *geom.ProjectionTarget
}

// String renders the vertex as "#<id> (x y z)".
func (v *Vertex) String() string {
	return fmt.Sprintf("#%d (%g %g %g)", v.ID, v.Position.X, v.Position.Y, v.Position.Z)
}
