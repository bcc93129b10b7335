// Package blockmesh is a structured-hexahedral mesh pre-processor: it
// assembles named hex blocks into a deduplicated vertex/edge/wire graph,
// propagates cell-count grading across coincident block faces, optionally
// relaxes released vertices against a geometric quality metric, and emits
// an OpenFOAM-style blockMeshDict text file or a debug VTK dump.
//
// Dataflow: a solid-shape builder (package shape) or hand-built
// operation.Operation values go into mesh.Mesh.Add, which deduplicates
// vertices and edges and wires up the block topology (package topo).
// mesh.Mesh.Grade runs the axis package's grading-propagation fixed
// point. An optional optimize.Optimizer pass relaxes any vertices released
// with a clamp.Clamp. writer.Write then serializes the frozen mesh.
//
//	m := mesh.New()
//	m.Add(shape.Box(geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1}, chopX, chopY, chopZ).Operations()...)
//	m.Grade()
//	writer.Write(m, os.Stdout)
package blockmesh
