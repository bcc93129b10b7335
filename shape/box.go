package shape

import (
	"github.com/hexcore/blockmesh/geom"
	"github.com/hexcore/blockmesh/grading"
	"github.com/hexcore/blockmesh/operation"
)

// Box builds a single axis-aligned hex from origin to origin+size, chopped
// along X, Y and Z by the given chop lists.
func Box(origin, size geom.Vec3, chopX, chopY, chopZ []grading.Chop) Shape {
	return built{ops: []operation.Operation{boxOperation(origin, size, chopX, chopY, chopZ)}}
}

func boxOperation(origin, size geom.Vec3, chopX, chopY, chopZ []grading.Chop) operation.Operation {
	bottom := operation.Face{
		point(origin),
		point(origin.Add(geom.Vec3{X: size.X})),
		point(origin.Add(geom.Vec3{X: size.X, Y: size.Y})),
		point(origin.Add(geom.Vec3{Y: size.Y})),
	}
	top := operation.Face{
		point(origin.Add(geom.Vec3{Z: size.Z})),
		point(origin.Add(geom.Vec3{X: size.X, Z: size.Z})),
		point(origin.Add(geom.Vec3{X: size.X, Y: size.Y, Z: size.Z})),
		point(origin.Add(geom.Vec3{Y: size.Y, Z: size.Z})),
	}
	op := operation.New(bottom, top)
	for _, c := range chopX {
		op.Chop(0, c)
	}
	for _, c := range chopY {
		op.Chop(1, c)
	}
	for _, c := range chopZ {
		op.Chop(2, c)
	}
	return op
}

// Grid tiles nx*ny*nz boxes of the given cell size starting at origin.
// Blocks are emitted in ascending (i,j,k) order, X fastest, so two Grid
// calls with identical arguments produce byte-identical operation order.
// Adjacent boxes share corner coordinates exactly, so mesh.Mesh.Add's
// vertex dedup fuses them without any explicit stitching step.
func Grid(nx, ny, nz int, cellSize geom.Vec3, origin geom.Vec3, chopX, chopY, chopZ []grading.Chop) Shape {
	var ops []operation.Operation
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				cellOrigin := origin.Add(geom.Vec3{
					X: float64(i) * cellSize.X,
					Y: float64(j) * cellSize.Y,
					Z: float64(k) * cellSize.Z,
				})
				ops = append(ops, boxOperation(cellOrigin, cellSize, chopX, chopY, chopZ))
			}
		}
	}
	return built{ops: ops}
}
