package mesh

import "errors"

// ErrMeshFrozen is returned by Add once the mesh has passed the Building
// stage (assembled, graded, or written).
var ErrMeshFrozen = errors.New("mesh: cannot add operations once the mesh is assembled")
