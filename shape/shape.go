package shape

import "github.com/hexcore/blockmesh/operation"

// Shape is implemented by every solid-shape builder in this package.
type Shape interface {
	// Operations returns the hex operations that realize this shape. The
	// slice is freshly built on each call and safe for the caller to
	// mutate (e.g. to attach patch names before mesh.Mesh.Add).
	Operations() []operation.Operation
}

// built is the common Shape implementation: a fixed, precomputed
// operation list.
type built struct {
	ops []operation.Operation
}

func (b built) Operations() []operation.Operation {
	out := make([]operation.Operation, len(b.ops))
	copy(out, b.ops)
	return out
}
