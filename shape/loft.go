package shape

import (
	"github.com/hexcore/blockmesh/geom"
	"github.com/hexcore/blockmesh/grading"
	"github.com/hexcore/blockmesh/operation"
	"github.com/hexcore/blockmesh/topo"
)

// ChopSet is the shared chop plumbing every round shape configures: one
// chop list per local direction of the O-grid topology.
type ChopSet struct {
	Radial, Tangential, Axial []grading.Chop
}

// Loft interpolates a path of sketches into hex Operations, pairing each
// consecutive pair of stations into one axial segment of ring blocks (plus
// a core block when the sketches carry one). outerPatch, if non-empty,
// names the patch on every ring block's outer (cylindrical) face.
func Loft(sketches []Sketch, chops ChopSet, outerPatch string) []operation.Operation {
	var ops []operation.Operation
	for i := 0; i+1 < len(sketches); i++ {
		ops = append(ops, loftSegment(sketches[i], sketches[i+1], chops, outerPatch)...)
	}
	return ops
}

func point(v geom.Vec3) geom.Point { return geom.Point{Position: v} }

// loftSegment builds the 4 ring blocks (and, if a has a core, 1 core
// block) connecting stations a and b.
func loftSegment(a, b Sketch, chops ChopSet, outerPatch string) []operation.Operation {
	var ops []operation.Operation

	for i := 0; i < 4; i++ {
		next := (i + 1) % 4
		bottom := operation.Face{point(a.Inner[i]), point(a.Outer[i]), point(a.Outer[next]), point(a.Inner[next])}
		top := operation.Face{point(b.Inner[i]), point(b.Outer[i]), point(b.Outer[next]), point(b.Inner[next])}
		op := operation.New(bottom, top)
		for _, c := range chops.Radial {
			op.Chop(0, c)
		}
		for _, c := range chops.Tangential {
			op.Chop(1, c)
		}
		for _, c := range chops.Axial {
			op.Chop(2, c)
		}
		if outerPatch != "" {
			op.SetPatch(topo.Back, outerPatch)
		}
		ops = append(ops, op)
	}

	if a.HasCore && b.HasCore {
		bottom := operation.Face{point(a.Inner[0]), point(a.Inner[1]), point(a.Inner[2]), point(a.Inner[3])}
		top := operation.Face{point(b.Inner[0]), point(b.Inner[1]), point(b.Inner[2]), point(b.Inner[3])}
		op := operation.New(bottom, top)
		for _, c := range chops.Tangential {
			op.Chop(0, c)
			op.Chop(1, c)
		}
		for _, c := range chops.Axial {
			op.Chop(2, c)
		}
		ops = append(ops, op)
	}

	return ops
}
