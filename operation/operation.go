package operation

import (
	"fmt"

	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/geom"
	"github.com/hexcore/blockmesh/grading"
	"github.com/hexcore/blockmesh/topo"
)

// Face is a quadrilateral's four corners, CCW as viewed from +normal.
type Face [4]geom.Point

// Operation declares one hex: a bottom and top Face (top's corner i above
// bottom's corner i), up to four curved descriptors for the vertical
// corner-pair wires (i, i+4), per-axis chop lists, per-side patch names
// and projection targets, and a cell-zone tag.
type Operation struct {
	Bottom, Top Face

	// SideEdges[i], if non-nil, is the curve kind for the wire running
	// from bottom corner i to top corner i. A nil entry is a straight line.
	SideEdges [4]core.EdgeKind

	// Chops[axis] lists the user's chop declarations for local axis
	// 0 (bottom/top direction along corners 0-1/3-2), 1 (0-3/1-2), or 2
	// (the vertical side-edge direction).
	Chops [3][]grading.Chop

	PatchNames  map[topo.Orientation]string
	Projections map[topo.Orientation]*geom.ProjectionTarget
	CellZone    string
}

// New builds an Operation from a bottom and top face, with empty chops,
// patches and projections; the caller fills those in directly.
func New(bottom, top Face) Operation {
	return Operation{
		Bottom:      bottom,
		Top:         top,
		PatchNames:  make(map[topo.Orientation]string),
		Projections: make(map[topo.Orientation]*geom.ProjectionTarget),
	}
}

// Chop appends a chop declaration to the given local axis (0, 1, or 2).
func (op *Operation) Chop(axis int, c grading.Chop) {
	op.Chops[axis] = append(op.Chops[axis], c)
}

// SetPatch names orient's side for this operation's eventual block.
func (op *Operation) SetPatch(orient topo.Orientation, name string) {
	if op.PatchNames == nil {
		op.PatchNames = make(map[topo.Orientation]string)
	}
	op.PatchNames[orient] = name
}

// SetProjection records that orient's side should snap onto target.
func (op *Operation) SetProjection(orient topo.Orientation, target *geom.ProjectionTarget) {
	if op.Projections == nil {
		op.Projections = make(map[topo.Orientation]*geom.ProjectionTarget)
	}
	op.Projections[orient] = target
}

// ToBlock registers op's 8 points in vreg, its 12 wires' edges in ereg,
// and constructs the resulting topo.Block with id.
func (op Operation) ToBlock(vreg *core.VertexRegistry, ereg *core.EdgeRegistry, id topo.BlockID) (*topo.Block, error) {
	if err := op.validateFaces(); err != nil {
		return nil, err
	}

	var vertIDs [8]core.VertexID
	for i, p := range op.Bottom {
		vertIDs[i] = vreg.Add(p)
	}
	for i, p := range op.Top {
		vertIDs[4+i] = vreg.Add(p)
	}

	block, err := topo.NewBlock(id, vertIDs)
	if err != nil {
		return nil, fmt.Errorf("operation: %w", err)
	}

	for i, wire := range block.Axes[2].Wires {
		if err := op.wireEdge(ereg, wire, op.SideEdges[i]); err != nil {
			return nil, err
		}
	}
	for _, axisIdx := range [2]int{0, 1} {
		for _, wire := range block.Axes[axisIdx].Wires {
			if err := op.wireEdge(ereg, wire, nil); err != nil {
				return nil, err
			}
		}
	}

	for axisIdx := 0; axisIdx < 3; axisIdx++ {
		block.Axes[axisIdx].Chops = op.Chops[axisIdx]
	}
	for orient, name := range op.PatchNames {
		block.SetPatch(orient, name)
	}
	for orient, target := range op.Projections {
		block.SetProjection(orient, target)
	}
	block.CellZone = op.CellZone

	return block, nil
}

func (op Operation) wireEdge(ereg *core.EdgeRegistry, wire *topo.Wire, kind core.EdgeKind) error {
	edge, err := ereg.Add(wire.Vertices[0], wire.Vertices[1], kind)
	if err != nil {
		return fmt.Errorf("operation: %w", err)
	}
	wire.Edge = edge.ID
	wire.Length = edge.Length
	return nil
}

func (op Operation) validateFaces() error {
	for _, face := range [2]Face{op.Bottom, op.Top} {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				if face[i].Position.Distance(face[j].Position) < core.DefaultTolerance {
					return fmt.Errorf("operation: %w", ErrDegenerateFace)
				}
			}
		}
	}
	return nil
}
