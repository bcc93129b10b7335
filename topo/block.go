package topo

import (
	"fmt"

	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/geom"
)

// BlockID is a stable index assigned in the order blocks were added to the
// mesh.
type BlockID int

// Orientation names one of a block's six outer faces, used for patch and
// projection assignment. front/back/left/right are relative to local axes
// 0 and 1: front = axis-0 low-face, back = axis-0 high-face, left =
// axis-1 low-face, right = axis-1 high-face.
type Orientation int

const (
	Bottom Orientation = iota
	Top
	Front
	Back
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// canonicalWires lists, for each local axis, the four (corner1, corner2)
// pairs that make up its wires.
var canonicalWires = [3][4][2]int{
	0: {{0, 1}, {3, 2}, {4, 5}, {7, 6}},
	1: {{0, 3}, {1, 2}, {4, 7}, {5, 6}},
	2: {{0, 4}, {1, 5}, {2, 6}, {3, 7}},
}

// Block aggregates 8 vertices, 12 wires grouped into 3 axes, per-side
// patch names, and a cell-zone tag.
type Block struct {
	ID          BlockID
	Vertices    [8]core.VertexID
	Axes        [3]*Axis
	Patches     map[Orientation]string
	Projections map[Orientation]*geom.ProjectionTarget
	CellZone    string
}

// NewBlock constructs a Block from 8 canonically ordered corner vertices
// (bottom face CCW viewed from +normal as 0..3, top face 4..7 with 4 above
// 0). It builds the 12 wires per the canonical corner-pair schema and
// groups them into 3 Axes, but does not yet know their Edge/Length: the
// caller fills those in via Wire.Edge/Wire.Length after registering edges
// (see mesh.Mesh.Add).
//
// Returns ErrDegenerateBlock if any two of the 8 vertices coincide.
func NewBlock(id BlockID, vertices [8]core.VertexID) (*Block, error) {
	seen := make(map[core.VertexID]struct{}, 8)
	for _, v := range vertices {
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("topo: block %d: %w", id, ErrDegenerateBlock)
		}
		seen[v] = struct{}{}
	}

	b := &Block{
		ID:          id,
		Vertices:    vertices,
		Patches:     make(map[Orientation]string),
		Projections: make(map[Orientation]*geom.ProjectionTarget),
	}
	for axisIdx := 0; axisIdx < 3; axisIdx++ {
		axis := &Axis{Index: axisIdx}
		for wireIdx, pair := range canonicalWires[axisIdx] {
			w := &Wire{
				Corners:  pair,
				Vertices: [2]core.VertexID{vertices[pair[0]], vertices[pair[1]]},
				Axis:     axis,
			}
			axis.Wires[wireIdx] = w
		}
		b.Axes[axisIdx] = axis
	}
	return b, nil
}

// Wires returns all 12 of the block's wires, axis 0 first.
func (b *Block) Wires() []*Wire {
	out := make([]*Wire, 0, 12)
	for _, ax := range b.Axes {
		out = append(out, ax.Wires[:]...)
	}
	return out
}

// FindWire returns the wire whose canonical corner pair matches (c1,c2) in
// either order, or nil if none match (a programming error: every block has
// all 12 canonical pairs by construction).
func (b *Block) FindWire(c1, c2 int) *Wire {
	for _, w := range b.Wires() {
		if (w.Corners[0] == c1 && w.Corners[1] == c2) || (w.Corners[0] == c2 && w.Corners[1] == c1) {
			return w
		}
	}
	return nil
}

// SetPatch assigns name to the block side orient.
func (b *Block) SetPatch(orient Orientation, name string) {
	b.Patches[orient] = name
}

// SetProjection records that the block side orient should snap onto
// target during downstream meshing.
func (b *Block) SetProjection(orient Orientation, target *geom.ProjectionTarget) {
	b.Projections[orient] = target
}
