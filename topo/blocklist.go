package topo

import "github.com/hexcore/blockmesh/core"

type wireKey struct {
	lo, hi core.VertexID
}

func keyFor(w *Wire) wireKey {
	a, b := w.Vertices[0], w.Vertices[1]
	if a <= b {
		return wireKey{a, b}
	}
	return wireKey{b, a}
}

// BlockList owns every block added to a mesh and maintains the wire
// coincidence graph and the axis neighbour/sequential graphs across them.
type BlockList struct {
	blocks    []*Block
	wireIndex map[wireKey][]*Wire
}

// NewBlockList constructs an empty BlockList.
func NewBlockList() *BlockList {
	return &BlockList{wireIndex: make(map[wireKey][]*Wire)}
}

// Add registers block and links its wires' coincidence sets, and its
// axes' neighbour/sequential sets, against every wire/axis already in the
// list. It then appends block's own wires to the index.
//
// Complexity: O(W) per new wire against the existing coincident-set bucket
// (at most 4 wires share a spot), so effectively O(1) amortized per wire.
func (bl *BlockList) Add(block *Block) {
	for _, w := range block.Wires() {
		key := keyFor(w)
		for _, existing := range bl.wireIndex[key] {
			w.AddCoincident(existing)
			existing.AddCoincident(w)
			w.Axis.AddNeighbour(existing.Axis)
			existing.Axis.AddNeighbour(w.Axis)
		}
	}

	for _, existing := range bl.blocks {
		for _, axis := range block.Axes {
			for _, existingAxis := range existing.Axes {
				axis.AddSequential(existingAxis)
				existingAxis.AddSequential(axis)
			}
		}
	}

	for _, w := range block.Wires() {
		key := keyFor(w)
		bl.wireIndex[key] = append(bl.wireIndex[key], w)
	}
	bl.blocks = append(bl.blocks, block)
}

// Blocks returns every block in insertion order. The returned slice is
// owned by the BlockList and must not be mutated by the caller.
func (bl *BlockList) Blocks() []*Block {
	return bl.blocks
}

// Len returns the number of blocks added so far.
func (bl *BlockList) Len() int {
	return len(bl.blocks)
}

// Axes returns every axis of every block, in block then axis-index order.
func (bl *BlockList) Axes() []*Axis {
	out := make([]*Axis, 0, len(bl.blocks)*3)
	for _, b := range bl.blocks {
		out = append(out, b.Axes[:]...)
	}
	return out
}
