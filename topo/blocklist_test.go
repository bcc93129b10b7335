package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/topo"
)

// Two unit cubes sharing the face {1,2,6,5} of block A as block B's
// {0,1,5,4} face, with B's remaining four corners new vertices 8..11.
func sharedCubes(t *testing.T) (*topo.BlockList, *topo.Block, *topo.Block) {
	t.Helper()
	bl := topo.NewBlockList()

	a, err := topo.NewBlock(0, [8]core.VertexID{0, 1, 2, 3, 4, 5, 6, 7})
	assert.NoError(t, err)
	bl.Add(a)

	b, err := topo.NewBlock(1, [8]core.VertexID{1, 2, 9, 8, 5, 6, 10, 11})
	assert.NoError(t, err)
	bl.Add(b)

	return bl, a, b
}

func TestBlockList_WireCoincidence(t *testing.T) {
	_, a, b := sharedCubes(t)

	shared := a.FindWire(1, 2)
	other := b.FindWire(0, 1)
	assert.True(t, shared.IsCoincident(other))
	assert.True(t, shared.IsAligned(other))

	coincidents := shared.Coincidents()
	assert.Len(t, coincidents, 1)
	assert.Same(t, other, coincidents[0])
}

func TestBlockList_AxisNeighbours(t *testing.T) {
	_, a, b := sharedCubes(t)

	sharedWire := a.FindWire(1, 2)
	assert.Contains(t, sharedWire.Axis.Neighbours(), b.Axes[0])
	assert.Contains(t, b.Axes[0].Neighbours(), sharedWire.Axis)
}

func TestBlockList_UnrelatedBlocksNotCoincident(t *testing.T) {
	bl := topo.NewBlockList()

	a, err := topo.NewBlock(0, [8]core.VertexID{0, 1, 2, 3, 4, 5, 6, 7})
	assert.NoError(t, err)
	bl.Add(a)

	c, err := topo.NewBlock(1, [8]core.VertexID{100, 101, 102, 103, 104, 105, 106, 107})
	assert.NoError(t, err)
	bl.Add(c)

	assert.Empty(t, a.FindWire(0, 1).Coincidents())
	assert.Empty(t, a.Axes[0].Neighbours())
}

func TestBlockList_LenAndBlocks(t *testing.T) {
	bl, a, b := sharedCubes(t)
	assert.Equal(t, 2, bl.Len())
	assert.Equal(t, []*topo.Block{a, b}, bl.Blocks())
	assert.Len(t, bl.Axes(), 6)
}
