package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/topo"
)

func cube(ids [8]core.VertexID) *topo.Block {
	b, err := topo.NewBlock(0, ids)
	if err != nil {
		panic(err)
	}
	return b
}

func TestNewBlock_CanonicalWireSchema(t *testing.T) {
	ids := [8]core.VertexID{0, 1, 2, 3, 4, 5, 6, 7}
	b := cube(ids)

	assert.Len(t, b.Wires(), 12)

	// Axis 0 wires run 0-1, 3-2, 4-5, 7-6.
	w := b.FindWire(0, 1)
	assert.NotNil(t, w)
	assert.Equal(t, [2]core.VertexID{0, 1}, w.Vertices)
	assert.Same(t, b.Axes[0], w.Axis)

	w = b.FindWire(3, 2)
	assert.Same(t, b.Axes[0], w.Axis)

	// Axis 1 wires run 0-3, 1-2, 4-7, 5-6.
	w = b.FindWire(0, 3)
	assert.Same(t, b.Axes[1], w.Axis)

	// Axis 2 wires run 0-4, 1-5, 2-6, 3-7.
	w = b.FindWire(0, 4)
	assert.Same(t, b.Axes[2], w.Axis)
}

func TestNewBlock_DegenerateRejected(t *testing.T) {
	ids := [8]core.VertexID{0, 1, 2, 3, 4, 5, 6, 0}
	_, err := topo.NewBlock(0, ids)
	assert.ErrorIs(t, err, topo.ErrDegenerateBlock)
}

func TestFindWire_UnorderedCorners(t *testing.T) {
	b := cube([8]core.VertexID{0, 1, 2, 3, 4, 5, 6, 7})
	w1 := b.FindWire(0, 1)
	w2 := b.FindWire(1, 0)
	assert.Same(t, w1, w2)
}

func TestBlock_SetPatch(t *testing.T) {
	b := cube([8]core.VertexID{0, 1, 2, 3, 4, 5, 6, 7})
	b.SetPatch(topo.Top, "outlet")
	assert.Equal(t, "outlet", b.Patches[topo.Top])
}
