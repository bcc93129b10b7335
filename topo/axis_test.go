package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/grading"
	"github.com/hexcore/blockmesh/topo"
)

func TestAxis_StartEndVertices(t *testing.T) {
	b := cube([8]core.VertexID{0, 1, 2, 3, 4, 5, 6, 7})
	axis0 := b.Axes[0]

	start := axis0.StartVertices()
	assert.Contains(t, start, core.VertexID(0))
	assert.Contains(t, start, core.VertexID(3))
	assert.Contains(t, start, core.VertexID(4))
	assert.Contains(t, start, core.VertexID(7))

	end := axis0.EndVertices()
	assert.Contains(t, end, core.VertexID(1))
	assert.Contains(t, end, core.VertexID(2))
	assert.Contains(t, end, core.VertexID(5))
	assert.Contains(t, end, core.VertexID(6))
}

func TestAxis_IsDefined(t *testing.T) {
	b := cube([8]core.VertexID{0, 1, 2, 3, 4, 5, 6, 7})
	axis0 := b.Axes[0]
	assert.False(t, axis0.IsDefined())

	g := grading.Uniform(1, 10, 1)
	for _, w := range axis0.Wires {
		w.Grading = g
	}
	assert.True(t, axis0.IsDefined())
}

func TestAxis_IsAligned_NoSharedWireErrors(t *testing.T) {
	a := cube([8]core.VertexID{0, 1, 2, 3, 4, 5, 6, 7})
	b := cube([8]core.VertexID{100, 101, 102, 103, 104, 105, 106, 107})
	_, err := a.Axes[0].IsAligned(b.Axes[0])
	assert.Error(t, err)
}

func TestBlockList_SequentialAxes(t *testing.T) {
	bl := topo.NewBlockList()

	a, err := topo.NewBlock(0, [8]core.VertexID{0, 1, 2, 3, 4, 5, 6, 7})
	assert.NoError(t, err)
	bl.Add(a)

	// c stacked on top of a along axis 2: c's bottom face equals a's top face.
	c, err := topo.NewBlock(1, [8]core.VertexID{4, 5, 6, 7, 8, 9, 10, 11})
	assert.NoError(t, err)
	bl.Add(c)

	assert.Contains(t, a.Axes[2].Sequential(), c.Axes[2])
	assert.Contains(t, c.Axes[2].Sequential(), a.Axes[2])
}
