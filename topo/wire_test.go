package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/topo"
)

func TestWire_IsValid(t *testing.T) {
	b := cube([8]core.VertexID{0, 1, 2, 3, 4, 5, 6, 7})
	for _, w := range b.Wires() {
		assert.True(t, w.IsValid())
	}
}

func TestWire_IsCoincident_ReverseDirection(t *testing.T) {
	w1 := &topo.Wire{Vertices: [2]core.VertexID{0, 1}}
	w2 := &topo.Wire{Vertices: [2]core.VertexID{1, 0}}
	assert.True(t, w1.IsCoincident(w2))
	assert.False(t, w1.IsAligned(w2))
}

func TestWire_IsAligned_PanicsOnNonCoincident(t *testing.T) {
	w1 := &topo.Wire{Vertices: [2]core.VertexID{0, 1}}
	w2 := &topo.Wire{Vertices: [2]core.VertexID{2, 3}}
	assert.Panics(t, func() { w1.IsAligned(w2) })
}

func TestWire_AddCoincident_SelfNoop(t *testing.T) {
	w := &topo.Wire{Vertices: [2]core.VertexID{0, 1}}
	w.AddCoincident(w)
	assert.Empty(t, w.Coincidents())
}
