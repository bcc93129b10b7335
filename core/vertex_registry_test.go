package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/geom"
)

func TestVertexRegistry_DedupWithinTolerance(t *testing.T) {
	reg := core.NewVertexRegistry(core.DefaultConfig())

	a := reg.Add(geom.NewPoint(0, 0, 0))
	b := reg.Add(geom.NewPoint(0, 0, 0))
	assert.Equal(t, a, b, "identical points must resolve to the same vertex")
	assert.Equal(t, 1, reg.Len())

	// Just inside tolerance: still the same vertex.
	c := reg.Add(geom.NewPoint(core.DefaultTolerance/2, 0, 0))
	assert.Equal(t, a, c)
	assert.Equal(t, 1, reg.Len())

	// Well outside tolerance: a new vertex.
	d := reg.Add(geom.NewPoint(1, 0, 0))
	assert.NotEqual(t, a, d)
	assert.Equal(t, 2, reg.Len())
}

func TestVertexRegistry_StableCreationOrderIDs(t *testing.T) {
	reg := core.NewVertexRegistry(core.DefaultConfig())

	var ids []core.VertexID
	for i := 0; i < 5; i++ {
		ids = append(ids, reg.Add(geom.NewPoint(float64(i), 0, 0)))
	}
	for i, id := range ids {
		assert.Equal(t, core.VertexID(i), id)
	}
}

func TestVertexRegistry_MergesProjectionOnDedup(t *testing.T) {
	reg := core.NewVertexRegistry(core.DefaultConfig())

	id := reg.Add(geom.NewPoint(0, 0, 0))
	v, err := reg.Get(id)
	assert.NoError(t, err)
	assert.Nil(t, v.Project)

	target := geom.NewProjectionTarget("terrain")
	reg.Add(geom.Point{Position: geom.Vec3{}, Project: target})

	v, err = reg.Get(id)
	assert.NoError(t, err)
	assert.Equal(t, target, v.Project)
}

func TestVertexRegistry_GetOutOfRange(t *testing.T) {
	reg := core.NewVertexRegistry(core.DefaultConfig())
	_, err := reg.Get(0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
