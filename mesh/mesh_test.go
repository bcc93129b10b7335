package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexcore/blockmesh/geom"
	"github.com/hexcore/blockmesh/grading"
	"github.com/hexcore/blockmesh/mesh"
	"github.com/hexcore/blockmesh/operation"
	"github.com/hexcore/blockmesh/patch"
	"github.com/hexcore/blockmesh/topo"
)

func boxOp(x0 float64) operation.Operation {
	bottom := operation.Face{
		geom.NewPoint(x0, 0, 0),
		geom.NewPoint(x0+1, 0, 0),
		geom.NewPoint(x0+1, 1, 0),
		geom.NewPoint(x0, 1, 0),
	}
	top := operation.Face{
		geom.NewPoint(x0, 0, 1),
		geom.NewPoint(x0+1, 0, 1),
		geom.NewPoint(x0+1, 1, 1),
		geom.NewPoint(x0, 1, 1),
	}
	return operation.New(bottom, top)
}

func TestMesh_SingleBoxUniformChop(t *testing.T) {
	m := mesh.New()
	op := boxOp(0)
	op.Chop(0, grading.ChopCount(10))
	op.Chop(1, grading.ChopCount(10))
	op.Chop(2, grading.ChopCount(10))

	assert.NoError(t, m.Add(op))
	assert.Equal(t, mesh.Building, m.State())

	assert.NoError(t, m.Grade())
	assert.Equal(t, mesh.Graded, m.State())
	assert.Len(t, m.Vertices(), 8)
	assert.Len(t, m.Blocks(), 1)

	for _, b := range m.Blocks() {
		for _, w := range b.Wires() {
			assert.Equal(t, 10, w.Grading.Count())
		}
	}
}

func TestMesh_AddAfterAssembleFails(t *testing.T) {
	m := mesh.New()
	op := boxOp(0)
	op.Chop(0, grading.ChopCount(1))
	op.Chop(1, grading.ChopCount(1))
	op.Chop(2, grading.ChopCount(1))
	assert.NoError(t, m.Add(op))
	assert.NoError(t, m.Assemble())

	err := m.Add(boxOp(5))
	assert.ErrorIs(t, err, mesh.ErrMeshFrozen)
}

func TestMesh_TwoBoxesSharingFace(t *testing.T) {
	m := mesh.New()
	a := boxOp(0)
	a.Chop(0, grading.ChopCount(4))
	a.Chop(1, grading.ChopCount(4))
	a.Chop(2, grading.ChopCount(4))
	b := boxOp(1)

	assert.NoError(t, m.Add(a, b))
	assert.NoError(t, m.Grade())

	assert.Len(t, m.Vertices(), 12)
	for _, blk := range m.Blocks() {
		for _, w := range blk.Wires() {
			assert.Equal(t, 4, w.Grading.Count())
		}
	}
}

func TestMesh_PatchLifecycle(t *testing.T) {
	m := mesh.New()
	op := boxOp(0)
	op.Chop(0, grading.ChopCount(1))
	op.Chop(1, grading.ChopCount(1))
	op.Chop(2, grading.ChopCount(1))
	op.SetPatch(topo.Top, "outlet")
	assert.NoError(t, m.Add(op))

	assert.NoError(t, m.ModifyPatch("outlet", patch.TypeWall))
	assert.Equal(t, patch.TypeWall, m.Patches().Get("outlet").Type)

	m.SetDefaultPatch("walls", patch.TypeWall)
	assert.Equal(t, "walls", m.Patches().DefaultPatch().Name)
}
