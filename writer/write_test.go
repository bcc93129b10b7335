package writer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/geom"
	"github.com/hexcore/blockmesh/grading"
	"github.com/hexcore/blockmesh/mesh"
	"github.com/hexcore/blockmesh/operation"
	"github.com/hexcore/blockmesh/patch"
	"github.com/hexcore/blockmesh/topo"
	"github.com/hexcore/blockmesh/writer"
)

func unitBoxOp() operation.Operation {
	bottom := operation.Face{
		geom.NewPoint(0, 0, 0), geom.NewPoint(1, 0, 0),
		geom.NewPoint(1, 1, 0), geom.NewPoint(0, 1, 0),
	}
	top := operation.Face{
		geom.NewPoint(0, 0, 1), geom.NewPoint(1, 0, 1),
		geom.NewPoint(1, 1, 1), geom.NewPoint(0, 1, 1),
	}
	op := operation.New(bottom, top)
	op.Chop(0, grading.ChopCount(4))
	op.Chop(1, grading.ChopCount(4))
	op.Chop(2, grading.ChopCount(4))
	op.SetPatch(topo.Top, "outlet")
	return op
}

func TestWrite_Deterministic(t *testing.T) {
	m1 := mesh.New()
	assert.NoError(t, m1.Add(unitBoxOp()))
	m1.SetDefaultPatch("walls", patch.TypeWall)

	m2 := mesh.New()
	assert.NoError(t, m2.Add(unitBoxOp()))
	m2.SetDefaultPatch("walls", patch.TypeWall)

	var buf1, buf2 bytes.Buffer
	assert.NoError(t, writer.Write(m1, &buf1))
	assert.NoError(t, writer.Write(m2, &buf2))

	assert.Equal(t, buf1.String(), buf2.String())
	assert.Equal(t, mesh.Written, m1.State())
}

func TestWrite_ImplicitlyGrades(t *testing.T) {
	m := mesh.New()
	assert.NoError(t, m.Add(unitBoxOp()))
	assert.Equal(t, mesh.Building, m.State())

	var buf bytes.Buffer
	assert.NoError(t, writer.Write(m, &buf))
	assert.Equal(t, mesh.Written, m.State())

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "hex (0 1 2 3 4 5 6 7) (4 4 4)")
	assert.Contains(t, out, "outlet")
}

func TestWrite_ContainsCurvedEdge(t *testing.T) {
	m := mesh.New()
	op := unitBoxOp()
	op.SideEdges[0] = core.ArcKind{Through: geom.Vec3{X: 0.2, Y: 0, Z: 0.5}}
	assert.NoError(t, m.Add(op))

	var buf bytes.Buffer
	assert.NoError(t, writer.Write(m, &buf))
	assert.Contains(t, buf.String(), "arc 0 4")
}

func TestWriteVTK_Basic(t *testing.T) {
	m := mesh.New()
	assert.NoError(t, m.Add(unitBoxOp()))

	var buf bytes.Buffer
	assert.NoError(t, writer.WriteVTK(m, &buf))
	out := buf.String()
	assert.Contains(t, out, "POINTS 8 float")
	assert.Contains(t, out, "CELLS 1 9")
}
