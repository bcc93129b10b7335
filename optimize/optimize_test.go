package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexcore/blockmesh/clamp"
	"github.com/hexcore/blockmesh/geom"
	"github.com/hexcore/blockmesh/grading"
	"github.com/hexcore/blockmesh/mesh"
	"github.com/hexcore/blockmesh/operation"
	"github.com/hexcore/blockmesh/optimize"
)

// skewedBoxOp builds a box whose top face is sheared in X, so its corners
// are not orthogonal to the bottom face: a deliberately poor-quality block
// for the optimizer to improve.
func skewedBoxOp() operation.Operation {
	bottom := operation.Face{
		geom.NewPoint(0, 0, 0), geom.NewPoint(1, 0, 0),
		geom.NewPoint(1, 1, 0), geom.NewPoint(0, 1, 0),
	}
	top := operation.Face{
		geom.NewPoint(0.6, 0, 1), geom.NewPoint(1.6, 0, 1),
		geom.NewPoint(1.6, 1, 1), geom.NewPoint(0.6, 1, 1),
	}
	op := operation.New(bottom, top)
	op.Chop(0, grading.ChopCount(2))
	op.Chop(1, grading.ChopCount(2))
	op.Chop(2, grading.ChopCount(2))
	return op
}

func TestOptimize_NoReleasesTransitionsState(t *testing.T) {
	m := mesh.New()
	assert.NoError(t, m.Add(skewedBoxOp()))

	opt := optimize.New(m)
	assert.NoError(t, opt.Optimize())
	assert.Equal(t, mesh.Optimized, m.State())
	assert.Empty(t, opt.History())
}

func TestOptimize_ReleasingTopCornersMovesThemWithoutRaisingCost(t *testing.T) {
	m := mesh.New()
	assert.NoError(t, m.Add(skewedBoxOp()))
	assert.NoError(t, m.Grade())

	vreg := m.VertexRegistry()
	top0 := vreg.MustGet(m.Blocks()[0].Vertices[4]).Position
	top1 := vreg.MustGet(m.Blocks()[0].Vertices[5]).Position

	opt := optimize.New(m, optimize.WithMaxIterations(150))
	opt.Release(m.Blocks()[0].Vertices[4], clamp.Free{})
	opt.Release(m.Blocks()[0].Vertices[5], clamp.Free{})

	assert.NoError(t, opt.Optimize())
	assert.Equal(t, mesh.Optimized, m.State())

	history := opt.History()
	assert.NotEmpty(t, history)
	assert.LessOrEqual(t, history[len(history)-1], history[0])

	after0 := vreg.MustGet(m.Blocks()[0].Vertices[4]).Position
	after1 := vreg.MustGet(m.Blocks()[0].Vertices[5]).Position
	assert.NotEqual(t, top0, after0)
	assert.NotEqual(t, top1, after1)
}

func TestOptimize_MaxNonOrthogonalityDrops(t *testing.T) {
	m := mesh.New()
	assert.NoError(t, m.Add(skewedBoxOp()))
	assert.NoError(t, m.Grade())

	vreg := m.VertexRegistry()
	before := optimize.MaxNonOrthogonality(vreg, m.Blocks())

	opt := optimize.New(m, optimize.WithMaxIterations(150))
	opt.Release(m.Blocks()[0].Vertices[4], clamp.Free{})
	opt.Release(m.Blocks()[0].Vertices[5], clamp.Free{})
	opt.Release(m.Blocks()[0].Vertices[6], clamp.Free{})
	opt.Release(m.Blocks()[0].Vertices[7], clamp.Free{})
	assert.NoError(t, opt.Optimize())

	after := optimize.MaxNonOrthogonality(vreg, m.Blocks())
	assert.Less(t, after, before)
}

func TestOptimize_BoundedClampRespected(t *testing.T) {
	m := mesh.New()
	assert.NoError(t, m.Add(skewedBoxOp()))
	assert.NoError(t, m.Grade())

	vreg := m.VertexRegistry()
	id := m.Blocks()[0].Vertices[4]
	p := vreg.MustGet(id).Position

	line := clamp.Line{A: p, B: p.Add(geom.Vec3{X: 1}), Bounded: true, TMin: -0.05, TMax: 0.05}
	opt := optimize.New(m, optimize.WithMaxIterations(100))
	opt.Release(id, line)
	assert.NoError(t, opt.Optimize())

	after := vreg.MustGet(id).Position
	assert.InDelta(t, p.Y, after.Y, 1e-9)
	assert.InDelta(t, p.Z, after.Z, 1e-9)
	assert.LessOrEqual(t, after.X-p.X, 0.05+1e-6)
	assert.GreaterOrEqual(t, after.X-p.X, -0.05-1e-6)
}
