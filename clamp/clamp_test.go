package clamp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexcore/blockmesh/clamp"
	"github.com/hexcore/blockmesh/geom"
)

func TestFree_RoundTrips(t *testing.T) {
	c := clamp.Free{}
	v := geom.Vec3{X: 1, Y: 2, Z: 3}
	params := c.InitialParams(v)
	assert.Equal(t, v, c.PointAt(params))
	lo, hi := c.Bounds()
	assert.Nil(t, lo)
	assert.Nil(t, hi)
}

func TestLine_ProjectsAndClips(t *testing.T) {
	c := clamp.Line{A: geom.Vec3{}, B: geom.Vec3{X: 10}, Bounded: true, TMin: 0, TMax: 1}
	params := c.InitialParams(geom.Vec3{X: 20, Y: 5})
	assert.Equal(t, 1.0, params[0])

	p := c.PointAt([]float64{0.5})
	assert.Equal(t, geom.Vec3{X: 5}, p)
}

func TestLine_UnboundedDoesNotClip(t *testing.T) {
	c := clamp.Line{A: geom.Vec3{}, B: geom.Vec3{X: 10}}
	params := c.InitialParams(geom.Vec3{X: 20})
	assert.Equal(t, 2.0, params[0])
	lo, hi := c.Bounds()
	assert.Nil(t, lo)
	assert.Nil(t, hi)
}

func TestParametricCurve_FindsKnownParameter(t *testing.T) {
	curve := func(u float64) geom.Vec3 { return geom.Vec3{X: u, Y: u * u} }
	c := clamp.ParametricCurve{Curve: curve, Bounded: true, TMin: -2, TMax: 2}
	target := curve(0.75)
	params := c.InitialParams(target)
	assert.InDelta(t, 0.75, params[0], 1e-2)
}

func TestParametricCurve_Unbounded(t *testing.T) {
	curve := func(u float64) geom.Vec3 { return geom.Vec3{X: u} }
	c := clamp.ParametricCurve{Curve: curve}
	params := c.InitialParams(geom.Vec3{X: 3})
	assert.InDelta(t, 3, params[0], 1e-2)
}

func TestRadial_RotatesAroundAxis(t *testing.T) {
	origin := geom.Vec3{X: 1}
	c := clamp.NewRadial(geom.Vec3{}, geom.Vec3{Z: 1}, origin)

	params := c.InitialParams(origin)
	assert.Equal(t, []float64{0}, params)
	assert.Equal(t, origin, c.PointAt(params))

	p := c.PointAt([]float64{math.Pi / 2})
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 1, p.Y, 1e-9)

	lo, hi := c.Bounds()
	assert.Equal(t, []float64{-math.Pi}, lo)
	assert.Equal(t, []float64{math.Pi}, hi)
}

func TestParametricSurface_UnboundedStartsAtOrigin(t *testing.T) {
	surf := func(u, v float64) geom.Vec3 { return geom.Vec3{X: u, Y: v} }
	c := clamp.ParametricSurface{Surface: surf}
	params := c.InitialParams(geom.Vec3{X: 5, Y: 5})
	assert.Equal(t, []float64{0, 0}, params)
}

func TestParametricSurface_BoundedFindsKnownParameter(t *testing.T) {
	surf := func(u, v float64) geom.Vec3 { return geom.Vec3{X: u, Y: v, Z: u + v} }
	c := clamp.ParametricSurface{Surface: surf, Bounded: true, UMin: -2, UMax: 2, VMin: -2, VMax: 2}
	target := surf(0.5, -0.5)
	params := c.InitialParams(target)
	assert.InDelta(t, 0.5, params[0], 5e-2)
	assert.InDelta(t, -0.5, params[1], 5e-2)
}

func TestPlane_LocksNormalComponent(t *testing.T) {
	c := clamp.NewPlane(geom.Vec3{}, geom.Vec3{Z: 1})
	v := geom.Vec3{X: 3, Y: 4, Z: 7}
	params := c.InitialParams(v)
	p := c.PointAt(params)
	assert.InDelta(t, 0, p.Z, 1e-9)
	assert.InDelta(t, v.X, p.X, 1e-9)
	assert.InDelta(t, v.Y, p.Y, 1e-9)
}
