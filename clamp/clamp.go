package clamp

import (
	"math"

	"github.com/hexcore/blockmesh/geom"
)

// Clamp is the closed tagged-variant replacement for the source project's
// polymorphic clamp classes. Every implementation lives in this file.
type Clamp interface {
	// isClamp is unexported so Clamp is closed to this package.
	isClamp()

	// NumParams returns the number of free parameters this clamp exposes.
	NumParams() int

	// InitialParams seeds a starting parameter vector for vertex's current
	// position, projected onto this clamp's manifold.
	InitialParams(vertex geom.Vec3) []float64

	// PointAt maps a parameter vector to a position on the clamp's
	// manifold. len(params) == NumParams().
	PointAt(params []float64) geom.Vec3

	// Bounds returns per-parameter [lo,hi] pairs, or (nil, nil) if
	// unbounded in every parameter.
	Bounds() (lo, hi []float64)
}

// Free leaves a vertex's (x,y,z) entirely unconstrained.
type Free struct{}

func (Free) isClamp()      {}
func (Free) NumParams() int { return 3 }

func (Free) InitialParams(vertex geom.Vec3) []float64 {
	return []float64{vertex.X, vertex.Y, vertex.Z}
}

func (Free) PointAt(params []float64) geom.Vec3 {
	return geom.Vec3{X: params[0], Y: params[1], Z: params[2]}
}

func (Free) Bounds() (lo, hi []float64) { return nil, nil }

// Line constrains a vertex to A + t*(B-A), optionally bounded in t.
type Line struct {
	A, B   geom.Vec3
	Bounded bool
	TMin, TMax float64
}

func (Line) isClamp()      {}
func (Line) NumParams() int { return 1 }

func (l Line) InitialParams(vertex geom.Vec3) []float64 {
	t := geom.ProjectOntoLine(vertex, l.A, l.B)
	if l.Bounded {
		t = geom.Clamp(t, l.TMin, l.TMax)
	}
	return []float64{t}
}

func (l Line) PointAt(params []float64) geom.Vec3 {
	return l.A.Add(l.B.Sub(l.A).Scale(params[0]))
}

func (l Line) Bounds() (lo, hi []float64) {
	if !l.Bounded {
		return nil, nil
	}
	return []float64{l.TMin}, []float64{l.TMax}
}

// ParametricCurve constrains a vertex to an opaque curve f(t), optionally
// bounded in t.
type ParametricCurve struct {
	Curve      geom.ParametricCurve
	Bounded    bool
	TMin, TMax float64
}

func (ParametricCurve) isClamp()      {}
func (ParametricCurve) NumParams() int { return 1 }

// InitialParams finds t minimizing ||f(t) - vertex|| by 1-D golden-section
// search, bounded if the clamp declares bounds, else over a wide bracket
// centered at t=0.
func (c ParametricCurve) InitialParams(vertex geom.Vec3) []float64 {
	cost := func(t float64) float64 { return c.Curve(t).Distance(vertex) }
	var t float64
	if c.Bounded {
		t = geom.MinimizeScalar(cost, c.TMin, c.TMax, 60)
	} else {
		t = geom.MinimizeScalarUnbounded(cost, 0, 60)
	}
	return []float64{t}
}

func (c ParametricCurve) PointAt(params []float64) geom.Vec3 {
	return c.Curve(params[0])
}

func (c ParametricCurve) Bounds() (lo, hi []float64) {
	if !c.Bounded {
		return nil, nil
	}
	return []float64{c.TMin}, []float64{c.TMax}
}

// Radial rotates a vertex around axis (P0,P1) by angle phi in [-pi,pi].
type Radial struct {
	P0, P1 geom.Vec3

	// origin is the vertex's position at clamp-attach time: phi=0 must map
	// back to it, since a Radial clamp has no independent "home" point of
	// its own (unlike Line/ParametricCurve/ParametricSurface).
	origin geom.Vec3
}

// NewRadial builds a Radial clamp for a vertex currently at origin,
// rotating around the axis through p0 and p1.
func NewRadial(p0, p1, origin geom.Vec3) Radial {
	return Radial{P0: p0, P1: p1, origin: origin}
}

func (Radial) isClamp()      {}
func (Radial) NumParams() int { return 1 }

func (Radial) InitialParams(vertex geom.Vec3) []float64 {
	return []float64{0}
}

func (r Radial) PointAt(params []float64) geom.Vec3 {
	return r.origin.RotateAround(r.P0, r.P1.Sub(r.P0), params[0])
}

func (Radial) Bounds() (lo, hi []float64) {
	return []float64{-math.Pi}, []float64{math.Pi}
}

// ParametricSurface constrains a vertex to an opaque surface f(u,v),
// optionally bounded in a (u,v) box.
type ParametricSurface struct {
	Surface            geom.ParametricSurface
	Bounded            bool
	UMin, UMax, VMin, VMax float64
}

func (ParametricSurface) isClamp()      {}
func (ParametricSurface) NumParams() int { return 2 }

// InitialParams finds (u,v) minimizing ||f(u,v) - vertex|| by alternating
// golden-section sweeps if bounded; if unbounded it starts at (0,0)
// rather than searching an unbounded plane.
func (s ParametricSurface) InitialParams(vertex geom.Vec3) []float64 {
	if !s.Bounded {
		return []float64{0, 0}
	}
	cost := func(u, v float64) float64 { return s.Surface(u, v).Distance(vertex) }
	u, v := geom.MinimizeVector2(cost, [2]float64{s.UMin, s.VMin}, [2]float64{s.UMax, s.VMax}, 8)
	return []float64{u, v}
}

func (s ParametricSurface) PointAt(params []float64) geom.Vec3 {
	return s.Surface(params[0], params[1])
}

func (s ParametricSurface) Bounds() (lo, hi []float64) {
	if !s.Bounded {
		return nil, nil
	}
	return []float64{s.UMin, s.VMin}, []float64{s.UMax, s.VMax}
}

// Plane constrains a vertex to a 2-D basis (u,v) of the plane through
// Point with the given Normal; the vertex's normal-component is locked to
// zero relative to Point.
type Plane struct {
	Point, Normal geom.Vec3

	u, v geom.Vec3 // orthonormal in-plane basis, derived from Normal
}

// NewPlane builds a Plane clamp, deriving an orthonormal in-plane basis
// from normal.
func NewPlane(point, normal geom.Vec3) Plane {
	n := normal.Normalized()
	u, v := geom.OrthonormalBasis(n)
	return Plane{Point: point, Normal: n, u: u, v: v}
}

func (Plane) isClamp()      {}
func (Plane) NumParams() int { return 2 }

func (p Plane) InitialParams(vertex geom.Vec3) []float64 {
	rel := vertex.Sub(p.Point)
	return []float64{rel.Dot(p.u), rel.Dot(p.v)}
}

func (p Plane) PointAt(params []float64) geom.Vec3 {
	return p.Point.Add(p.u.Scale(params[0])).Add(p.v.Scale(params[1]))
}

func (Plane) Bounds() (lo, hi []float64) { return nil, nil }
