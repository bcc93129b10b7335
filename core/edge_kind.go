package core

import (
	"math"

	"github.com/hexcore/blockmesh/geom"
)

// EdgeKind is the closed tagged-variant replacement for the source
// project's polymorphic edge classes (LineEdge, ArcEdge, SplineEdge, ...).
// Every implementation lives in this file, and each one implements Length
// and Equal as its own methods.
type EdgeKind interface {
	// isEdgeKind is unexported so EdgeKind is closed to this package.
	isEdgeKind()

	// Length returns the edge length given its two endpoint positions.
	Length(a, b geom.Vec3) float64

	// Equal reports whether other describes the same curve parameters.
	// Equal does not compare endpoints; callers compare vertex pairs
	// separately (see Edge equality in edge.go).
	Equal(other EdgeKind) bool
}

// LineKind is a straight edge; length is the Euclidean distance between
// endpoints. It is the default kind for every newly registered edge.
type LineKind struct{}

func (LineKind) isEdgeKind() {}

func (LineKind) Length(a, b geom.Vec3) float64 { return a.Distance(b) }

func (LineKind) Equal(other EdgeKind) bool {
	_, ok := other.(LineKind)
	return ok
}

// ArcKind is a circular arc through a third point.
type ArcKind struct {
	Through geom.Vec3
}

func (ArcKind) isEdgeKind() {}

// Length computes arc length via the circle through a, Through and b. A
// degenerate (collinear) triple falls back to the straight-line length.
func (k ArcKind) Length(a, b geom.Vec3) float64 {
	center, radius, ok := circumCenter(a, k.Through, b)
	if !ok || radius == 0 {
		return a.Distance(b)
	}
	angle := a.Sub(center).AngleTo(b.Sub(center))
	// AngleTo is unsigned/shortest; if the through-point lies on the major
	// arc, the true subtended angle is the reflex angle instead.
	if !sameSide(center, k.Through, a, b) {
		angle = 2*math.Pi - angle
	}
	return radius * angle
}

func (k ArcKind) Equal(other EdgeKind) bool {
	o, ok := other.(ArcKind)
	return ok && k.Through.Distance(o.Through) < DefaultTolerance
}

// SplineKind is an ordered list of interior points; length is the
// cumulative polyline length through them between the endpoints.
type SplineKind struct {
	Points []geom.Vec3
}

func (SplineKind) isEdgeKind() {}

func (k SplineKind) Length(a, b geom.Vec3) float64 {
	return polylineLength(a, k.Points, b)
}

func (k SplineKind) Equal(other EdgeKind) bool {
	o, ok := other.(SplineKind)
	return ok && samePoints(k.Points, o.Points)
}

// PolylineKind behaves identically to SplineKind for length purposes; the
// distinction (smooth spline vs. straight segments) only matters to the
// downstream mesher/writer, not to grading.
type PolylineKind struct {
	Points []geom.Vec3
}

func (PolylineKind) isEdgeKind() {}

func (k PolylineKind) Length(a, b geom.Vec3) float64 {
	return polylineLength(a, k.Points, b)
}

func (k PolylineKind) Equal(other EdgeKind) bool {
	o, ok := other.(PolylineKind)
	return ok && samePoints(k.Points, o.Points)
}

// OriginArcKind is an arc implied by a circle center and an optional
// explicit radius (otherwise the radius is the distance from Center to A).
type OriginArcKind struct {
	Center   geom.Vec3
	Radius   *float64
	Flatness *float64
}

func (OriginArcKind) isEdgeKind() {}

func (k OriginArcKind) Length(a, b geom.Vec3) float64 {
	radius := a.Distance(k.Center)
	if k.Radius != nil {
		radius = *k.Radius
	}
	if radius == 0 {
		return a.Distance(b)
	}
	angle := a.Sub(k.Center).AngleTo(b.Sub(k.Center))
	return radius * angle
}

func (k OriginArcKind) Equal(other EdgeKind) bool {
	o, ok := other.(OriginArcKind)
	if !ok || k.Center.Distance(o.Center) >= DefaultTolerance {
		return false
	}
	return floatPtrEqual(k.Radius, o.Radius) && floatPtrEqual(k.Flatness, o.Flatness)
}

// ProjectKind is a straight line in parametric form, snapped onto a named
// geometry (or the intersection of several) by the downstream mesher.
// Length for grading purposes is the unsnapped straight-line length; the
// snap itself is the downstream mesher's job, not this module's.
type ProjectKind struct {
	Geometries []string
}

func (ProjectKind) isEdgeKind() {}

func (ProjectKind) Length(a, b geom.Vec3) float64 { return a.Distance(b) }

func (k ProjectKind) Equal(other EdgeKind) bool {
	o, ok := other.(ProjectKind)
	return ok && sameStrings(k.Geometries, o.Geometries)
}

// --- helpers -----------------------------------------------------------

func polylineLength(a geom.Vec3, interior []geom.Vec3, b geom.Vec3) float64 {
	prev := a
	total := 0.0
	for _, p := range interior {
		total += prev.Distance(p)
		prev = p
	}
	total += prev.Distance(b)
	return total
}

// circumCenter returns the center and radius of the circle through p0,p1,p2
// and ok=false if the three points are (nearly) collinear.
func circumCenter(p0, p1, p2 geom.Vec3) (geom.Vec3, float64, bool) {
	// Work in the plane spanned by the three points.
	a := p1.Sub(p0)
	b := p2.Sub(p0)
	normal := a.Cross(b)
	if normal.Length() < DefaultTolerance {
		return geom.Vec3{}, 0, false
	}

	// Solve for the circumcenter using the standard 3-D formula.
	aa := a.Dot(a)
	bb := b.Dot(b)
	abCross := a.Cross(b)
	denom := 2 * abCross.Dot(abCross)
	if denom == 0 {
		return geom.Vec3{}, 0, false
	}
	t := b.Scale(aa).Sub(a.Scale(bb)).Cross(abCross).Scale(1 / denom)
	center := p0.Add(t)
	radius := center.Distance(p0)
	return center, radius, true
}

// sameSide reports whether through lies on the same side of center as the
// midpoint of a and b (non-negative dot product of the two directions from
// center), which is how the minor arc is told from the major one.
func sameSide(center, through, a, b geom.Vec3) bool {
	mid := a.Add(b).Scale(0.5)
	return through.Sub(center).Dot(mid.Sub(center)) >= 0
}

func samePoints(a, b []geom.Vec3) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Distance(b[i]) >= DefaultTolerance {
			return false
		}
	}
	return true
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return math.Abs(*a-*b) < DefaultTolerance
}
