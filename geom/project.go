package geom

// ProjectionTarget names the geometry (or intersection of geometries) a
// Point should be snapped onto by the downstream mesher. It is opaque here:
// geom never evaluates projections itself, it only carries the names
// through to the writer's geometry references.
type ProjectionTarget struct {
	// Names holds one geometry name, or several when the point must be
	// snapped onto their intersection.
	Names []string
}

// NewProjectionTarget builds a ProjectionTarget from one or more geometry
// names.
func NewProjectionTarget(names ...string) *ProjectionTarget {
	cp := make([]string, len(names))
	copy(cp, names)
	return &ProjectionTarget{Names: cp}
}

// Merge combines two projection targets encountered on vertices that turned
// out to be coincident; the caller-provided target is preferred as it
// belongs to the most recently added point, matching the registry's
// "last write wins on metadata" dedup semantics.
func (t *ProjectionTarget) Merge(other *ProjectionTarget) *ProjectionTarget {
	if other == nil {
		return t
	}
	return other
}

// Point is a 3-D coordinate with an optional projection target, the unit of
// input the VertexRegistry consumes.
type Point struct {
	Position Vec3
	Project  *ProjectionTarget
}

// NewPoint builds an unprojected Point.
func NewPoint(x, y, z float64) Point {
	return Point{Position: Vec3{X: x, Y: y, Z: z}}
}

// ParametricCurve is an opaque parametric function f(t) -> point, supplied
// by the caller (the curve-primitive library lives outside this module).
type ParametricCurve func(t float64) Vec3

// ParametricSurface is an opaque parametric function f(u,v) -> point.
type ParametricSurface func(u, v float64) Vec3

// Transform is a rigid or scaling transform applied to a Vec3.
type Transform func(Vec3) Vec3

// Translate returns a Transform that adds d.
func Translate(d Vec3) Transform {
	return func(p Vec3) Vec3 { return p.Add(d) }
}

// RotateAbout returns a Transform that rotates around origin/axis by angle.
func RotateAbout(origin, axis Vec3, angle float64) Transform {
	return func(p Vec3) Vec3 { return p.RotateAround(origin, axis, angle) }
}

// ScaleAbout returns a Transform that scales distances from origin by ratio.
func ScaleAbout(origin Vec3, ratio float64) Transform {
	return func(p Vec3) Vec3 { return origin.Add(p.Sub(origin).Scale(ratio)) }
}

// Chain composes transforms left to right: Chain(a,b)(p) == b(a(p)).
func Chain(transforms ...Transform) Transform {
	return func(p Vec3) Vec3 {
		for _, t := range transforms {
			p = t(p)
		}
		return p
	}
}
