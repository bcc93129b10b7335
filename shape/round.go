package shape

import "github.com/hexcore/blockmesh/geom"

// defaultCoreFraction is the classic O-grid core-square size, chosen so
// the core block's aspect ratio stays reasonable for typical radii.
const defaultCoreFraction = 0.4

// Cylinder builds a straight circular cylinder from base along axis
// (base+axis is the far end), with the given radius, as a center core
// block plus 4 surrounding ring blocks. outerPatch, if non-empty, names
// the lateral (cylindrical) surface's patch.
func Cylinder(base, axis geom.Vec3, radius float64, chops ChopSet, outerPatch string) Shape {
	start := NewCircularSketch(base, axis, radius, defaultCoreFraction, true)
	end := NewCircularSketch(base.Add(axis), axis, radius, defaultCoreFraction, true)
	return built{ops: Loft([]Sketch{start, end}, chops, outerPatch)}
}

// Frustum builds a circular cone frustum from base (radiusBase) to
// base+axis (radiusTop).
func Frustum(base, axis geom.Vec3, radiusBase, radiusTop float64, chops ChopSet, outerPatch string) Shape {
	start := NewCircularSketch(base, axis, radiusBase, defaultCoreFraction, true)
	end := NewCircularSketch(base.Add(axis), axis, radiusTop, defaultCoreFraction, true)
	return built{ops: Loft([]Sketch{start, end}, chops, outerPatch)}
}

// Ring builds a hollow annulus (no core block) from base along axis,
// between innerRadius and outerRadius.
func Ring(base, axis geom.Vec3, innerRadius, outerRadius float64, chops ChopSet, outerPatch string) Shape {
	coreFraction := innerRadius / outerRadius
	start := NewCircularSketch(base, axis, outerRadius, coreFraction, false)
	end := NewCircularSketch(base.Add(axis), axis, outerRadius, coreFraction, false)
	return built{ops: Loft([]Sketch{start, end}, chops, outerPatch)}
}

// Shell is a thin-walled Ring: innerRadius is outerRadius minus the
// absolute wall thickness rather than given directly, since a shell is
// conventionally specified by its outer radius and thickness, not two
// independent radii.
func Shell(base, axis geom.Vec3, outerRadius, thickness float64, chops ChopSet, outerPatch string) Shape {
	return Ring(base, axis, outerRadius-thickness, outerRadius, chops, outerPatch)
}

// InnerRing returns the 4 inner-ring corner positions of a round shape's
// sketch at base (atEnd false) or at base+axis (atEnd true), for
// callers (e.g. the diffuser optimization scenario) that need to locate
// and release those vertices after mesh.Mesh.Add has assigned them
// VertexIDs via finder.ByPosition.
func InnerRing(base, axis geom.Vec3, radius float64, atEnd bool) [4]geom.Vec3 {
	center := base
	if atEnd {
		center = base.Add(axis)
	}
	return NewCircularSketch(center, axis, radius, defaultCoreFraction, true).Inner
}
