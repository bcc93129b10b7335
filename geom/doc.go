// Package geom provides the small set of geometry primitives the rest of
// this module treats as ground truth: 3-D vectors/points, rigid transforms
// (translate/rotate/scale), and the function-value contracts that clamps
// and projected edges use to talk to externally supplied curves and
// surfaces.
//
// Curve and surface evaluation itself (splines, NURBS, CAD projection) is
// explicitly out of scope: callers supply their own opaque parametric
// functions for clamps and projections to consume. geom only defines the
// Go-native shape of that contract (ParametricCurve, ParametricSurface)
// plus the linear algebra needed to drive it.
package geom
