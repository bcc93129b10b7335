// Package clamp binds a Vertex to a parametric manifold — Free, Line,
// ParametricCurve, Radial, ParametricSurface, or Plane. Each Clamp is a
// closed tagged variant (an unexported marker method) exposing its
// parameter count, an initial parameter guess seeded from a vertex's
// current position, the point at a given parameter vector, and optional
// per-parameter bounds, matching the core.EdgeKind closed-interface idiom.
package clamp
