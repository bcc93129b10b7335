// Package shape is the solid-shape library: Box, Cylinder, Frustum, Elbow,
// Ring, Shell, Grid and Loft, each a small builder over the shared
// sketch-interpolation and chop-plumbing free functions in sketch.go and
// loft.go. A shape trait exposing Operations() plus per-shape builder
// functions replaces any notion of a base RoundShape class: composition
// over a narrow interface, not inheritance.
package shape
