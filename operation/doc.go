// Package operation declares a single hex: two quadrilateral faces, up to
// four curved side-edge descriptors, per-axis chops, per-side patch names
// and projection targets, and a cell-zone tag — the user-facing input unit
// the shape builders (package shape) emit and mesh.Mesh.Add consumes.
package operation
