// Package writer emits a frozen mesh.Mesh as a block-mesh dictionary text
// (Write) or a debug VTK dump (WriteVTK). Write grades the mesh first if
// needed, writes nothing when that fails, and marks the mesh Written on
// success; WriteVTK only reads the mesh. Both produce UTF-8 output with a
// final trailing newline.
package writer
