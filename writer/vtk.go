package writer

import (
	"fmt"
	"io"

	"github.com/hexcore/blockmesh/mesh"
)

// WriteVTK emits a debug VTK legacy-format dump of m: one hexahedron cell
// per block, points at current vertex positions, no fields. It does not
// require m to be graded; it is a pure, read-only debug aid.
func WriteVTK(m *mesh.Mesh, w io.Writer) error {
	vertices := m.Vertices()
	blocks := m.Blocks()

	var buf []byte
	buf = append(buf, "# vtk DataFile Version 3.0\n"...)
	buf = append(buf, "blockmesh debug dump\n"...)
	buf = append(buf, "ASCII\n"...)
	buf = append(buf, "DATASET UNSTRUCTURED_GRID\n"...)

	buf = append(buf, fmt.Sprintf("POINTS %d float\n", len(vertices))...)
	for _, v := range vertices {
		buf = append(buf, fmt.Sprintf("%s %s %s\n", formatFloat(v.Position.X), formatFloat(v.Position.Y), formatFloat(v.Position.Z))...)
	}

	buf = append(buf, fmt.Sprintf("\nCELLS %d %d\n", len(blocks), len(blocks)*9)...)
	for _, b := range blocks {
		buf = append(buf, fmt.Sprintf(
			"8 %d %d %d %d %d %d %d %d\n",
			b.Vertices[0], b.Vertices[1], b.Vertices[2], b.Vertices[3],
			b.Vertices[4], b.Vertices[5], b.Vertices[6], b.Vertices[7],
		)...)
	}

	buf = append(buf, fmt.Sprintf("\nCELL_TYPES %d\n", len(blocks))...)
	for range blocks {
		buf = append(buf, "12\n"...)
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("writer: %w", err)
	}
	return nil
}
