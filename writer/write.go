package writer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/geom"
	"github.com/hexcore/blockmesh/mesh"
	"github.com/hexcore/blockmesh/patch"
)

// Write emits m as a block-mesh dictionary in ordered sections (header,
// vertices, blocks, edges, boundary, mergePatchPairs, defaultPatch,
// footer). It implicitly assembles and grades m if that hasn't happened
// yet, validates, and only then writes; on success it marks m Written.
func Write(m *mesh.Mesh, w io.Writer) error {
	if err := m.EnsureGraded(); err != nil {
		return fmt.Errorf("%w: %w", ErrNotGraded, err)
	}

	var buf []byte
	buf = appendHeader(buf, m)
	buf = appendVertices(buf, m)
	buf = appendBlocks(buf, m)
	buf = appendEdges(buf, m)
	buf = appendBoundary(buf, m)
	buf = appendMergePatchPairs(buf, m)
	buf = appendDefaultPatch(buf, m)
	buf = append(buf, "// *** end of blockMeshDict ***\n"...)

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("writer: %w", err)
	}
	m.MarkWritten()
	return nil
}

func appendHeader(buf []byte, m *mesh.Mesh) []byte {
	buf = append(buf, "// blockMeshDict (generated)\n"...)
	buf = append(buf, fmt.Sprintf("convertToMeters %s;\n\n", formatFloat(m.Settings().Scale))...)
	return buf
}

func appendVertices(buf []byte, m *mesh.Mesh) []byte {
	buf = append(buf, "vertices\n(\n"...)
	for _, v := range m.Vertices() {
		buf = append(buf, fmt.Sprintf("    (%s %s %s)\n", formatFloat(v.Position.X), formatFloat(v.Position.Y), formatFloat(v.Position.Z))...)
	}
	buf = append(buf, ");\n\n"...)
	return buf
}

func appendBlocks(buf []byte, m *mesh.Mesh) []byte {
	buf = append(buf, "blocks\n(\n"...)
	for _, b := range m.Blocks() {
		counts := [3]int{b.Axes[0].Wires[0].Grading.Count(), b.Axes[1].Wires[0].Grading.Count(), b.Axes[2].Wires[0].Grading.Count()}
		buf = append(buf, fmt.Sprintf(
			"    hex (%d %d %d %d %d %d %d %d) (%d %d %d) simpleGrading (%s %s %s)\n",
			b.Vertices[0], b.Vertices[1], b.Vertices[2], b.Vertices[3],
			b.Vertices[4], b.Vertices[5], b.Vertices[6], b.Vertices[7],
			counts[0], counts[1], counts[2],
			gradingToken(b.Axes[0].Wires[0].Grading),
			gradingToken(b.Axes[1].Wires[0].Grading),
			gradingToken(b.Axes[2].Wires[0].Grading),
		)...)
	}
	buf = append(buf, ");\n\n"...)
	return buf
}

func appendEdges(buf []byte, m *mesh.Mesh) []byte {
	buf = append(buf, "edges\n(\n"...)
	for _, e := range m.Edges() {
		if line := edgeToken(e); line != "" {
			buf = append(buf, "    "...)
			buf = append(buf, line...)
			buf = append(buf, '\n')
		}
	}
	buf = append(buf, ");\n\n"...)
	return buf
}

func edgeToken(e *core.Edge) string {
	switch k := e.Kind.(type) {
	case core.LineKind:
		return ""
	case core.ArcKind:
		return fmt.Sprintf("arc %d %d (%s %s %s)", e.A, e.B, formatFloat(k.Through.X), formatFloat(k.Through.Y), formatFloat(k.Through.Z))
	case core.SplineKind:
		return fmt.Sprintf("spline %d %d %s", e.A, e.B, pointList(k.Points))
	case core.PolylineKind:
		return fmt.Sprintf("polyline %d %d %s", e.A, e.B, pointList(k.Points))
	case core.OriginArcKind:
		return fmt.Sprintf("arc %d %d origin (%s %s %s)", e.A, e.B, formatFloat(k.Center.X), formatFloat(k.Center.Y), formatFloat(k.Center.Z))
	case core.ProjectKind:
		return fmt.Sprintf("project %d %d (%s)", e.A, e.B, joinStrings(k.Geometries))
	default:
		return ""
	}
}

func appendBoundary(buf []byte, m *mesh.Mesh) []byte {
	buf = append(buf, "boundary\n(\n"...)
	for _, p := range m.Patches().Patches() {
		buf = append(buf, fmt.Sprintf("    %s\n    {\n        type %s;\n        faces\n        (\n", p.Name, p.Type)...)
		for _, side := range p.Sides {
			buf = appendFace(buf, m, side)
		}
		buf = append(buf, "        );\n    }\n"...)
	}
	buf = append(buf, ");\n\n"...)
	return buf
}

func appendFace(buf []byte, m *mesh.Mesh, side patch.Side) []byte {
	blocks := m.Blocks()
	if int(side.Block) >= len(blocks) {
		return buf
	}
	b := blocks[side.Block]
	corners, ok := orientationCorners[side.Orientation]
	if !ok {
		return buf
	}
	buf = append(buf, fmt.Sprintf(
		"            (%d %d %d %d)\n",
		b.Vertices[corners[0]], b.Vertices[corners[1]], b.Vertices[corners[2]], b.Vertices[corners[3]],
	)...)
	return buf
}

func appendMergePatchPairs(buf []byte, m *mesh.Mesh) []byte {
	buf = append(buf, "mergePatchPairs\n(\n"...)
	for _, pair := range m.Patches().MergedPairs() {
		buf = append(buf, fmt.Sprintf("    (%s %s)\n", pair[0], pair[1])...)
	}
	buf = append(buf, ");\n\n"...)
	return buf
}

func appendDefaultPatch(buf []byte, m *mesh.Mesh) []byte {
	d := m.Patches().DefaultPatch()
	if d == nil {
		return buf
	}
	return append(buf, fmt.Sprintf("defaultPatch\n{\n    name %s;\n    type %s;\n}\n\n", d.Name, d.Type)...)
}

func pointList(pts []geom.Vec3) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("(%s %s %s)", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func joinStrings(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += " "
		}
		out += s
	}
	return out
}
