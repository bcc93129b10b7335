package writer

import (
	"fmt"
	"strings"

	"github.com/hexcore/blockmesh/grading"
)

// gradingToken renders g as OpenFOAM-style simpleGrading input: a bare
// expansion ratio when g has a single segment, or a parenthesized list of
// (length_fraction count total_expansion) triples otherwise.
func gradingToken(g grading.Grading) string {
	if len(g.Segments) == 1 {
		return formatFloat(g.Segments[0].TotalExpansion)
	}

	parts := make([]string, len(g.Segments))
	for i, seg := range g.Segments {
		parts[i] = fmt.Sprintf("(%s %d %s)", formatFloat(seg.LengthFraction), seg.Count, formatFloat(seg.TotalExpansion))
	}
	return "(" + strings.Join(parts, " ") + ")"
}
