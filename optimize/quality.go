package optimize

import (
	"math"

	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/geom"
	"github.com/hexcore/blockmesh/topo"
)

// edgesAtCorner lists, for each of a block's 8 local corner indices, the
// three other corners reachable along a single wire from it, used to find
// the three edge vectors meeting at that corner for the inner-angle and
// non-orthogonality terms.
var edgesAtCorner = [8][3]int{
	0: {1, 3, 4},
	1: {0, 2, 5},
	2: {1, 3, 6},
	3: {0, 2, 7},
	4: {0, 5, 7},
	5: {1, 4, 6},
	6: {2, 5, 7},
	7: {3, 4, 6},
}

// blockCost scores one block's geometric quality: lower is better, zero
// for a perfect cube. It combines non-orthogonality (deviation of adjacent
// edge directions from perpendicular, averaged over the 8 corners and 3
// edge pairs each), aspect ratio (longest edge / shortest edge, 1 at
// best), and inner-angle deviation from 90 degrees (same underlying
// angles as non-orthogonality, reported in radians rather than cosine).
func blockCost(vreg *core.VertexRegistry, b *topo.Block) float64 {
	var corners [8]geom.Vec3
	for i, id := range b.Vertices {
		corners[i] = vreg.MustGet(id).Position
	}

	var nonOrtho, angleDev float64
	nTerms := 0
	for c := 0; c < 8; c++ {
		neighbours := edgesAtCorner[c]
		var dirs [3]geom.Vec3
		for i, n := range neighbours {
			dirs[i] = corners[n].Sub(corners[c]).Normalized()
		}
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				cos := dirs[i].Dot(dirs[j])
				nonOrtho += math.Abs(cos)
				angle := math.Acos(geom.Clamp(cos, -1, 1))
				angleDev += math.Abs(angle - math.Pi/2)
				nTerms++
			}
		}
	}
	if nTerms > 0 {
		nonOrtho /= float64(nTerms)
		angleDev /= float64(nTerms)
	}

	minLen, maxLen := math.Inf(1), 0.0
	for _, w := range b.Wires() {
		length := corners[w.Corners[0]].Distance(corners[w.Corners[1]])
		if length < minLen {
			minLen = length
		}
		if length > maxLen {
			maxLen = length
		}
	}
	aspectCost := 0.0
	if minLen > 0 {
		aspectCost = maxLen/minLen - 1
	}

	const (
		wNonOrtho  = 1.0
		wAspect    = 1.0
		wAngleDev  = 1.0 / (math.Pi / 2)
	)
	return wNonOrtho*nonOrtho + wAspect*aspectCost + wAngleDev*angleDev
}

// MaxNonOrthogonality returns the worst single-corner non-orthogonality
// value (the |cos| term of blockCost) over blocks, used by callers that
// want to check mesh quality directly without re-deriving blockCost's
// combined weighting.
func MaxNonOrthogonality(vreg *core.VertexRegistry, blocks []*topo.Block) float64 {
	worst := 0.0
	for _, b := range blocks {
		var corners [8]geom.Vec3
		for i, id := range b.Vertices {
			corners[i] = vreg.MustGet(id).Position
		}
		for c := 0; c < 8; c++ {
			neighbours := edgesAtCorner[c]
			var dirs [3]geom.Vec3
			for i, n := range neighbours {
				dirs[i] = corners[n].Sub(corners[c]).Normalized()
			}
			for i := 0; i < 3; i++ {
				for j := i + 1; j < 3; j++ {
					cos := math.Abs(dirs[i].Dot(dirs[j]))
					if cos > worst {
						worst = cos
					}
				}
			}
		}
	}
	return worst
}
