package shape

import (
	"math"

	"github.com/hexcore/blockmesh/geom"
)

// ringAngles are the four corner angles of the classic "squared circle"
// O-grid cross-section: a core square (or hollow inner ring) rotated 45°
// so its sides face the four compass ring blocks, each spanning a 90° arc.
var ringAngles = [4]float64{math.Pi / 4, 3 * math.Pi / 4, 5 * math.Pi / 4, 7 * math.Pi / 4}

// Sketch is one cross-section station along a shape's path: a center, an
// orthonormal in-plane basis, and the four ring/inner corner positions the
// O-grid topology connects to its neighboring stations. Cylinder, Frustum,
// Ring, Shell and Elbow all interpolate a sequence of Sketches and hand
// them to Loft, so the round-shape builders share one lofting
// implementation instead of each duplicating it.
type Sketch struct {
	Center  geom.Vec3
	U, V    geom.Vec3 // orthonormal in-plane basis
	Radius  float64
	HasCore bool

	Outer [4]geom.Vec3
	Inner [4]geom.Vec3
}

// NewCircularSketch builds a sketch at center, in the plane perpendicular
// to normal, with the given outer radius. If hasCore, Inner is a core
// square at coreFraction*radius (coreFraction typically ~0.4-0.5); if not,
// Inner is a hollow concentric ring at coreFraction*radius (0 < coreFraction < 1).
func NewCircularSketch(center, normal geom.Vec3, radius, coreFraction float64, hasCore bool) Sketch {
	u, v := geom.OrthonormalBasis(normal)
	s := Sketch{Center: center, U: u, V: v, Radius: radius, HasCore: hasCore}
	for i, theta := range ringAngles {
		dir := u.Scale(math.Cos(theta)).Add(v.Scale(math.Sin(theta)))
		s.Outer[i] = center.Add(dir.Scale(radius))
		s.Inner[i] = center.Add(dir.Scale(radius * coreFraction))
	}
	return s
}
