package shape

import (
	"math"

	"github.com/hexcore/blockmesh/geom"
)

// Elbow builds a circular-pipe bend: segments+1 sketches placed on a
// circle of bendRadius about center, in the plane perpendicular to
// bendAxis, sweeping from startAngle to endAngle (radians), each sketch's
// normal tangent to the bend path. Loft then connects consecutive
// sketches exactly as Cylinder does for a straight run, so a bend is just
// a Cylinder whose path is curved rather than a distinct block topology.
func Elbow(center, bendAxis geom.Vec3, bendRadius, startAngle, endAngle, pipeRadius float64, segments int, chops ChopSet, outerPatch string) Shape {
	if segments < 1 {
		segments = 1
	}
	u, v := geom.OrthonormalBasis(bendAxis)

	sketches := make([]Sketch, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		angle := startAngle + t*(endAngle-startAngle)
		radial := u.Scale(math.Cos(angle)).Add(v.Scale(math.Sin(angle)))
		stationCenter := center.Add(radial.Scale(bendRadius))
		tangent := u.Scale(-math.Sin(angle)).Add(v.Scale(math.Cos(angle)))
		sketches[i] = NewCircularSketch(stationCenter, tangent, pipeRadius, defaultCoreFraction, true)
	}

	return built{ops: Loft(sketches, chops, outerPatch)}
}
